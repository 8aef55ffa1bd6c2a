package logging

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotationConfig holds configuration for log rotation.
type RotationConfig struct {
	// MaxSizeMB is the maximum size of the log file in megabytes before
	// rotation. A value of 0 disables rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep.
	// A value of 0 keeps no backups.
	MaxBackups int
	// Compress determines whether rotated log files are gzip compressed.
	Compress bool
}

// DefaultRotationConfig returns a RotationConfig with sensible defaults.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
		Compress:   false,
	}
}

// RotatingWriter is an io.Writer backed by a file that is rotated when it
// exceeds a size limit. It is safe for concurrent use.
type RotatingWriter struct {
	mu sync.Mutex

	filePath   string
	maxSizeB   int64
	maxBackups int
	compress   bool

	file        *os.File
	currentSize int64
}

// NewRotatingWriter creates a RotatingWriter for the given file path. Parent
// directories are created as needed. If config.MaxSizeMB is 0, rotation is
// disabled and the writer behaves like a plain append-only file writer.
func NewRotatingWriter(filePath string, config RotationConfig) (*RotatingWriter, error) {
	rw := &RotatingWriter{
		filePath:   filePath,
		maxSizeB:   int64(config.MaxSizeMB) * 1024 * 1024,
		maxBackups: config.MaxBackups,
		compress:   config.Compress,
	}

	if err := rw.openFile(); err != nil {
		return nil, err
	}
	return rw, nil
}

// openFile opens the log file for appending and records its current size.
// The caller must hold the mutex.
func (rw *RotatingWriter) openFile() error {
	if err := os.MkdirAll(filepath.Dir(rw.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(rw.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	rw.file = file
	rw.currentSize = info.Size()
	return nil
}

// Write implements io.Writer. It rotates first when the write would push the
// file past the size limit. A failed rotation is reported on stderr and the
// write still goes to the current file so log data is not lost.
func (rw *RotatingWriter) Write(p []byte) (n int, err error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return 0, fmt.Errorf("log file is closed")
	}

	if rw.maxSizeB > 0 && rw.currentSize+int64(len(p)) > rw.maxSizeB {
		if err := rw.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	n, err = rw.file.Write(p)
	rw.currentSize += int64(n)
	return n, err
}

// rotate closes the current file, shifts backups, and opens a fresh file.
// The caller must hold the mutex.
func (rw *RotatingWriter) rotate() error {
	if err := rw.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := rw.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	rw.file = nil

	rw.shiftBackups()

	backupPath := rw.backupPath(1)
	if err := os.Rename(rw.filePath, backupPath); err != nil {
		// Try to reopen the original file so logging can continue.
		if openErr := rw.openFile(); openErr != nil {
			return fmt.Errorf("failed to rename log file and reopen: %w", openErr)
		}
		return fmt.Errorf("failed to rename log file: %w", err)
	}

	if rw.compress {
		go rw.compressFile(backupPath)
	}

	return rw.openFile()
}

// shiftBackups renumbers existing backups and drops the oldest.
// Files are numbered .1 (newest) to .N (oldest).
func (rw *RotatingWriter) shiftBackups() {
	if rw.maxBackups <= 0 {
		os.Remove(rw.backupPath(1))
		os.Remove(rw.backupPath(1) + ".gz")
		return
	}

	oldest := rw.backupPath(rw.maxBackups)
	os.Remove(oldest)
	os.Remove(oldest + ".gz")

	for i := rw.maxBackups - 1; i >= 1; i-- {
		oldPath := rw.backupPath(i)
		newPath := rw.backupPath(i + 1)

		// A backup may exist compressed, uncompressed, or not at all.
		if _, err := os.Stat(oldPath + ".gz"); err == nil {
			os.Rename(oldPath+".gz", newPath+".gz")
		} else if _, err := os.Stat(oldPath); err == nil {
			os.Rename(oldPath, newPath)
		}
	}
}

// backupPath returns the path for the numbered backup file.
func (rw *RotatingWriter) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", rw.filePath, n)
}

// compressFile gzips a rotated file and removes the original. It runs
// asynchronously, so failures go to stderr and leave the uncompressed
// backup in place.
func (rw *RotatingWriter) compressFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read log file for compression %s: %v\n", path, err)
		return
	}

	gzPath := path + ".gz"
	gzFile, err := os.Create(gzPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create compressed log file %s: %v\n", gzPath, err)
		return
	}
	defer gzFile.Close()

	gzWriter := gzip.NewWriter(gzFile)
	if _, err := gzWriter.Write(data); err != nil {
		os.Remove(gzPath)
		fmt.Fprintf(os.Stderr, "Warning: failed to write compressed log data to %s: %v\n", gzPath, err)
		return
	}
	if err := gzWriter.Close(); err != nil {
		os.Remove(gzPath)
		fmt.Fprintf(os.Stderr, "Warning: failed to finalize compressed log file %s: %v\n", gzPath, err)
		return
	}

	// Only remove the original after successful compression.
	os.Remove(path)
}

// Sync flushes any buffered data to the underlying file.
func (rw *RotatingWriter) Sync() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return nil
	}
	return rw.file.Sync()
}

// Close syncs and closes the underlying file. Further writes fail.
func (rw *RotatingWriter) Close() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return nil
	}

	if err := rw.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := rw.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	rw.file = nil
	return nil
}

// CurrentSize returns the current size of the log file in bytes.
func (rw *RotatingWriter) CurrentSize() int64 {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.currentSize
}

// FilePath returns the path to the log file.
func (rw *RotatingWriter) FilePath() string {
	return rw.filePath
}
