package logging

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewRotatingWriter(t *testing.T) {
	t.Run("creates log file", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "test.log")

		rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer func() { _ = rw.Close() }()

		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", logPath)
		}
	})

	t.Run("creates nested directories", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "nested", "dir", "test.log")

		rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer func() { _ = rw.Close() }()

		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", logPath)
		}
	})

	t.Run("appends to existing file", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "test.log")

		if err := os.WriteFile(logPath, []byte("existing\n"), 0644); err != nil {
			t.Fatalf("failed to seed log file: %v", err)
		}

		rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		if _, err := rw.Write([]byte("appended\n")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		rw.Close()

		data, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(data), "existing") || !strings.Contains(string(data), "appended") {
			t.Errorf("expected both lines in log file, got %q", string(data))
		}
	})
}

// tinyWriter builds a writer with a byte-level size cap. MaxSizeMB only
// offers megabyte granularity, so tests set maxSizeB directly.
func tinyWriter(t *testing.T, logPath string, maxBytes int64, backups int, compress bool) *RotatingWriter {
	t.Helper()

	rw, err := NewRotatingWriter(logPath, RotationConfig{
		MaxSizeMB:  1,
		MaxBackups: backups,
		Compress:   compress,
	})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	rw.maxSizeB = maxBytes
	return rw
}

func TestRotatingWriter_Rotates(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	rw := tinyWriter(t, logPath, 32, 2, false)
	defer func() { _ = rw.Close() }()

	line := bytes.Repeat([]byte("x"), 20)
	line = append(line, '\n')

	// Three writes of 21 bytes against a 32-byte cap force two rotations.
	for i := 0; i < 3; i++ {
		if _, err := rw.Write(line); err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
	}

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("current log file should exist: %v", err)
	}
	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("backup .1 should exist: %v", err)
	}
	if _, err := os.Stat(logPath + ".2"); err != nil {
		t.Errorf("backup .2 should exist: %v", err)
	}
}

func TestRotatingWriter_DropsOldestBackup(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	rw := tinyWriter(t, logPath, 16, 1, false)
	defer func() { _ = rw.Close() }()

	for i := 0; i < 4; i++ {
		if _, err := rw.Write([]byte("0123456789abcdef\n")); err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
	}

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("backup .1 should exist: %v", err)
	}
	if _, err := os.Stat(logPath + ".2"); err == nil {
		t.Error("backup .2 should have been dropped with MaxBackups=1")
	}
}

func TestRotatingWriter_Compress(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	rw := tinyWriter(t, logPath, 16, 2, true)
	defer func() { _ = rw.Close() }()

	payload := []byte("0123456789abcdef\n")
	if _, err := rw.Write(payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := rw.Write(payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Compression runs asynchronously after rotation.
	gzPath := logPath + ".1.gz"
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(gzPath); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("compressed backup %s never appeared", gzPath)
		}
		time.Sleep(10 * time.Millisecond)
	}

	f, err := os.Open(gzPath)
	if err != nil {
		t.Fatalf("failed to open compressed backup: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("backup is not valid gzip: %v", err)
	}
	data, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("failed to decompress backup: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("decompressed backup = %q, want %q", data, payload)
	}

	if _, err := os.Stat(logPath + ".1"); err == nil {
		t.Error("uncompressed backup should be removed after compression")
	}
}

func TestRotatingWriter_DisabledRotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	rw, err := NewRotatingWriter(logPath, RotationConfig{MaxSizeMB: 0})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	defer func() { _ = rw.Close() }()

	for i := 0; i < 10; i++ {
		if _, err := rw.Write(bytes.Repeat([]byte("y"), 100)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if _, err := os.Stat(logPath + ".1"); err == nil {
		t.Error("rotation should be disabled with MaxSizeMB=0")
	}
	if rw.CurrentSize() != 1000 {
		t.Errorf("CurrentSize = %d, want 1000", rw.CurrentSize())
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}

	if err := rw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	if _, err := rw.Write([]byte("too late")); err == nil {
		t.Error("Write after Close should fail")
	}
}
