package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates log file in directory", func(t *testing.T) {
		dir := t.TempDir()

		logger, err := NewLogger(dir, LevelDebug, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		logPath := filepath.Join(dir, LogFileName)
		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", logPath)
		}
	})

	t.Run("writes to stderr when dir is empty", func(t *testing.T) {
		logger, err := NewLogger("", LevelInfo, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if logger.out != nil {
			t.Error("expected no rotating writer when dir is empty")
		}
	})

	t.Run("defaults to INFO level for invalid level string", func(t *testing.T) {
		dir := t.TempDir()

		logger, err := NewLogger(dir, "invalid", DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if logger.logger == nil {
			t.Error("expected logger to be created")
		}
	})
}

// readEntries parses every JSON line from the log file in dir.
func readEntries(t *testing.T, dir string) []map[string]any {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not valid JSON: %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelDebug, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	logger.Close()

	entries := readEntries(t, dir)
	if len(entries) != 4 {
		t.Fatalf("expected 4 log entries, got %d", len(entries))
	}

	wantLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, entry := range entries {
		if entry["level"] != wantLevels[i] {
			t.Errorf("entry %d: expected level %s, got %v", i, wantLevels[i], entry["level"])
		}
		if entry["key"] != "value" {
			t.Errorf("entry %d: expected key=value attribute, got %v", i, entry["key"])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelWarn, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("filtered out")
	logger.Info("filtered out")
	logger.Warn("kept")
	logger.Error("kept")

	logger.Close()

	entries := readEntries(t, dir)
	if len(entries) != 2 {
		t.Errorf("expected 2 entries at WARN level, got %d", len(entries))
	}
}

func TestChildLoggers(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelDebug, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	child := logger.WithComponent("registry").WithKey("Large Circle")
	child.Info("template registered")

	// The parent must not inherit the child's attributes.
	logger.Info("plain entry")

	logger.Close()

	entries := readEntries(t, dir)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0]["component"] != "registry" {
		t.Errorf("expected component=registry, got %v", entries[0]["component"])
	}
	if entries[0]["key"] != "Large Circle" {
		t.Errorf("expected key=Large Circle, got %v", entries[0]["key"])
	}
	if _, ok := entries[1]["component"]; ok {
		t.Error("parent logger should not carry the child's component attribute")
	}
}

func TestWith(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelDebug, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.With("policy", "from-zero", "subscribers", 2).Info("hub configured")
	logger.Close()

	entries := readEntries(t, dir)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["policy"] != "from-zero" {
		t.Errorf("expected policy attribute, got %v", entries[0]["policy"])
	}
}

func TestSlogAccessor(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelDebug, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	sl := logger.WithComponent("hub").Slog()
	sl.Warn("subscriber delivery failed", "token", "sub-1")

	logger.Close()

	entries := readEntries(t, dir)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["component"] != "hub" {
		t.Errorf("Slog() should carry persistent attributes, got %v", entries[0]["component"])
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	// Must not panic or create files.
	logger.Debug("discarded")
	logger.Info("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close on NopLogger should be a no-op, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
