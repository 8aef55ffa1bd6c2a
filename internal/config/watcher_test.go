package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pulsekit/pulse/hub"
	"github.com/pulsekit/pulse/internal/logging"
)

func writeConfig(t *testing.T, path, policy string) {
	t.Helper()

	yaml := "hub:\n  policy: " + policy + "\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestWatcher_InitialLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "from-zero")

	h := hub.New[*Config]()
	w, err := NewWatcher(path, h, logging.NopLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	cfg := h.State()
	if cfg == nil {
		t.Fatal("Start should publish the initial config")
	}
	if cfg.Hub.Policy != "from-zero" {
		t.Errorf("Hub.Policy = %q, want %q", cfg.Hub.Policy, "from-zero")
	}
}

func TestWatcher_StartFailsOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "sometimes")

	h := hub.New[*Config]()
	w, err := NewWatcher(path, h, logging.NopLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Stop()

	if err := w.Start(); err == nil {
		t.Error("Start should fail when the initial load is invalid")
	}
}

func TestWatcher_PublishesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "always")

	h := hub.New[*Config]()
	changed := make(chan *Config, 4)
	h.SubscribePush(func(cfg *Config) error {
		changed <- cfg
		return nil
	})

	w, err := NewWatcher(path, h, logging.NopLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// Initial publish.
	select {
	case cfg := <-changed:
		if cfg.Hub.Policy != "always" {
			t.Errorf("initial Hub.Policy = %q, want %q", cfg.Hub.Policy, "always")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("initial config was never published")
	}

	writeConfig(t, path, "on-change")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changed:
			if cfg.Hub.Policy == "on-change" {
				return // reload observed
			}
			// A partial write can deliver the old revision again; keep waiting.
		case <-deadline:
			t.Fatal("changed config was never published")
		}
	}
}

func TestWatcher_KeepsLastGoodRevision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "from-zero")

	h := hub.New[*Config]()
	w, err := NewWatcher(path, h, logging.NopLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// A broken rewrite is logged and skipped.
	writeConfig(t, path, "sometimes")
	time.Sleep(200 * time.Millisecond)

	if cfg := h.State(); cfg.Hub.Policy != "from-zero" {
		t.Errorf("Hub.Policy = %q, want last good %q", cfg.Hub.Policy, "from-zero")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "always")

	h := hub.New[*Config]()
	w, err := NewWatcher(path, h, logging.NopLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	w.Stop()
	w.Stop() // must not panic or deadlock
}
