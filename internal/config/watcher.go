package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/pulsekit/pulse/hub"
	"github.com/pulsekit/pulse/internal/logging"
)

// Watcher reloads a config file when it changes on disk and publishes each
// successfully loaded revision through a hub, so components can subscribe to
// configuration the same way they subscribe to any other observable state.
type Watcher struct {
	path    string
	hub     *hub.Hub[*Config]
	watcher *fsnotify.Watcher
	log     *logging.Logger

	started  bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a Watcher for the config file at path, publishing
// revisions to h. The initial load happens on Start; a file that fails to
// load or validate is logged and skipped, keeping the last good revision.
func NewWatcher(path string, h *hub.Hub[*Config], log *logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors and viper-style
	// atomic saves replace the file, which drops a watch set on the file
	// itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	if log == nil {
		log = logging.NopLogger()
	}

	return &Watcher{
		path:    path,
		hub:     h,
		watcher: fw,
		log:     log.WithComponent("config.watcher"),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start loads the file once and then watches it until Stop is called.
func (w *Watcher) Start() error {
	if err := w.reload(); err != nil {
		return err
	}

	w.started = true
	go w.run()
	return nil
}

// run is the watch loop. It exits when Stop is called or the underlying
// watcher closes its channels.
func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isConfigEvent(ev) {
				continue
			}
			if err := w.reload(); err != nil {
				w.log.Warn("config reload failed, keeping previous revision",
					"path", w.path, "error", err.Error())
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watch error", "error", err.Error())
		}
	}
}

// isConfigEvent reports whether ev is a write, create, or rename touching
// the watched config file.
func (w *Watcher) isConfigEvent(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// reload reads the file and publishes the new revision. Subscriber failures
// reported by the hub are logged, not treated as reload failures.
func (w *Watcher) reload() error {
	cfg, err := LoadFile(w.path)
	if err != nil {
		return err
	}

	w.log.Debug("config loaded", "path", w.path, "policy", cfg.Hub.Policy)
	if err := w.hub.SetState(cfg); err != nil {
		w.log.Warn("config subscribers reported errors", "error", err.Error())
	}
	return nil
}

// Stop ends the watch loop and closes the underlying watcher. It is safe to
// call more than once and blocks until the loop has exited.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
	if w.started {
		<-w.doneCh
	}
}
