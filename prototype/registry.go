package prototype

import (
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/gobwas/glob"
)

// Cloner is the capability a template must provide to live in a Registry.
// Clone must return a copy with no shared mutable substructure: mutating the
// clone must never mutate the original or any other clone.
type Cloner[T any] interface {
	Clone() T
}

// Registry stores named templates and hands out independent copies on lookup.
// It is safe for concurrent use.
type Registry[T Cloner[T]] struct {
	mu        sync.RWMutex
	templates map[string]T
	log       *slog.Logger
}

// Option configures a Registry during construction.
type Option[T Cloner[T]] func(*Registry[T])

// WithLogger sets the structured logger used for registration events.
// The default logger discards everything.
func WithLogger[T Cloner[T]](log *slog.Logger) Option[T] {
	return func(r *Registry[T]) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates an empty Registry.
func New[T Cloner[T]](opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		templates: make(map[string]T),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores template under key, replacing any prior entry for the same
// key. Last write wins.
func (r *Registry[T]) Register(key string, template T) {
	r.mu.Lock()
	_, replaced := r.templates[key]
	r.templates[key] = template
	r.mu.Unlock()

	if replaced {
		r.log.Debug("template replaced", "key", key)
	} else {
		r.log.Debug("template registered", "key", key)
	}
}

// Get returns a clone of the template stored under key. If the key is not
// registered it returns the zero value and false; no clone is produced.
func (r *Registry[T]) Get(key string) (T, bool) {
	r.mu.RLock()
	template, ok := r.templates[key]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, false
	}
	// Clone outside the lock; the interface value read above stays valid even
	// if the key is concurrently replaced or removed.
	return template.Clone(), true
}

// Remove deletes the entry for key. It returns false if the key was not
// registered; that is not an error.
func (r *Registry[T]) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[key]; !ok {
		return false
	}
	delete(r.templates, key)
	return true
}

// Has reports whether a template is registered under key.
func (r *Registry[T]) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[key]
	return ok
}

// Len returns the number of registered templates.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Keys returns all registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Match returns the registered keys matching the given glob pattern, in
// sorted order. It returns an error if the pattern does not compile.
func (r *Registry[T]) Match(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, k := range r.Keys() {
		if g.Match(k) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
