// Package once provides a guarded lazy-initialization helper for
// process-wide state: the value is built on first use, every caller sees the
// same instance, and tests can tear it down explicitly.
package once

import "sync"

// Lazy holds a value that is initialized at most once per Reset cycle.
// It is safe for concurrent use.
type Lazy[T any] struct {
	mu   sync.Mutex
	init func() (T, error)
	val  T
	done bool
}

// NewLazy creates a Lazy whose value is produced by init on first Get.
func NewLazy[T any](init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the initialized value, running the init function on the first
// call. A failed init is not cached: the next Get retries.
func (l *Lazy[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return l.val, nil
	}

	val, err := l.init()
	if err != nil {
		var zero T
		return zero, err
	}

	l.val = val
	l.done = true
	return l.val, nil
}

// Initialized reports whether the value has been built.
func (l *Lazy[T]) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Reset discards the value so the next Get re-initializes. If teardown is
// non-nil and the value was initialized, it runs on the old value first.
func (l *Lazy[T]) Reset(teardown func(T)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done && teardown != nil {
		teardown(l.val)
	}

	var zero T
	l.val = zero
	l.done = false
}
