package hub

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Callback is a pull-model subscriber function. It receives no payload; it is
// expected to call [Hub.State] for the current value. A non-nil return is
// collected as a [DeliveryError] by the in-flight SetState call.
type Callback func() error

// Token uniquely identifies one subscription within a Hub. Two subscriptions
// of the same callback receive distinct tokens.
type Token string

// subscription pairs a token with the registered callback. Exactly one of
// pull and push is set.
type subscription[V any] struct {
	token Token
	pull  Callback
	push  func(V) error
}

// Hub is a generic subject holding one observable value and an ordered list
// of subscribers. It is safe for concurrent use; see the package documentation
// for the delivery semantics.
type Hub[V any] struct {
	mu     sync.RWMutex
	state  V
	subs   []subscription[V]
	nextID atomic.Uint64
	policy Policy[V]
	log    *slog.Logger
}

// Option configures a Hub during construction.
type Option[V any] func(*Hub[V])

// WithPolicy sets the predicate consulted on every SetState call. The default
// is [Always].
func WithPolicy[V any](p Policy[V]) Option[V] {
	return func(h *Hub[V]) {
		if p != nil {
			h.policy = p
		}
	}
}

// WithLogger sets the structured logger used to report delivery failures.
// The default logger discards everything.
func WithLogger[V any](log *slog.Logger) Option[V] {
	return func(h *Hub[V]) {
		if log != nil {
			h.log = log
		}
	}
}

// New creates an empty Hub whose state starts at the zero value of V.
func New[V any](opts ...Option[V]) *Hub[V] {
	h := &Hub[V]{
		policy: Always[V](),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers a pull-model callback and returns a token for later
// removal. Subscription never fails; registering the same callback twice
// creates two independent subscriptions, both of which will be notified.
func (h *Hub[V]) Subscribe(cb Callback) Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	tok := h.nextToken()
	h.subs = append(h.subs, subscription[V]{token: tok, pull: cb})
	return tok
}

// SubscribePush registers a push-model callback that receives the new value
// directly. This is an extension to the pull contract for subscribers that
// would otherwise immediately call State.
func (h *Hub[V]) SubscribePush(fn func(V) error) Token {
	h.mu.Lock()
	defer h.mu.Unlock()

	tok := h.nextToken()
	h.subs = append(h.subs, subscription[V]{token: tok, push: fn})
	return tok
}

// Unsubscribe removes the subscription identified by tok. It returns false if
// the token is unknown or already removed; that is not an error. Other
// subscriptions sharing the same callback are unaffected. A fan-out already
// in flight keeps its snapshot; exclusion is guaranteed from the next round.
func (h *Hub[V]) Unsubscribe(tok Token) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, sub := range h.subs {
		if sub.token == tok {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return true
		}
	}
	return false
}

// SetState updates the observable value and, if the hub's policy accepts the
// transition, notifies every subscriber registered at that instant, in
// subscription order. The old value, new value, and subscriber snapshot are
// taken atomically; callbacks run without the lock held.
//
// Every subscriber is attempted even when earlier ones fail. The returned
// error is nil on a clean round, otherwise the [DeliveryError] values joined
// with errors.Join.
func (h *Hub[V]) SetState(v V) error {
	h.mu.Lock()
	old := h.state
	h.state = v
	notify := h.policy(old, v)

	var snapshot []subscription[V]
	if notify {
		snapshot = make([]subscription[V], len(h.subs))
		copy(snapshot, h.subs)
	}
	h.mu.Unlock()

	if !notify {
		return nil
	}

	var errs []error
	for _, sub := range snapshot {
		if err := h.deliver(sub, v); err != nil {
			h.log.Warn("subscriber delivery failed",
				"token", string(sub.token), "error", err)
			errs = append(errs, &DeliveryError{Token: sub.token, Err: err})
		}
	}
	return errors.Join(errs...)
}

// deliver invokes a single subscriber and converts a panic into an error so
// one misbehaving subscriber cannot break delivery to the rest.
func (h *Hub[V]) deliver(sub subscription[V], v V) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panicked: %v\n%s", r, debug.Stack())
		}
	}()

	if sub.push != nil {
		return sub.push(v)
	}
	return sub.pull()
}

// State returns the last value passed to SetState, or the zero value of V if
// SetState has never been called.
func (h *Hub[V]) State() V {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// SubscriberCount returns the number of active subscriptions.
func (h *Hub[V]) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Clear removes all subscriptions. The state is left untouched.
func (h *Hub[V]) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = nil
}

// nextToken creates a unique subscription token.
// The caller must hold the write lock.
func (h *Hub[V]) nextToken() Token {
	return Token(fmt.Sprintf("sub-%d", h.nextID.Add(1)))
}
