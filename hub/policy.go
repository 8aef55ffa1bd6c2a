package hub

// Policy decides whether a state transition should trigger a notification
// round. It is called with the previous and the new value while the hub's
// write lock is held, so it must not call back into the hub.
type Policy[V any] func(old, new V) bool

// Always notifies on every SetState call, including one that re-sets the
// current value. This is the default policy.
func Always[V any]() Policy[V] {
	return func(V, V) bool { return true }
}

// FromZero notifies only when the previous value was the zero value of V.
// This reproduces the narrow first-transition trigger of classic registry
// style subjects: after the first transition away from zero, further changes
// are silent until the value returns to zero.
func FromZero[V comparable]() Policy[V] {
	return func(old, _ V) bool {
		var zero V
		return old == zero
	}
}

// OnChange notifies only when the new value differs from the previous one.
func OnChange[V comparable]() Policy[V] {
	return func(old, new V) bool {
		return old != new
	}
}
