// Package prototype provides a keyed registry of cloneable template values.
//
// A [Registry] maps string keys to templates implementing the [Cloner]
// capability. Lookup never hands out the stored template itself: Get clones
// it, so every returned value is independently mutable and mutating a clone
// never affects the template or any previously returned clone. How deep the
// copy goes is the registered type's responsibility, not the registry's.
//
// # Basic Usage
//
//	reg := prototype.New[Shape]()
//	reg.Register("Large Circle", &Circle{Radius: 10})
//
//	shape, ok := reg.Get("Large Circle")
//	if !ok {
//	    // key was never registered; no clone is produced
//	}
//
// Re-registering a key replaces the previous template (last write wins).
// All Registry methods are safe for concurrent use.
package prototype
