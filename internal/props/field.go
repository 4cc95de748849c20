// Package props resolves the controlled/uncontrolled duality of a
// state field into an explicit per-field policy fixed at construction.
package props

// Field holds one piece of widget state. A controlled field reads from
// an external getter and never mutates internally; an uncontrolled
// field owns its value. The policy is decided once, when the field is
// built, never per call.
type Field[T any] struct {
	controlled bool
	external   func() T
	value      T
}

// Controlled builds a field whose value is supplied externally
func Controlled[T any](get func() T) Field[T] {
	return Field[T]{controlled: true, external: get}
}

// Uncontrolled builds a field owned internally, seeded with def
func Uncontrolled[T any](def T) Field[T] {
	return Field[T]{value: def}
}

// Get returns the current value per the field's policy
func (f *Field[T]) Get() T {
	if f.controlled {
		return f.external()
	}
	return f.value
}

// TrySet applies v when the field is uncontrolled and reports whether
// internal state changed. Controlled fields ignore the write; the
// caller still notifies the external owner, who may apply it upstream.
func (f *Field[T]) TrySet(v T) bool {
	if f.controlled {
		return false
	}
	f.value = v
	return true
}

// Controlled reports the field's policy
func (f *Field[T]) Controlled() bool {
	return f.controlled
}
