// Package optional models a value that may or may not be present, avoiding
// nil-pointer conventions in selector results. An Optional is conceptually a
// set of size zero or one.
package optional

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value holding a value, or None() for an empty one.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or the provided default otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// ForEach applies the given function to the value if present.
func (o Value[T]) ForEach(f func(T)) {
	if o.isSet {
		f(o.value)
	}
}

// Map transforms the value inside an Optional, preserving emptiness.
func Map[A, B any](o Value[A], f func(A) B) Value[B] {
	if value, ok := o.Get(); ok {
		return Some(f(value))
	}

	return None[B]()
}
