// Package zero provides utilities for working with zero values of generic
// type parameters, where `var x T` is clumsy to write inline.
package zero

import "reflect"

// Value returns the zero value for type T.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is deeply equal to the zero value of T.
func IsZero[T any](value T) bool {
	return reflect.DeepEqual(value, Value[T]())
}
