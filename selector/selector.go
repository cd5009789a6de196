// Package selector provides pure read-only projections from the aggregate
// state tree. Selectors are the only read surface consumers should use;
// they decouple consumers from the tree's internal shape and never mutate
// or dispatch.
package selector

import (
	"github.com/amp-labs/amp-state/reducer"
	"github.com/amp-labs/amp-state/zero"
)

// Selector projects a value out of a state tree.
type Selector[T any] func(tree reducer.Tree) T

// Slice returns a selector for a whole slice sub-state. If the slice is
// missing or holds an unexpected type, the zero value of S is returned.
func Slice[S any](name string) Selector[S] {
	return func(tree reducer.Tree) S {
		sub, ok := tree[name].(S)
		if !ok {
			return zero.Value[S]()
		}

		return sub
	}
}

// Map derives a selector by projecting the result of another selector.
func Map[A, B any](sel Selector[A], f func(A) B) Selector[B] {
	return func(tree reducer.Tree) B {
		return f(sel(tree))
	}
}
