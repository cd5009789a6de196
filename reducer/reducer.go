// Package reducer defines pure state-transition functions and the root
// combinator that composes independent per-slice reducers into a single
// update over the aggregate tree.
package reducer

import "github.com/amp-labs/amp-state/intent"

// Tree is the aggregate state: a mapping from slice name to that slice's
// sub-state. Trees are never mutated in place; every update builds a new
// tree, so a held Tree is a stable snapshot forever.
type Tree map[string]any

// Reducer is a pure transition function for a single slice's sub-state.
// For unrecognized intent kinds it must return state unchanged; this lets
// a single intent stream be broadcast to every slice.
type Reducer[S any] func(state S, it intent.Intent) S

// Slice binds a name and an initial sub-state to an untyped reducer,
// so slices with different state types can be composed into one tree.
type Slice struct {
	Name    string
	Initial any
	Reduce  func(state any, it intent.Intent) any
}

// NewSlice adapts a typed reducer into a Slice. If the current sub-state is
// missing or has an unexpected dynamic type, the initial state is used
// instead; this only matters for trees built by hand in tests, since stores
// always seed the tree from the slice initials.
func NewSlice[S any](name string, initial S, reduce Reducer[S]) Slice {
	return Slice{
		Name:    name,
		Initial: initial,
		Reduce: func(state any, it intent.Intent) any {
			sub, ok := state.(S)
			if !ok {
				sub = initial
			}

			return reduce(sub, it)
		},
	}
}

// InitialTree builds the tree holding every slice's initial sub-state.
func InitialTree(slices ...Slice) Tree {
	tree := make(Tree, len(slices))

	for _, s := range slices {
		tree[s.Name] = s.Initial
	}

	return tree
}

// Combine builds the root combinator over the given slices. The returned
// function invokes every slice's reducer with the slice's current sub-state
// and the intent (no filtering by kind) and reassembles a fresh tree. A
// slice returning an unchanged value is still written back; content equality
// is never checked.
func Combine(slices ...Slice) func(Tree, intent.Intent) Tree {
	return func(prev Tree, it intent.Intent) Tree {
		next := make(Tree, len(slices))

		for _, s := range slices {
			next[s.Name] = s.Reduce(prev[s.Name], it)
		}

		return next
	}
}
