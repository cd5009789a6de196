// Package counter is a state slice holding a single signed integer,
// adjusted by increment, decrement, reset, and increment-by-amount intents.
package counter

import (
	"github.com/amp-labs/amp-state/intent"
	"github.com/amp-labs/amp-state/reducer"
	"github.com/amp-labs/amp-state/selector"
)

// SliceName is the counter slice's key in the state tree.
const SliceName = "counter"

// Intent kinds recognized by the counter reducer.
const (
	KindIncrement         = "counter/increment"
	KindDecrement         = "counter/decrement"
	KindReset             = "counter/reset"
	KindIncrementByAmount = "counter/incrementByAmount"
)

// State is the counter slice state.
type State struct {
	Value int `json:"value"`
}

// Increment returns an intent that adds one to the counter.
func Increment() intent.Intent {
	return intent.New(KindIncrement)
}

// Decrement returns an intent that subtracts one from the counter.
func Decrement() intent.Intent {
	return intent.New(KindDecrement)
}

// Reset returns an intent that sets the counter back to zero.
func Reset() intent.Intent {
	return intent.New(KindReset)
}

// IncrementByAmount returns an intent that adds the given amount to the
// counter. Negative amounts subtract.
func IncrementByAmount(amount int) intent.Intent {
	return intent.NewWithPayload(KindIncrementByAmount, amount)
}

// Reduce folds one intent into the counter state. Unrecognized intent kinds
// and increment-by-amount intents with a non-integer payload leave the state
// unchanged.
func Reduce(state State, it intent.Intent) State {
	switch it.Kind {
	case KindIncrement:
		return State{Value: state.Value + 1}
	case KindDecrement:
		return State{Value: state.Value - 1}
	case KindReset:
		return State{}
	case KindIncrementByAmount:
		amount, ok := intent.Payload[int](it)
		if !ok {
			return state
		}

		return State{Value: state.Value + amount}
	default:
		return state
	}
}

// NewSlice returns the counter slice for store registration. The initial
// value is zero.
func NewSlice() reducer.Slice {
	return reducer.NewSlice(SliceName, State{}, Reduce)
}

// SelectState projects the counter slice out of the state tree.
func SelectState() selector.Selector[State] {
	return selector.Slice[State](SliceName)
}

// SelectValue projects the counter's current value out of the state tree.
func SelectValue() selector.Selector[int] {
	return selector.Map(SelectState(), func(s State) int {
		return s.Value
	})
}
