package users

import (
	"github.com/amp-labs/amp-state/intent"
	"github.com/amp-labs/amp-state/optional"
	"github.com/amp-labs/amp-state/reducer"
	"github.com/amp-labs/amp-state/selector"
)

// SliceName is the users slice's key in the state tree.
const SliceName = "users"

// TaskName prefixes the fetch lifecycle's intent kinds.
const TaskName = "users/fetch"

// Intent kinds recognized by the users reducer. They are the fetch
// lifecycle's three resolution phases.
const (
	KindFetchPending   = TaskName + ".pending"
	KindFetchFulfilled = TaskName + ".fulfilled"
	KindFetchRejected  = TaskName + ".rejected"
)

// Status tracks where the most recent fetch is in its lifecycle.
type Status string

const (
	// StatusIdle means no fetch has been started yet.
	StatusIdle Status = "idle"
	// StatusLoading means a fetch is in flight.
	StatusLoading Status = "loading"
	// StatusSucceeded means the most recent fetch replaced the users list.
	StatusSucceeded Status = "succeeded"
	// StatusFailed means the most recent fetch failed; Err holds the reason.
	StatusFailed Status = "failed"
)

// State is the users slice state. After a failed fetch the previous users
// list is retained alongside the error.
type State struct {
	Users  []User `json:"users"`
	Status Status `json:"status"`
	Err    string `json:"error"`
}

// Reduce folds one intent into the users state. Unrecognized intent kinds
// and fetch resolutions with a wrongly-typed payload leave the state
// unchanged.
func Reduce(state State, it intent.Intent) State {
	switch it.Kind {
	case KindFetchPending:
		return State{
			Users:  state.Users,
			Status: StatusLoading,
		}
	case KindFetchFulfilled:
		list, ok := intent.Payload[[]User](it)
		if !ok {
			return state
		}

		return State{
			Users:  list,
			Status: StatusSucceeded,
		}
	case KindFetchRejected:
		message, ok := intent.Payload[string](it)
		if !ok {
			return state
		}

		return State{
			Users:  state.Users,
			Status: StatusFailed,
			Err:    message,
		}
	default:
		return state
	}
}

// NewSlice returns the users slice for store registration. The initial state
// is an empty list with idle status and no error.
func NewSlice() reducer.Slice {
	return reducer.NewSlice(SliceName, State{Status: StatusIdle}, Reduce)
}

// SelectState projects the users slice out of the state tree.
func SelectState() selector.Selector[State] {
	return selector.Slice[State](SliceName)
}

// SelectAll projects the full users list out of the state tree.
func SelectAll() selector.Selector[[]User] {
	return selector.Map(SelectState(), func(s State) []User {
		return s.Users
	})
}

// SelectStatus projects the fetch status out of the state tree.
func SelectStatus() selector.Selector[Status] {
	return selector.Map(SelectState(), func(s State) Status {
		return s.Status
	})
}

// SelectError projects the most recent fetch error message out of the state
// tree. It is empty unless the status is failed.
func SelectError() selector.Selector[string] {
	return selector.Map(SelectState(), func(s State) string {
		return s.Err
	})
}

// SelectByID projects the user with the given ID out of the state tree,
// empty when no such user is loaded.
func SelectByID(id int) selector.Selector[optional.Value[User]] {
	return selector.Map(SelectState(), func(s State) optional.Value[User] {
		for _, user := range s.Users {
			if user.ID == id {
				return optional.Some(user)
			}
		}

		return optional.None[User]()
	})
}
