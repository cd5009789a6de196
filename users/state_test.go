package users_test

import (
	"testing"

	"github.com/amp-labs/amp-state/intent"
	"github.com/amp-labs/amp-state/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceLifecycle(t *testing.T) {
	t.Parallel()

	state := users.State{Status: users.StatusIdle}

	state = users.Reduce(state, intent.New(users.KindFetchPending))
	assert.Equal(t, users.StatusLoading, state.Status)
	assert.Empty(t, state.Err)

	fetched := []users.User{{ID: 1, Name: "Leanne Graham"}}

	state = users.Reduce(state, intent.NewWithPayload(users.KindFetchFulfilled, fetched))
	assert.Equal(t, users.StatusSucceeded, state.Status)
	assert.Equal(t, fetched, state.Users)
	assert.Empty(t, state.Err)
}

func TestReduceRejectionRetainsUsers(t *testing.T) {
	t.Parallel()

	previous := []users.User{{ID: 1, Name: "Leanne Graham"}}
	state := users.State{Users: previous, Status: users.StatusSucceeded}

	state = users.Reduce(state, intent.New(users.KindFetchPending))
	assert.Equal(t, users.StatusLoading, state.Status)
	assert.Equal(t, previous, state.Users)

	state = users.Reduce(state, intent.NewWithPayload(users.KindFetchRejected, "connection refused"))
	assert.Equal(t, users.StatusFailed, state.Status)
	assert.Equal(t, "connection refused", state.Err)
	assert.Equal(t, previous, state.Users)
}

func TestReducePendingClearsError(t *testing.T) {
	t.Parallel()

	state := users.State{Status: users.StatusFailed, Err: "connection refused"}

	state = users.Reduce(state, intent.New(users.KindFetchPending))
	assert.Equal(t, users.StatusLoading, state.Status)
	assert.Empty(t, state.Err)
}

func TestReduceIgnoresUnrecognizedAndBadPayloads(t *testing.T) {
	t.Parallel()

	state := users.State{Users: []users.User{{ID: 1}}, Status: users.StatusSucceeded}

	assert.Equal(t, state, users.Reduce(state, intent.New("counter/increment")))
	assert.Equal(t, state, users.Reduce(state,
		intent.NewWithPayload(users.KindFetchFulfilled, "not a user list")))
	assert.Equal(t, state, users.Reduce(state,
		intent.NewWithPayload(users.KindFetchRejected, 404)))
}

func TestSelectors(t *testing.T) {
	t.Parallel()

	list := []users.User{
		{ID: 1, Name: "Leanne Graham"},
		{ID: 2, Name: "Ervin Howell"},
	}

	tree := map[string]any{
		users.SliceName: users.State{
			Users:  list,
			Status: users.StatusSucceeded,
		},
	}

	assert.Equal(t, list, users.SelectAll()(tree))
	assert.Equal(t, users.StatusSucceeded, users.SelectStatus()(tree))
	assert.Empty(t, users.SelectError()(tree))

	found, ok := users.SelectByID(2)(tree).Get()
	require.True(t, ok)
	assert.Equal(t, "Ervin Howell", found.Name)

	assert.True(t, users.SelectByID(99)(tree).Empty())
}

func TestSelectorsOnInitialTree(t *testing.T) {
	t.Parallel()

	tree := map[string]any{}

	assert.Empty(t, users.SelectAll()(tree))
	assert.Empty(t, users.SelectStatus()(tree))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := []users.User{{ID: 1}, {ID: 2}, {ID: 3}}
	require.NoError(t, users.Validate(valid))

	err := users.Validate([]users.User{{ID: 1}, {ID: 1}, {ID: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id 1")
	assert.Contains(t, err.Error(), "id 0 is not positive")
}
