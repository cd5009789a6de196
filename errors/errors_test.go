package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionEmpty(t *testing.T) {
	t.Parallel()

	var c Collection

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollectionIgnoresNil(t *testing.T) {
	t.Parallel()

	var c Collection

	c.Add(nil)
	c.Add(nil)

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollectionSingle(t *testing.T) {
	t.Parallel()

	var c Collection

	c.Add(ErrBadStatus)

	require.True(t, c.HasError())
	// A single error is returned as-is, not wrapped.
	assert.Equal(t, ErrBadStatus, c.GetError())
}

func TestCollectionMultiple(t *testing.T) {
	t.Parallel()

	var c Collection

	c.Add(ErrBadStatus)
	c.Add(ErrInvalidUser)

	err := c.GetError()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestCollectionClear(t *testing.T) {
	t.Parallel()

	var c Collection

	c.Add(errors.New("transient")) //nolint:err113 // Test error
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}
