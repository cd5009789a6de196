package optional_test

import (
	"testing"

	"github.com/amp-labs/amp-state/optional"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := optional.Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	value, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := optional.None[int]()
	assert.True(t, opt.Empty())

	value, ok := opt.Get()
	assert.False(t, ok)
	assert.Zero(t, value)
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "found", optional.Some("found").GetOrElse("fallback"))
	assert.Equal(t, "fallback", optional.None[string]().GetOrElse("fallback"))
}

func TestForEach(t *testing.T) {
	t.Parallel()

	calls := 0

	optional.Some(1).ForEach(func(int) { calls++ })
	optional.None[int]().ForEach(func(int) { calls++ })

	assert.Equal(t, 1, calls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := optional.Map(optional.Some(21), func(n int) int { return n * 2 })
	assert.Equal(t, 42, doubled.GetOrElse(0))

	empty := optional.Map(optional.None[int](), func(n int) int { return n * 2 })
	assert.True(t, empty.Empty())
}
