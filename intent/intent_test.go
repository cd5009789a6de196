package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	it := New("counter/reset")
	assert.Equal(t, "counter/reset", it.Kind)
	assert.Nil(t, it.Payload)
}

func TestNewWithPayload(t *testing.T) {
	t.Parallel()

	it := NewWithPayload("counter/incrementByAmount", 5)
	assert.Equal(t, "counter/incrementByAmount", it.Kind)
	assert.Equal(t, 5, it.Payload)
}

func TestPayload(t *testing.T) {
	t.Parallel()

	it := NewWithPayload("counter/incrementByAmount", 5)

	amount, ok := Payload[int](it)
	require.True(t, ok)
	assert.Equal(t, 5, amount)

	// Wrong type yields the zero value and false.
	_, ok = Payload[string](it)
	assert.False(t, ok)

	// Missing payload yields the zero value and false.
	_, ok = Payload[int](New("counter/increment"))
	assert.False(t, ok)
}
