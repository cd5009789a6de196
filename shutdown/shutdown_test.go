package shutdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsHooksInOrder(t *testing.T) { //nolint:paralleltest // mutates package state
	var order []int

	BeforeShutdown(func() {
		order = append(order, 1)
	})
	BeforeShutdown(func() {
		order = append(order, 2)
	})

	Shutdown()

	assert.Equal(t, []int{1, 2}, order)
}

func TestShutdownIsIdempotent(t *testing.T) { //nolint:paralleltest // mutates package state
	calls := 0

	BeforeShutdown(func() {
		calls++
	})

	Shutdown()
	Shutdown()

	assert.Equal(t, 1, calls)
}
