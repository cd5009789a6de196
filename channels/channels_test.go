package channels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseIgnorePanic(t *testing.T) {
	t.Parallel()

	ch := make(chan int)

	assert.NotPanics(t, func() {
		CloseIgnorePanic(ch)
	})

	// Closing twice must not panic either.
	assert.NotPanics(t, func() {
		CloseIgnorePanic(ch)
	})
}

func TestCloseIgnorePanicNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		CloseIgnorePanic[int](nil)
	})
}

func TestInfiniteOrdering(t *testing.T) {
	t.Parallel()

	in, out := Infinite[int]()

	const count = 1000

	// Sends never block, even with no receiver running.
	for i := 0; i < count; i++ {
		in <- i
	}

	close(in)

	for i := 0; i < count; i++ {
		v, ok := <-out
		require.True(t, ok)
		require.Equal(t, i, v)
	}

	_, ok := <-out
	assert.False(t, ok, "output channel should be closed after drain")
}

func TestInfiniteConcurrent(t *testing.T) {
	t.Parallel()

	in, out := Infinite[string]()

	go func() {
		for i := 0; i < 100; i++ {
			in <- "tick"
		}

		close(in)
	}()

	received := 0

	timeout := time.After(5 * time.Second)

	for {
		select {
		case _, ok := <-out:
			if !ok {
				assert.Equal(t, 100, received)

				return
			}

			received++
		case <-timeout:
			t.Fatal("timed out waiting for infinite channel to drain")
		}
	}
}
