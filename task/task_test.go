package task_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/amp-labs/amp-state/intent"
	"github.com/amp-labs/amp-state/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu      sync.Mutex
	intents []intent.Intent
}

func (d *recordingDispatcher) Dispatch(_ context.Context, it intent.Intent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.intents = append(d.intents, it)
}

func (d *recordingDispatcher) recorded() []intent.Intent {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]intent.Intent, len(d.intents))
	copy(out, d.intents)

	return out
}

func TestKinds(t *testing.T) {
	t.Parallel()

	life := task.New("users/fetch", func(_ context.Context) ([]string, error) {
		return nil, nil
	})

	assert.Equal(t, "users/fetch", life.Name())
	assert.Equal(t, "users/fetch.pending", life.PendingKind())
	assert.Equal(t, "users/fetch.fulfilled", life.FulfilledKind())
	assert.Equal(t, "users/fetch.rejected", life.RejectedKind())
}

func TestPendingDispatchedBeforeRunReturns(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	dispatcher := &recordingDispatcher{}

	life := task.New("blocked/op", func(_ context.Context) (int, error) {
		<-release

		return 0, nil
	})

	run := life.Run(testContext(t), dispatcher)

	// The operation has not settled yet, but pending is already visible.
	got := dispatcher.recorded()
	require.Len(t, got, 1)
	assert.Equal(t, "blocked/op.pending", got[0].Kind)

	close(release)
	require.NoError(t, run.Wait())
}

func TestFulfilledCarriesValue(t *testing.T) {
	t.Parallel()

	dispatcher := &recordingDispatcher{}

	life := task.New("math/answer", func(_ context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, life.Run(testContext(t), dispatcher).Wait())

	got := dispatcher.recorded()
	require.Len(t, got, 2)
	assert.Equal(t, "math/answer.pending", got[0].Kind)
	assert.Equal(t, "math/answer.fulfilled", got[1].Kind)

	value, ok := intent.Payload[int](got[1])
	require.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestRejectedCarriesMessage(t *testing.T) {
	t.Parallel()

	dispatcher := &recordingDispatcher{}

	life := task.New("users/fetch", func(_ context.Context) ([]string, error) {
		return nil, errors.New("connection refused")
	})

	require.NoError(t, life.Run(testContext(t), dispatcher).Wait())

	got := dispatcher.recorded()
	require.Len(t, got, 2)
	assert.Equal(t, "users/fetch.rejected", got[1].Kind)

	message, ok := intent.Payload[string](got[1])
	require.True(t, ok)
	assert.Equal(t, "connection refused", message)
}

func TestPanicResolvesToRejected(t *testing.T) {
	t.Parallel()

	dispatcher := &recordingDispatcher{}

	life := task.New("flaky/op", func(_ context.Context) (string, error) {
		panic("boom")
	})

	require.NoError(t, life.Run(testContext(t), dispatcher).Wait())

	got := dispatcher.recorded()
	require.Len(t, got, 2)
	assert.Equal(t, "flaky/op.rejected", got[1].Kind)

	message, ok := intent.Payload[string](got[1])
	require.True(t, ok)
	assert.Contains(t, message, "boom")
}

func TestEachRunResolvesOnce(t *testing.T) {
	t.Parallel()

	dispatcher := &recordingDispatcher{}

	life := task.New("steady/op", func(_ context.Context) (int, error) {
		return 1, nil
	})

	const runs = 5

	for i := 0; i < runs; i++ {
		require.NoError(t, life.Run(testContext(t), dispatcher).Wait())
	}

	pending, fulfilled := 0, 0

	for _, it := range dispatcher.recorded() {
		switch it.Kind {
		case "steady/op.pending":
			pending++
		case "steady/op.fulfilled":
			fulfilled++
		default:
			t.Fatalf("unexpected intent kind %q", it.Kind)
		}
	}

	assert.Equal(t, runs, pending)
	assert.Equal(t, runs, fulfilled)
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}
