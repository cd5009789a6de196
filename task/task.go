// Package task wraps side-effecting operations in an asynchronous lifecycle
// that speaks the intent protocol: a pending intent is dispatched before the
// operation starts, and exactly one fulfilled or rejected intent is
// dispatched once it settles. Failures never propagate into the dispatch
// path; they become ordinary rejected state that reducers fold in.
package task

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-state/intent"
	"github.com/amp-labs/amp-state/logger"
	"github.com/amp-labs/amp-state/try"
	"github.com/amp-labs/amp-state/workers"
	"go.opentelemetry.io/otel/codes"
)

const (
	pendingSuffix   = ".pending"
	fulfilledSuffix = ".fulfilled"
	rejectedSuffix  = ".rejected"
)

// ErrTaskPanic is wrapped around panic values recovered from an operation.
var ErrTaskPanic = errors.New("panic in task")

// Dispatcher accepts intents. A *store.Store satisfies this interface.
type Dispatcher interface {
	Dispatch(ctx context.Context, it intent.Intent)
}

// Operation is the side-effecting work a lifecycle wraps, e.g. a remote
// fetch. It must respect the context for cancellation if it can, and it is
// invoked at most once per Run.
type Operation[T any] func(ctx context.Context) (T, error)

// Lifecycle turns an operation into the pending/fulfilled/rejected intent
// sequence. A lifecycle is stateless and reusable: each Run dispatches its
// own pending intent and its own single resolution intent. Concurrent runs
// are not deduplicated; if two runs overlap, the tree reflects whichever
// resolution is dispatched last.
type Lifecycle[T any] struct {
	name string
	op   Operation[T]
}

// New creates a lifecycle. The name prefixes the three intent kinds:
// "<name>.pending", "<name>.fulfilled", and "<name>.rejected".
func New[T any](name string, op Operation[T]) *Lifecycle[T] {
	return &Lifecycle[T]{
		name: name,
		op:   op,
	}
}

// Name returns the lifecycle's name.
func (l *Lifecycle[T]) Name() string {
	return l.name
}

// PendingKind returns the intent kind dispatched before the operation runs.
func (l *Lifecycle[T]) PendingKind() string {
	return l.name + pendingSuffix
}

// FulfilledKind returns the intent kind dispatched on success.
func (l *Lifecycle[T]) FulfilledKind() string {
	return l.name + fulfilledSuffix
}

// RejectedKind returns the intent kind dispatched on failure.
func (l *Lifecycle[T]) RejectedKind() string {
	return l.name + rejectedSuffix
}

// Pending returns the pending intent.
func (l *Lifecycle[T]) Pending() intent.Intent {
	return intent.New(l.PendingKind())
}

// Fulfilled returns the fulfilled intent carrying the operation's value.
func (l *Lifecycle[T]) Fulfilled(value T) intent.Intent {
	return intent.NewWithPayload(l.FulfilledKind(), value)
}

// Rejected returns the rejected intent carrying a human-readable message.
// Cause categories (transport, status, parse) are deliberately collapsed
// into one string; callers needing more detail have none available.
func (l *Lifecycle[T]) Rejected(message string) intent.Intent {
	return intent.NewWithPayload(l.RejectedKind(), message)
}

// Run dispatches the pending intent synchronously, then executes the
// operation on the shared background worker pool. When the operation
// settles, exactly one of the fulfilled or rejected intents is dispatched.
// The returned task can be used to wait for the resolution dispatch to
// complete; fire-and-forget callers may ignore it.
//
// Run never retries and never times out on its own. A run in flight cannot
// be cancelled through the store; callers wanting cancellation must wire it
// through the operation's context.
func (l *Lifecycle[T]) Run(ctx context.Context, d Dispatcher) pond.Task { //nolint:ireturn
	d.Dispatch(ctx, l.Pending())

	subsystem := logger.GetSubsystem(ctx)

	runsStarted.WithLabelValues(subsystem, l.name).Inc()
	runsInFlight.WithLabelValues(subsystem, l.name).Inc()

	return workers.Submit(func() {
		l.execute(ctx, d)
	})
}

// execute runs the operation and dispatches its resolution intent.
func (l *Lifecycle[T]) execute(ctx context.Context, d Dispatcher) {
	ctx, span := startRunSpan(ctx, l.name)
	defer span.End()

	subsystem := logger.GetSubsystem(ctx)

	start := time.Now()

	result := l.invoke(ctx)

	runsInFlight.WithLabelValues(subsystem, l.name).Dec()

	if result.IsFailure() {
		span.RecordError(result.Error)
		span.SetStatus(codes.Error, result.Error.Error())

		runsSettled.WithLabelValues(subsystem, l.name, outcomeRejected).Inc()
		runDuration.WithLabelValues(subsystem, l.name, outcomeRejected).Observe(time.Since(start).Seconds())

		logger.Get(ctx).Warn("task rejected", "task", l.name, "error", result.Error)

		d.Dispatch(ctx, l.Rejected(result.Error.Error()))

		return
	}

	span.SetStatus(codes.Ok, "fulfilled")

	runsSettled.WithLabelValues(subsystem, l.name, outcomeFulfilled).Inc()
	runDuration.WithLabelValues(subsystem, l.name, outcomeFulfilled).Observe(time.Since(start).Seconds())

	d.Dispatch(ctx, l.Fulfilled(result.Value))
}

// invoke calls the operation with panic recovery. A panicking operation is
// logged with its stack trace and converted into a failure, so the
// lifecycle still resolves exactly once.
func (l *Lifecycle[T]) invoke(ctx context.Context) (out try.Try[T]) {
	defer func() {
		if err := recover(); err != nil {
			logger.Get(ctx).Error("task recovered from panic",
				"task", l.name,
				"error", err,
				"stack", string(debug.Stack()))

			out = try.Failure[T](getPanicErr(l.name, err))
		}
	}()

	return try.Wrap(l.op(ctx))
}

// getPanicErr wraps a panic value into an error, preserving the original error if possible.
func getPanicErr(name string, err any) error {
	if e, ok := err.(error); ok {
		return fmt.Errorf("%w %s: %w", ErrTaskPanic, name, e)
	}

	return fmt.Errorf("%w %s: %v", ErrTaskPanic, name, err)
}
