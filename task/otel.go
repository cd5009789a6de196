package task

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startRunSpan starts a span covering a task run from operation start to
// resolution dispatch. The caller must end the span.
//
//nolint:spancheck
func startRunSpan(ctx context.Context, taskName string) (context.Context, trace.Span) {
	return otel.Tracer("task").Start(ctx, "task.run",
		trace.WithAttributes(
			attribute.String("task", taskName),
		))
}
