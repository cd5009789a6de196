package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startDispatchSpan creates a span covering one dispatch: reduce, publish,
// and listener notification. Uses the global tracer, which is a no-op
// unless the application initialized tracing (see the telemetry package).
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startDispatchSpan(ctx context.Context, storeName, kind string) (context.Context, trace.Span) {
	tracer := otel.Tracer("store")
	ctx, span := tracer.Start(ctx, "store.dispatch")
	span.SetAttributes(
		attribute.String("store", storeName),
		attribute.String("intent", kind),
	)

	return ctx, span
}
