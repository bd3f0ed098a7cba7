package caplog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// SpanFields returns trace_id and span_id fields for the span carried by
// ctx, so tests can assert that log events are trace-correlated. It returns
// nil when ctx holds no valid span context.
func SpanFields(ctx context.Context) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}
