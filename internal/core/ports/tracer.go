package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// SpanConfig holds configuration applied when starting a span.
type SpanConfig struct {
	// Attributes are key-value pairs attached at span start.
	Attributes map[string]any
}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// WithAttribute attaches an attribute to the span at start.
func WithAttribute(key string, value any) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]any)
		}
		cfg.Attributes[key] = value
	}
}

// Tracer creates spans for build executions. Spans double as the live output
// sink for the external toolchain: everything written to a span is streamed
// to the active renderer.
type Tracer interface {
	// Start begins a new span with the given name.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// EmitPlan signals the set of assets planned for this run.
	EmitPlan(ctx context.Context, assets []string)
}

// Span represents one traced build execution.
type Span interface {
	io.Writer

	// End completes the span.
	End()

	// RecordError marks the span as failed.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
