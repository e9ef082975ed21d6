package ports

import "context"

// SpanConfig holds options applied when starting a span.
type SpanConfig struct {
	Attributes map[string]string
}

// SpanOption configures a span at creation time.
type SpanOption func(*SpanConfig)

// WithAttribute attaches a string attribute to the span.
func WithAttribute(key, value string) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]string)
		}
		cfg.Attributes[key] = value
	}
}

// Span represents a single traced operation.
type Span interface {
	// AddEvent records a point-in-time event on the span.
	AddEvent(name string)

	// End completes the span. A non-nil error marks the span as failed.
	End(err error)
}

// Tracer defines the interface for tracing relay operations.
type Tracer interface {
	// Start creates a new span and returns a context carrying it.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// Shutdown flushes and stops the tracer.
	Shutdown(ctx context.Context) error
}
