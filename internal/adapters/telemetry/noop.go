package telemetry

import (
	"context"

	"github.com/alertcord/alertcord/internal/core/ports"
)

var _ ports.Tracer = (*NoOpTracer)(nil)

// NoOpTracer is a ports.Tracer that records nothing. It is used when
// tracing is disabled and in tests.
type NoOpTracer struct{}

// NewNoOpTracer returns a tracer that discards all spans.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

// Shutdown does nothing.
func (t *NoOpTracer) Shutdown(_ context.Context) error {
	return nil
}

type noOpSpan struct{}

func (noOpSpan) AddEvent(_ string) {}
func (noOpSpan) End(_ error)       {}
