// Package telemetry implements tracing on the OpenTelemetry SDK.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/alertcord/alertcord/internal/core/ports"
)

var _ ports.Tracer = (*Tracer)(nil)

// Tracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// New creates a tracer for the given service name. Finished spans are
// bridged to the logger, so traces stay visible without an external
// collector. Extra span processors can be supplied for tests.
func New(serviceName string, logger ports.Logger, processors ...sdktrace.SpanProcessor) *Tracer {
	res := sdkresource.NewSchemaless(attribute.String("service.name", serviceName))

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	}
	for _, processor := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(processor))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(serviceName),
	}
}

// Start creates a new span.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	attrs := make([]attribute.KeyValue, 0, len(cfg.Attributes))
	for key, value := range cfg.Attributes {
		attrs = append(attrs, attribute.String(key, value))
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, &otelSpan{span: span}
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// otelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type otelSpan struct {
	span trace.Span
}

// AddEvent records a point-in-time event on the span.
func (s *otelSpan) AddEvent(name string) {
	s.span.AddEvent(name)
}

// End completes the span. A non-nil error marks the span as failed.
func (s *otelSpan) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
