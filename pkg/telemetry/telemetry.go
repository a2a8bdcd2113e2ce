// Package telemetry provides OpenTelemetry tracing for the exploration engine.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"hexcrawl/pkg/engine/hex"
)

const (
	serviceName    = "hexcrawl"
	serviceVersion = "0.1.0"
)

// Setup initializes OpenTelemetry with an OTLP HTTP exporter.
// Endpoint and headers come from the standard OTEL_EXPORTER_OTLP_* variables.
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("hexcrawl/" + name)
}

// NoopTracer returns a tracer that records nothing, for tests and disabled telemetry
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("hexcrawl/noop")
}

// CoordAttrs returns span attributes for a hex coordinate
func CoordAttrs(c hex.Coord) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("hex.col", c.Col),
		attribute.Int("hex.row", c.Row),
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
