// Package telemetry configures OpenTelemetry tracing for the API.
package telemetry

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

// ServiceName is reported as service.name and used as the otelgin server name.
const ServiceName = "ewidencja-sprzetu"

// Options selects the exporter and sampling.
type Options struct {
	Enabled     bool
	Endpoint    string // OTLP/HTTP host:port; stdout exporter when empty
	SampleRatio float64
	Version     string
	Environment string
}

// Init installs a global tracer provider. With tracing disabled it installs
// nothing and returns a no-op shutdown.
func Init(ctx context.Context, logger *slog.Logger, opts Options) (func(context.Context) error, error) {
	if !opts.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(strings.TrimSpace(opts.Version)),
			attribute.String("deployment.environment", opts.Environment),
		),
	)
	if err != nil {
		logger.Warn("otel resource init failed (continuing)", slog.String("error", err.Error()))
	}

	exporter, err := buildTraceExporter(ctx, logger, opts.Endpoint)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(opts.SampleRatio)))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("otel tracing initialized", slog.String("endpoint", opts.Endpoint))
	return tp.Shutdown, nil
}

func buildTraceExporter(ctx context.Context, logger *slog.Logger, endpoint string) (sdktrace.SpanExporter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint != "" {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint))
	}
	logger.Warn("otel using stdout exporter (no OTLP endpoint configured)")
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func clampRatio(ratio float64) float64 {
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}
