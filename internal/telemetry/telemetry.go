// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "mazeband"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Setup initializes OpenTelemetry with OTLP HTTP exporter.
// It reads configuration from standard OTEL_* environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT: Honeycomb endpoint (https://api.honeycomb.io)
//   - OTEL_EXPORTER_OTLP_HEADERS: Headers including x-honeycomb-team=<api-key>
//
// Exporter and SDK errors are reported through logger.
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, logger logr.Logger) (shutdown func(context.Context) error, err error) {
	otel.SetLogger(logger)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Error(err, "telemetry export failed")
	}))

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Built without resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
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

// ConfigureHoneycomb points the standard OTLP environment variables at
// Honeycomb. The API key is sent as a header, so an empty key leaves the
// headers untouched.
func ConfigureHoneycomb(apiKey, dataset string) {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	if dataset == "" {
		dataset = serviceName
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

// Tracer returns a named tracer for the given component.
// Until Setup runs this is backed by the global no-op provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}

// Init sets up tracing when enabled and returns a shutdown function that
// is always safe to call. Setup failures are logged and tracing stays off;
// the program works the same without it.
func Init(ctx context.Context, enabled bool, apiKey, dataset string, logger logr.Logger) func(context.Context) {
	if !enabled {
		return func(context.Context) {}
	}
	if apiKey != "" {
		ConfigureHoneycomb(apiKey, dataset)
	}

	shutdown, err := Setup(ctx, logger)
	if err != nil {
		logger.Error(err, "telemetry setup failed, continuing without traces")
		return func(context.Context) {}
	}
	return func(ctx context.Context) {
		if err := shutdown(ctx); err != nil {
			logger.Error(err, "telemetry shutdown failed")
		}
	}
}
