// Package trace exports notebook activity as OpenTelemetry spans.
package trace

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// TracerName is the instrumentation scope used for notebook spans.
const TracerName = "paodiario/notebook"

// NewProvider creates a tracer provider exporting over OTLP/HTTP to endpoint,
// a base URL such as "http://localhost:4318". A bare "host:port" is taken as
// plain http. Returns nil, nil when endpoint is empty (tracing disabled).
func NewProvider(ctx context.Context, endpoint, serviceName string) (*sdktrace.TracerProvider, error) {
	if endpoint == "" {
		return nil, nil
	}
	u, err := endpointURL(endpoint)
	if err != nil {
		return nil, err
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(u))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// endpointURL turns a base endpoint into the traces URL, appending
// /v1/traces as OTEL_EXPORTER_OTLP_ENDPOINT requires.
func endpointURL(endpoint string) (string, error) {
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("otlp endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("otlp endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("otlp endpoint %q: missing host", endpoint)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/traces"
	return u.String(), nil
}

// Shutdown flushes and stops p. Safe to call with a nil provider.
func Shutdown(ctx context.Context, p *sdktrace.TracerProvider) error {
	if p == nil {
		return nil
	}
	return p.Shutdown(ctx)
}
