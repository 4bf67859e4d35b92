// pkg/telemetry/telemetry.go

package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var tracer trace.Tracer = noop.NewTracerProvider().Tracer("dotkit")

// Init configures OpenTelemetry; call this early in main(). Telemetry is
// opt-in via a marker file and records spans to a local JSONL file only.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	dir, err := stateDir()
	if err != nil {
		return cerr.Wrap(err, "resolve telemetry directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return cerr.Wrap(err, "create telemetry directory")
	}

	file, err := os.OpenFile(filepath.Join(dir, "telemetry.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return cerr.Wrap(err, "open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	return nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// IsEnabled reports whether the user has opted in to local telemetry.
func IsEnabled() bool {
	dir, err := stateDir()
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, "telemetry_on"))
	return err == nil
}

// AnonTelemetryID returns a stable, anonymous per-install identifier.
func AnonTelemetryID() string {
	dir, err := stateDir()
	if err != nil {
		return "unknown"
	}
	idPath := filepath.Join(dir, "telemetry_id")
	if b, err := os.ReadFile(idPath); err == nil {
		return strings.TrimSpace(string(b))
	}
	id := uuid.New().String()
	_ = os.MkdirAll(dir, 0o700)
	_ = os.WriteFile(idPath, []byte(id+"\n"), 0o600)
	return id
}

func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "dotkit"), nil
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
