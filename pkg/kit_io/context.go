// pkg/kit_io/context.go

package kit_io

import (
	"context"
	"runtime"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/dotkit/dotkit/pkg/kit_err"
	"github.com/dotkit/dotkit/pkg/telemetry"
)

// RuntimeContext carries the per-invocation context, scoped logger and
// telemetry span through a command's lifetime.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	Span      trace.Span
	Timestamp time.Time
	Command   string
	Component string
}

// NewContext sets up tracing and a scoped logger for one command run.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	comp, action := resolveCallContext(3)
	logger := zap.L().With(
		zap.String("component", comp),
		zap.String("action", action),
		zap.String("trace_id", traceID),
	).Named(comp)

	return &RuntimeContext{
		Ctx:       ctx,
		Log:       logger,
		Span:      span,
		Timestamp: time.Now(),
		Command:   cmdName,
		Component: comp,
	}
}

// HandlePanic recovers panics, logs them, and converts them to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the command outcome with duration and closes the span.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	switch {
	case *errPtr == nil:
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
	case kit_err.IsExpectedUserError(*errPtr):
		rc.Log.Warn("Command completed with user error",
			zap.Duration("duration", duration), zap.Error(*errPtr))
	default:
		rc.Log.Error("Command failed",
			zap.Duration("duration", duration), zap.Error(*errPtr))
	}
}

func resolveCallContext(skip int) (component, action string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown"
	}
	parts := strings.Split(file, "/")
	component = parts[len(parts)-2]
	if fn := runtime.FuncForPC(pc); fn != nil {
		fields := strings.Split(fn.Name(), ".")
		action = fields[len(fields)-1]
	} else {
		action = "unknown"
	}
	return component, action
}
