// pkg/execute/execute.go

package execute

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/dotkit/dotkit/pkg/telemetry"
)

// Options controls a single subprocess invocation.
type Options struct {
	Command string
	Args    []string
	Dir     string
	// Env entries are appended to the parent environment.
	Env     []string
	Capture bool
	Timeout time.Duration
	Retries int
	Delay   time.Duration
	Logger  *zap.Logger
}

// Run executes a command with structured logging and proper error
// handling. Shell interpretation is never used; arguments go straight to
// the binary.
func Run(ctx context.Context, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout(opts.Timeout))
	defer cancel()

	ctx, span := telemetry.Start(ctx, "execute.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", opts.Command),
		attribute.String("args", strings.Join(opts.Args, " ")),
	)

	cmdStr := buildCommandString(opts.Command, opts.Args...)
	logger.Debug("Starting execution", zap.String("command", cmdStr))

	var output string
	var err error

	for i := 1; i <= max(1, opts.Retries); i++ {
		cmd := exec.CommandContext(ctx, opts.Command, opts.Args...)
		if opts.Dir != "" {
			cmd.Dir = opts.Dir
		}
		if len(opts.Env) > 0 {
			cmd.Env = append(os.Environ(), opts.Env...)
		}

		var buf bytes.Buffer
		cmd.Stdout = &buf
		cmd.Stderr = &buf

		err = cmd.Run()
		output = buf.String()

		if err == nil {
			logger.Debug("Execution succeeded", zap.String("command", cmdStr))
			break
		}

		span.RecordError(err)
		logger.Warn("Execution failed",
			zap.Int("attempt", i),
			zap.String("command", cmdStr),
			zap.String("output", truncate(output, 512)),
			zap.Error(err),
		)

		if i < opts.Retries {
			time.Sleep(opts.Delay)
		}
	}

	if err != nil {
		return output, cerr.Wrapf(err, "command %q failed", opts.Command)
	}
	if opts.Capture {
		return output, nil
	}
	return "", nil
}

// RunSimple executes a command with default options, discarding output.
func RunSimple(ctx context.Context, cmd string, args ...string) error {
	_, err := Run(ctx, Options{Command: cmd, Args: args})
	return err
}

// ExitCode extracts the process exit code from an error returned by Run.
// Returns 0 for nil and -1 when the process never ran.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if cerr.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
