// pkg/vcs/runner.go

package vcs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"
)

// Runner executes a VCS binary. The exit code is reported separately
// because several probes answer via exit status (git diff --quiet exits 1
// on a dirty tree); err is non-nil only when the process could not run at
// all (binary missing, permission denied).
type Runner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) (out string, exit int, err error)
}

// ExecRunner runs probes as real subprocesses. Probes are prompt-latency
// sensitive, so each gets a short hard deadline.
type ExecRunner struct {
	Timeout time.Duration
}

func (r *ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) (string, int, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = nil

	err := cmd.Run()
	if err == nil {
		return stdout.String(), 0, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return stdout.String(), ee.ExitCode(), nil
	}
	return "", -1, err
}
