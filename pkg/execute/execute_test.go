// pkg/execute/execute_test.go

package execute

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("captures output", func(t *testing.T) {
		t.Parallel()
		out, err := Run(context.Background(), Options{
			Command: "echo",
			Args:    []string{"hello"},
			Capture: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out)
	})

	t.Run("discards output without capture", func(t *testing.T) {
		t.Parallel()
		out, err := Run(context.Background(), Options{
			Command: "echo",
			Args:    []string{"hello"},
		})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("extra env is visible to the child", func(t *testing.T) {
		t.Parallel()
		out, err := Run(context.Background(), Options{
			Command: "sh",
			Args:    []string{"-c", "printf %s \"$DOTKIT_TEST_VAR\""},
			Env:     []string{"DOTKIT_TEST_VAR=scratch"},
			Capture: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "scratch", out)
	})

	t.Run("missing binary returns error", func(t *testing.T) {
		t.Parallel()
		_, err := Run(context.Background(), Options{
			Command: "definitely-not-a-binary-dotkit",
			Timeout: 2 * time.Second,
		})
		require.Error(t, err)
		assert.Equal(t, -1, ExitCode(err))
	})

	t.Run("nonzero exit code is preserved", func(t *testing.T) {
		t.Parallel()
		_, err := Run(context.Background(), Options{
			Command: "sh",
			Args:    []string{"-c", "exit 3"},
		})
		require.Error(t, err)
		assert.Equal(t, 3, ExitCode(err))
	})
}

func TestRunSimple(t *testing.T) {
	t.Parallel()
	assert.NoError(t, RunSimple(context.Background(), "true"))
	assert.Error(t, RunSimple(context.Background(), "false"))
}

func TestExitCodeNil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, ExitCode(nil))
}
