// pkg/watch/watch_test.go

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetadataFiresOnChange(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Metadata(ctx, root, ".git", zap.NewNop(), func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before mutating.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected onChange after metadata write")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestMetadataMissingDir(t *testing.T) {
	t.Parallel()

	err := Metadata(context.Background(), t.TempDir(), ".git", zap.NewNop(), func() {})
	assert.Error(t, err)
}
