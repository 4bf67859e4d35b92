// pkg/vcs/svn_test.go

package vcs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svnFixture(t *testing.T) (dir string, f *fakeRunner) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".svn"), 0o755))

	f = newFakeRunner()
	f.script("svn info --show-item relative-url", "^/trunk\n", 0)
	f.script("svn status -q", "", 0)
	return dir, f
}

func TestSummarizeSVN(t *testing.T) {
	t.Parallel()

	t.Run("clean checkout", func(t *testing.T) {
		t.Parallel()
		dir, f := svnFixture(t)
		s := newTestSummarizer(f)
		assert.Equal(t, " (/trunk)", s.Summarize(context.Background(), dir))
	})

	t.Run("modified checkout", func(t *testing.T) {
		t.Parallel()
		dir, f := svnFixture(t)
		f.script("svn status -q", "M        foo.c\n", 0)
		s := newTestSummarizer(f)
		assert.Equal(t, " (/trunk) [!]", s.Summarize(context.Background(), dir))
	})

	t.Run("repository root", func(t *testing.T) {
		t.Parallel()
		dir, f := svnFixture(t)
		f.script("svn info --show-item relative-url", "^/\n", 0)
		s := newTestSummarizer(f)
		assert.Equal(t, " (/)", s.Summarize(context.Background(), dir))
	})

	t.Run("svn binary missing", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".svn"), 0o755))
		s := newTestSummarizer(newFakeRunner())
		assert.Equal(t, " ((unknown))", s.Summarize(context.Background(), dir))
	})
}
