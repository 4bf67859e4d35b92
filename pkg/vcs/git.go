// pkg/vcs/git.go

package vcs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const unknownLabel = "(unknown)"

func (s *Summarizer) gitStatus(ctx context.Context, dir, root string) Status {
	st := Status{InRepo: true, Kind: KindGit, Root: root}
	st.Label = s.gitLabel(ctx, dir)

	hasCommits := s.gitHasCommits(ctx, dir)
	if hasCommits {
		st.Ahead, st.Behind = s.gitAheadBehind(ctx, dir)
	}

	// The diff probes must never touch the real index: git refreshes stat
	// data into the index as a side effect of diffing, which would race a
	// concurrent rebase or fetch. Both run against a disposable snapshot,
	// removed on every exit path; if no snapshot could be taken the flags
	// stay unset rather than risk the real index.
	env, cleanup, ok := s.snapshotIndex(ctx, dir)
	defer cleanup()

	if ok {
		if hasCommits {
			_, exit, err := s.run(ctx, dir, env, "git", "diff", "--cached", "--quiet")
			st.Staged = err == nil && exit == 1
		} else {
			// No HEAD to diff against yet; anything in the index counts.
			out, exit, err := s.run(ctx, dir, env, "git", "ls-files", "--cached")
			st.Staged = err == nil && exit == 0 && strings.TrimSpace(out) != ""
		}

		_, exit, err := s.run(ctx, dir, env, "git", "diff", "--quiet")
		st.Unstaged = err == nil && exit == 1
	}

	out, exit, err := s.run(ctx, dir, nil, "git", "ls-files",
		"--others", "--exclude-standard", "--directory", "--no-empty-directory")
	st.Untracked = err == nil && exit == 0 && strings.TrimSpace(out) != ""

	if hasCommits {
		_, exit, err = s.run(ctx, dir, nil, "git", "rev-parse", "--verify", "--quiet", "refs/stash")
		st.Stashed = err == nil && exit == 0
	}

	return st
}

// gitLabel resolves the prompt label: branch short name, short revision
// id when detached, "(unknown)" when nothing is resolvable. Metadata is
// read in-process via go-git when possible so the common case costs no
// subprocess; the git binary is the fallback.
func (s *Summarizer) gitLabel(ctx context.Context, dir string) string {
	if repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true}); err == nil {
		if head, err := repo.Head(); err == nil {
			if head.Name().IsBranch() {
				return head.Name().Short()
			}
			return shortHash(head.Hash().String())
		}
		// Unborn branch: HEAD still points symbolically at the branch name.
		if ref, err := repo.Storer.Reference(plumbing.HEAD); err == nil && ref.Type() == plumbing.SymbolicReference {
			return ref.Target().Short()
		}
	}

	if out, exit, err := s.run(ctx, dir, nil, "git", "symbolic-ref", "--short", "HEAD"); err == nil && exit == 0 {
		if name := strings.TrimSpace(out); name != "" {
			return name
		}
	}
	if out, exit, err := s.run(ctx, dir, nil, "git", "rev-parse", "--short", "HEAD"); err == nil && exit == 0 {
		if rev := strings.TrimSpace(out); rev != "" {
			return rev
		}
	}
	return unknownLabel
}

func (s *Summarizer) gitHasCommits(ctx context.Context, dir string) bool {
	_, exit, err := s.run(ctx, dir, nil, "git", "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil && exit == 0
}

// gitAheadBehind compares HEAD against its configured upstream. Both
// counts are zero when no upstream is configured or the probe fails.
func (s *Summarizer) gitAheadBehind(ctx context.Context, dir string) (ahead, behind int) {
	out, exit, err := s.run(ctx, dir, nil, "git", "rev-list", "--count", "--left-right", "@{upstream}...HEAD")
	if err != nil || exit != 0 {
		return 0, 0
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0
	}
	behind, _ = strconv.Atoi(fields[0])
	ahead, _ = strconv.Atoi(fields[1])
	return ahead, behind
}

// snapshotIndex copies the repository index to a uniquely named scratch
// file and returns the environment that points git at it, plus a cleanup
// that always removes the scratch. ok is false when no snapshot could be
// taken; the caller must then skip any index-touching probe.
func (s *Summarizer) snapshotIndex(ctx context.Context, dir string) (env []string, cleanup func(), ok bool) {
	noop := func() {}

	out, exit, err := s.run(ctx, dir, nil, "git", "rev-parse", "--absolute-git-dir")
	if err != nil || exit != 0 {
		return nil, noop, false
	}
	gitDir := strings.TrimSpace(out)
	if gitDir == "" {
		return nil, noop, false
	}

	scratch := filepath.Join(os.TempDir(), "dotkit-index-"+uuid.NewString())
	data, err := os.ReadFile(filepath.Join(gitDir, "index"))
	switch {
	case err == nil:
		if err := os.WriteFile(scratch, data, 0o600); err != nil {
			s.log.Debug("Index snapshot failed", zap.Error(err))
			return nil, noop, false
		}
	case os.IsNotExist(err):
		// A missing source index (unborn repository) is fine: git treats a
		// nonexistent GIT_INDEX_FILE as an empty index.
	default:
		// Unreadable or corrupted metadata. Diffing against an empty
		// snapshot here would invent staged changes; skip the probes.
		s.log.Debug("Index unreadable, skipping diff probes", zap.Error(err))
		return nil, noop, false
	}

	sweepStaleSnapshots(s.log)

	return []string{"GIT_INDEX_FILE=" + scratch}, func() { _ = os.Remove(scratch) }, true
}

// sweepStaleSnapshots removes scratch indexes left behind by interrupted
// runs. Anything older than an hour cannot belong to a live render.
func sweepStaleSnapshots(log *zap.Logger) {
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "dotkit-index-*"))
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-1 * time.Hour)
	for _, path := range matches {
		fi, err := os.Lstat(path)
		if err != nil || fi.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err == nil {
			log.Debug("Removed stale index snapshot", zap.String("path", path))
		}
	}
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
