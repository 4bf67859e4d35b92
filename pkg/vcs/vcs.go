// pkg/vcs/vcs.go

// Package vcs computes the version-control status segment shown in the
// interactive shell prompt. It is invoked fresh on every prompt render:
// nothing is cached between calls, every probe short-circuits as cheaply
// as it can, and no probe is allowed to fail the render.
package vcs

import (
	"context"

	"go.uber.org/zap"
)

// Kind identifies the version-control system owning a working tree.
type Kind int

const (
	KindNone Kind = iota
	KindGit
	KindSVN
)

func (k Kind) String() string {
	switch k {
	case KindGit:
		return "git"
	case KindSVN:
		return "svn"
	default:
		return "none"
	}
}

// Status is the transient result of one summarize call. It never
// persists past the render that requested it.
type Status struct {
	InRepo bool
	Kind   Kind
	Root   string

	// Label is the branch short name, the short revision id when
	// detached, or "(unknown)" as a last resort.
	Label string

	// Ahead/Behind count commits relative to the configured upstream;
	// both zero when there is no upstream or the probe failed.
	Ahead  int
	Behind int

	Staged    bool
	Unstaged  bool
	Untracked bool
	Stashed   bool
}

// Dirty reports whether any flag or upstream marker would render.
func (s Status) Dirty() bool {
	return s.Staged || s.Unstaged || s.Untracked || s.Stashed || s.Ahead > 0 || s.Behind > 0
}

// Summarizer probes a directory's VCS state. The runner and theme are
// explicit so callers (and tests) control both the probe transport and
// the rendering.
type Summarizer struct {
	runner Runner
	theme  Theme
	log    *zap.Logger
}

// New builds a Summarizer. A nil runner gets the real subprocess runner;
// a nil logger gets zap's global.
func New(runner Runner, theme Theme, log *zap.Logger) *Summarizer {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if log == nil {
		log = zap.L()
	}
	return &Summarizer{runner: runner, theme: theme, log: log}
}

// Summarize returns the rendered prompt segment for dir, or the empty
// string when dir is outside any known repository. It never returns an
// error: a probe that cannot run leaves its flag unset.
func (s *Summarizer) Summarize(ctx context.Context, dir string) string {
	return Render(s.Status(ctx, dir), s.theme)
}

// Status computes the raw per-render status for dir.
func (s *Summarizer) Status(ctx context.Context, dir string) Status {
	kind, root := Discover(dir)
	switch kind {
	case KindGit:
		return s.gitStatus(ctx, dir, root)
	case KindSVN:
		return s.svnStatus(ctx, dir, root)
	default:
		return Status{}
	}
}

func (s *Summarizer) run(ctx context.Context, dir string, env []string, name string, args ...string) (string, int, error) {
	out, exit, err := s.runner.Run(ctx, dir, env, name, args...)
	if err != nil {
		s.log.Debug("Probe unavailable",
			zap.String("binary", name),
			zap.Strings("args", args),
			zap.Error(err),
		)
	}
	return out, exit, err
}
