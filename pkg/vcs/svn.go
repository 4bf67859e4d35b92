// pkg/vcs/svn.go

package vcs

import (
	"context"
	"strings"
)

// svnStatus produces the reduced status a subversion checkout gets: the
// repository-relative path as the label plus a single modified flag. The
// richer git flags have no svn equivalent worth a per-prompt probe.
func (s *Summarizer) svnStatus(ctx context.Context, dir, root string) Status {
	st := Status{InRepo: true, Kind: KindSVN, Root: root, Label: unknownLabel}

	if out, exit, err := s.run(ctx, dir, nil, "svn", "info", "--show-item", "relative-url"); err == nil && exit == 0 {
		rel := strings.TrimSpace(out)
		rel = strings.TrimPrefix(rel, "^")
		if rel == "" {
			rel = "/"
		}
		st.Label = rel
	}

	if out, exit, err := s.run(ctx, dir, nil, "svn", "status", "-q"); err == nil && exit == 0 {
		st.Unstaged = strings.TrimSpace(out) != ""
	}

	return st
}
