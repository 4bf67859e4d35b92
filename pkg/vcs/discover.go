// pkg/vcs/discover.go

package vcs

import (
	"os"
	"path/filepath"
)

// Discover walks upward from dir looking for VCS metadata and returns the
// owning kind and working-tree root. Git wins over subversion whenever a
// .git is reachable anywhere up the path, matching the original prompt's
// priority; the first .svn seen is kept as a fallback.
func Discover(dir string) (Kind, string) {
	d, err := filepath.Abs(dir)
	if err != nil {
		return KindNone, ""
	}

	svnRoot := ""
	for {
		// .git may be a directory or, for worktrees and submodules, a file.
		if _, err := os.Lstat(filepath.Join(d, ".git")); err == nil {
			return KindGit, d
		}
		if svnRoot == "" {
			if fi, err := os.Lstat(filepath.Join(d, ".svn")); err == nil && fi.IsDir() {
				svnRoot = d
			}
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	if svnRoot != "" {
		return KindSVN, svnRoot
	}
	return KindNone, ""
}
