// pkg/vcs/render_test.go

package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func plainTheme() Theme {
	th := DefaultTheme()
	th.Plain = true
	return th
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		st   Status
		want string
	}{
		{
			name: "outside any repository",
			st:   Status{},
			want: "",
		},
		{
			name: "clean branch has no suffix",
			st:   Status{InRepo: true, Kind: KindGit, Label: "main"},
			want: " (main)",
		},
		{
			name: "staged only",
			st:   Status{InRepo: true, Label: "main", Staged: true},
			want: " (main) [+]",
		},
		{
			name: "unstaged only",
			st:   Status{InRepo: true, Label: "main", Unstaged: true},
			want: " (main) [!]",
		},
		{
			name: "untracked only",
			st:   Status{InRepo: true, Label: "main", Untracked: true},
			want: " (main) [?]",
		},
		{
			name: "stashed only",
			st:   Status{InRepo: true, Label: "main", Stashed: true},
			want: " (main) [$]",
		},
		{
			name: "behind upstream",
			st:   Status{InRepo: true, Label: "main", Behind: 3},
			want: " (main) [↓3]",
		},
		{
			name: "ahead of upstream",
			st:   Status{InRepo: true, Label: "main", Ahead: 2},
			want: " (main) [↑2]",
		},
		{
			name: "diverged shows ahead only",
			st:   Status{InRepo: true, Label: "main", Ahead: 2, Behind: 5},
			want: " (main) [↑2]",
		},
		{
			name: "fixed sigil order with everything set",
			st: Status{
				InRepo: true, Label: "feature/x",
				Ahead: 1, Staged: true, Unstaged: true, Untracked: true, Stashed: true,
			},
			want: " (feature/x) [↑1+!?$]",
		},
		{
			name: "detached head label",
			st:   Status{InRepo: true, Label: "a1b2c3d"},
			want: " (a1b2c3d)",
		},
		{
			name: "empty label falls back to unknown",
			st:   Status{InRepo: true},
			want: " ((unknown))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Render(tt.st, plainTheme()))
		})
	}
}

func TestRenderCustomSigils(t *testing.T) {
	t.Parallel()

	th := plainTheme()
	th.Staged = "●"
	th.Behind = "⇣"

	st := Status{InRepo: true, Label: "main", Staged: true, Behind: 2}
	assert.Equal(t, " (main) [⇣2●]", Render(st, th))
}

func TestRenderPlainHasNoEscapeCodes(t *testing.T) {
	t.Parallel()

	st := Status{InRepo: true, Label: "main", Staged: true}
	out := Render(st, plainTheme())
	assert.NotContains(t, out, "\x1b[")
}

func TestDirty(t *testing.T) {
	t.Parallel()

	assert.False(t, Status{InRepo: true, Label: "main"}.Dirty())
	assert.True(t, Status{InRepo: true, Unstaged: true}.Dirty())
	assert.True(t, Status{InRepo: true, Behind: 1}.Dirty())
}
