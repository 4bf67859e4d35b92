// pkg/vcs/render.go

package vcs

import (
	"strconv"
	"strings"
)

// Render formats a Status as the prompt segment: " (<label>)" plus, when
// anything is set, a bracketed suffix in fixed order: upstream marker,
// staged, unstaged, untracked, stashed.
func Render(st Status, th Theme) string {
	if !st.InRepo {
		return ""
	}

	label := st.Label
	if label == "" {
		label = unknownLabel
	}

	var suffix strings.Builder
	switch {
	// A diverged branch shows the ahead side only; the segment stays one
	// marker wide no matter what.
	case st.Ahead > 0:
		suffix.WriteString(th.Ahead)
		suffix.WriteString(strconv.Itoa(st.Ahead))
	case st.Behind > 0:
		suffix.WriteString(th.Behind)
		suffix.WriteString(strconv.Itoa(st.Behind))
	}
	if st.Staged {
		suffix.WriteString(th.Staged)
	}
	if st.Unstaged {
		suffix.WriteString(th.Unstaged)
	}
	if st.Untracked {
		suffix.WriteString(th.Untracked)
	}
	if st.Stashed {
		suffix.WriteString(th.Stashed)
	}

	if th.Plain {
		if suffix.Len() == 0 {
			return " (" + label + ")"
		}
		return " (" + label + ") [" + suffix.String() + "]"
	}

	out := " (" + th.labelStyle().Render(label) + ")"
	if suffix.Len() > 0 {
		out += " [" + th.dirtyStyle().Render(suffix.String()) + "]"
	}
	return out
}
