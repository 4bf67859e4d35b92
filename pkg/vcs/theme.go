// pkg/vcs/theme.go

package vcs

import "github.com/charmbracelet/lipgloss"

// Theme controls the sigils and colors of the rendered segment. It is
// passed in explicitly; the package never reads ambient configuration.
type Theme struct {
	Staged    string `mapstructure:"staged"`
	Unstaged  string `mapstructure:"unstaged"`
	Untracked string `mapstructure:"untracked"`
	Stashed   string `mapstructure:"stashed"`
	Ahead     string `mapstructure:"ahead"`
	Behind    string `mapstructure:"behind"`

	LabelColor string `mapstructure:"label_color"`
	DirtyColor string `mapstructure:"dirty_color"`

	// Plain suppresses all styling, for non-TTY output and tests.
	Plain bool `mapstructure:"plain"`
}

// DefaultTheme matches the sigils of the original prompt helper.
func DefaultTheme() Theme {
	return Theme{
		Staged:     "+",
		Unstaged:   "!",
		Untracked:  "?",
		Stashed:    "$",
		Ahead:      "↑",
		Behind:     "↓",
		LabelColor: "6",
		DirtyColor: "1",
	}
}

func (t Theme) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.LabelColor))
}

func (t Theme) dirtyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DirtyColor))
}
