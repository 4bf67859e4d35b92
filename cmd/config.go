// cmd/config.go

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotkit/dotkit/pkg/logger"
	"github.com/dotkit/dotkit/pkg/vcs"
)

// loadTheme merges the user's ~/.config/dotkit/dotkit.yaml theme section
// over the default sigils. A missing or broken config keeps the defaults;
// theming must never break the prompt.
func loadTheme(plain bool) vcs.Theme {
	th := vcs.DefaultTheme()

	v := viper.New()
	v.SetConfigName("dotkit")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "dotkit"))
	}
	if err := v.ReadInConfig(); err == nil {
		if err := v.UnmarshalKey("theme", &th); err != nil {
			logger.L().Warn("Ignoring unparseable theme config")
		}
	}

	th.Plain = th.Plain || plain
	return th
}
