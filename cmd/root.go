// cmd/root.go

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotkit/dotkit/pkg/kit_err"
	"github.com/dotkit/dotkit/pkg/logger"
)

// RootCmd is the base command for dotkit.
var RootCmd = &cobra.Command{
	Use:   "dotkit",
	Short: "Personal shell environment toolkit",
	Long: `dotkit bundles the pieces of a personal Unix shell environment:
workstation bootstrap, the small interactive utilities (case conversion,
archive extraction, network checks), and the VCS status segment rendered
in the interactive prompt.`,
	SilenceUsage: true,
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		promptCmd,
		hookCmd,
		bootstrapCmd,
		extractCmd,
		caseCmd,
		netCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command.
func Execute() {
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Failed to flush logs: %v\n", err)
		}
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if kit_err.IsExpectedUserError(err) {
			logger.L().Warn("CLI completed with user error", zap.Error(err))
		} else {
			logger.L().Error("CLI failed", zap.Error(err))
		}
		os.Exit(1)
	}
}
