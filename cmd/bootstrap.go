// cmd/bootstrap.go

package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotkit/dotkit/pkg/bootstrap"
	"github.com/dotkit/dotkit/pkg/kit_cli"
	"github.com/dotkit/dotkit/pkg/kit_io"
)

var bootstrapOpts bootstrap.Options

// bootstrapCmd provisions a fresh workstation with a named package set.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Install an OS package set on a fresh workstation",
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		rc.Log.Info("Starting bootstrap", zap.String("set", bootstrapOpts.Set))
		return bootstrap.Run(rc, bootstrapOpts)
	}),
}

func init() {
	bootstrapCmd.Flags().StringVar(&bootstrapOpts.Set, "set", "base", "package set to install")
	bootstrapCmd.Flags().StringVar(&bootstrapOpts.SetsPath, "sets", bootstrap.DefaultSetsPath(), "YAML file with package set overrides")
	bootstrapCmd.Flags().BoolVar(&bootstrapOpts.DryRun, "dry-run", false, "resolve and report without installing")
	bootstrapCmd.Flags().BoolVar(&bootstrapOpts.NoUpdate, "no-update", false, "skip the package index refresh")
	bootstrapCmd.Flags().BoolVar(&bootstrapOpts.SkipCheck, "skip-preflight", false, "skip tool version preflight")
}
