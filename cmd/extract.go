// cmd/extract.go

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotkit/dotkit/pkg/extract"
	"github.com/dotkit/dotkit/pkg/kit_cli"
	"github.com/dotkit/dotkit/pkg/kit_io"
)

// extractCmd unpacks archives with whichever system tool fits.
var extractCmd = &cobra.Command{
	Use:   "extract FILE...",
	Short: "Extract archives, picking the right tool by extension",
	Args:  cobra.MinimumNArgs(1),
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return extract.Extract(rc, args...)
	}),
}
