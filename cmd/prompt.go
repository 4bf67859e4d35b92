// cmd/prompt.go

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotkit/dotkit/pkg/kit_cli"
	"github.com/dotkit/dotkit/pkg/kit_io"
	"github.com/dotkit/dotkit/pkg/vcs"
	"github.com/dotkit/dotkit/pkg/watch"
)

var (
	promptPlain bool
	promptWatch bool
)

// promptCmd prints the VCS status segment for embedding in PS1. It always
// exits 0: outside a repository the output is simply empty.
var promptCmd = &cobra.Command{
	Use:   "prompt [dir]",
	Short: "Print the VCS status segment for the interactive prompt",
	Args:  cobra.MaximumNArgs(1),
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		s := vcs.New(nil, loadTheme(promptPlain), rc.Log)

		if !promptWatch {
			fmt.Print(s.Summarize(rc.Ctx, dir))
			return nil
		}

		kind, root := vcs.Discover(dir)
		if kind == vcs.KindNone {
			// Nothing to watch; behave like a single empty render.
			return nil
		}
		metaDir := ".git"
		if kind == vcs.KindSVN {
			metaDir = ".svn"
		}

		fmt.Println(s.Summarize(rc.Ctx, dir))
		return watch.Metadata(rc.Ctx, root, metaDir, rc.Log, func() {
			fmt.Println(s.Summarize(rc.Ctx, dir))
		})
	}),
}

func init() {
	promptCmd.Flags().BoolVar(&promptPlain, "plain", false, "disable colors")
	promptCmd.Flags().BoolVar(&promptWatch, "watch", false, "re-print the segment when VCS metadata changes")
}
