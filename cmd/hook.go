// cmd/hook.go

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotkit/dotkit/pkg/kit_cli"
	"github.com/dotkit/dotkit/pkg/kit_io"
	"github.com/dotkit/dotkit/pkg/shellgen"
)

// hookCmd prints the snippet users source from their shell rc file.
var hookCmd = &cobra.Command{
	Use:   "hook {bash|zsh}",
	Short: "Emit the shell snippet that wires dotkit into the prompt",
	Long: `Prints a snippet for your shell's rc file, e.g.:

    eval "$(dotkit hook bash)"   # in ~/.bashrc
    eval "$(dotkit hook zsh)"    # in ~/.zshrc`,
	Args: cobra.ExactArgs(1),
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		snippet, err := shellgen.Hook(args[0])
		if err != nil {
			return err
		}
		fmt.Print(snippet)
		return nil
	}),
}
