// cmd/caseconv.go

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotkit/dotkit/pkg/kit_cli"
	"github.com/dotkit/dotkit/pkg/kit_err"
	"github.com/dotkit/dotkit/pkg/kit_io"
	"github.com/dotkit/dotkit/pkg/strcase"
)

var caseConverters = map[string]func(string) string{
	"camel":  strcase.ToCamel,
	"pascal": strcase.ToPascal,
	"snake":  strcase.ToSnake,
	"kebab":  strcase.ToKebab,
	"title":  strcase.ToTitle,
}

// caseCmd is the old case-conversion shell function as a subcommand.
var caseCmd = &cobra.Command{
	Use:   "case {camel|pascal|snake|kebab|title} TEXT...",
	Short: "Convert text between identifier casings",
	Args:  cobra.MinimumNArgs(2),
	RunE: kit_cli.Wrap(func(rc *kit_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		convert, ok := caseConverters[strings.ToLower(args[0])]
		if !ok {
			return kit_err.NewExpectedErrorf(rc.Ctx, "unknown casing %q", args[0])
		}
		fmt.Println(convert(strings.Join(args[1:], " ")))
		return nil
	}),
}
