// pkg/bootstrap/preflight.go

package bootstrap

import (
	"regexp"
	"strings"

	cerr "github.com/cockroachdb/errors"
	goversion "github.com/hashicorp/go-version"
	"go.uber.org/zap"

	"github.com/dotkit/dotkit/pkg/execute"
	"github.com/dotkit/dotkit/pkg/kit_io"
)

// toolRequirement pins the minimum version of a tool the shell
// environment depends on at runtime.
type toolRequirement struct {
	Binary     string
	Args       []string
	MinVersion string
}

var requiredTools = []toolRequirement{
	{Binary: "git", Args: []string{"--version"}, MinVersion: "2.0.0"},
	{Binary: "tar", Args: []string{"--version"}, MinVersion: "1.0.0"},
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// Preflight verifies the tools dotkit wraps are present and recent
// enough. A missing tool is only a warning (bootstrap may be about to
// install it); a present-but-ancient tool fails the run.
func Preflight(rc *kit_io.RuntimeContext) error {
	for _, tool := range requiredTools {
		out, err := execute.Run(rc.Ctx, execute.Options{
			Command: tool.Binary,
			Args:    tool.Args,
			Capture: true,
		})
		if err != nil {
			rc.Log.Warn("Preflight tool missing, bootstrap may install it",
				zap.String("binary", tool.Binary), zap.Error(err))
			continue
		}

		found, err := parseToolVersion(out)
		if err != nil {
			rc.Log.Warn("Could not parse tool version",
				zap.String("binary", tool.Binary),
				zap.String("output", strings.TrimSpace(out)))
			continue
		}
		minimum := goversion.Must(goversion.NewVersion(tool.MinVersion))
		if found.LessThan(minimum) {
			return cerr.Newf("%s %s is older than the required %s",
				tool.Binary, found, minimum)
		}
		rc.Log.Debug("Preflight tool ok",
			zap.String("binary", tool.Binary),
			zap.String("version", found.String()))
	}
	return nil
}

func parseToolVersion(output string) (*goversion.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, cerr.New("no version string in output")
	}
	return goversion.NewVersion(match)
}
