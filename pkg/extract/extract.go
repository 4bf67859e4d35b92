// pkg/extract/extract.go

// Package extract dispatches archive files to the right system unpacker,
// the same way the original shell function did: by extension, delegating
// all real work to tar, unzip and friends.
package extract

import (
	"os"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/dotkit/dotkit/pkg/execute"
	"github.com/dotkit/dotkit/pkg/kit_err"
	"github.com/dotkit/dotkit/pkg/kit_io"
)

// Argv returns the command line that unpacks path into the current
// directory. The extension decides; nothing is executed here.
func Argv(path string) ([]string, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return []string{"tar", "xzf", path}, nil
	case strings.HasSuffix(lower, ".tar.bz2"), strings.HasSuffix(lower, ".tbz2"):
		return []string{"tar", "xjf", path}, nil
	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		return []string{"tar", "xJf", path}, nil
	case strings.HasSuffix(lower, ".tar"):
		return []string{"tar", "xf", path}, nil
	case strings.HasSuffix(lower, ".zip"):
		return []string{"unzip", path}, nil
	case strings.HasSuffix(lower, ".7z"):
		return []string{"7z", "x", path}, nil
	case strings.HasSuffix(lower, ".rar"):
		return []string{"unrar", "x", path}, nil
	case strings.HasSuffix(lower, ".gz"):
		return []string{"gunzip", path}, nil
	case strings.HasSuffix(lower, ".bz2"):
		return []string{"bunzip2", path}, nil
	default:
		return nil, cerr.Newf("don't know how to extract %q", path)
	}
}

// Extract unpacks each given archive in place. Unknown extensions and
// missing files are expected user errors.
func Extract(rc *kit_io.RuntimeContext, paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return kit_err.NewExpectedErrorf(rc.Ctx, "no such archive: %s", path)
		}
		argv, err := Argv(path)
		if err != nil {
			return kit_err.NewExpectedError(rc.Ctx, err)
		}

		rc.Log.Info("Extracting archive",
			zap.String("archive", path),
			zap.String("tool", argv[0]),
		)
		if _, err := execute.Run(rc.Ctx, execute.Options{
			Command: argv[0],
			Args:    argv[1:],
			// Large archives outrun the executor's default deadline.
			Timeout: 30 * time.Minute,
		}); err != nil {
			return cerr.Wrapf(err, "extract %s", path)
		}
	}
	return nil
}
