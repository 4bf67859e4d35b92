// pkg/bootstrap/bootstrap.go

// Package bootstrap provisions a fresh workstation: it resolves the
// system package manager, checks the tools already present, and installs
// a named set of OS packages.
package bootstrap

import (
	"os"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/dotkit/dotkit/pkg/execute"
	"github.com/dotkit/dotkit/pkg/kit_err"
	"github.com/dotkit/dotkit/pkg/kit_io"
	"github.com/dotkit/dotkit/pkg/platform"
)

// Package installs routinely outrun the executor's default deadline.
const installTimeout = 15 * time.Minute

// Options controls one bootstrap run.
type Options struct {
	Set       string
	SetsPath  string
	DryRun    bool
	NoUpdate  bool
	SkipCheck bool
}

// Run installs the selected package set. Individual package failures are
// collected and reported together; one broken package must not abort the
// rest of a workstation setup.
func Run(rc *kit_io.RuntimeContext, opts Options) error {
	sets, err := LoadSets(opts.SetsPath)
	if err != nil {
		return err
	}
	set, ok := sets[opts.Set]
	if !ok {
		return kit_err.NewExpectedErrorf(rc.Ctx,
			"unknown package set %q (available: %v)", opts.Set, SetNames(sets))
	}

	mgr, err := platform.ResolvePackageManager(rc.Ctx)
	if err != nil {
		return err
	}
	rc.Log.Info("Resolved package manager",
		zap.String("manager", mgr.Name),
		zap.String("set", set.Name),
		zap.Int("packages", len(set.Packages)),
	)

	if !opts.SkipCheck {
		if err := Preflight(rc); err != nil {
			return err
		}
	}

	if opts.DryRun {
		rc.Log.Info("Dry run: packages not installed",
			zap.Strings("packages", set.Packages))
		return nil
	}

	if len(mgr.UpdateArgv) > 0 && !opts.NoUpdate {
		rc.Log.Info("Refreshing package index", zap.String("manager", mgr.Name))
		if _, err := execute.Run(rc.Ctx, execute.Options{
			Command: mgr.UpdateArgv[0],
			Args:    mgr.UpdateArgv[1:],
			Timeout: installTimeout,
		}); err != nil {
			rc.Log.Warn("Package index refresh failed, continuing", zap.Error(err))
		}
	}

	bar := progressbar.NewOptions(len(set.Packages),
		progressbar.OptionSetDescription("Installing "+set.Name),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	var result *multierror.Error
	for _, pkg := range set.Packages {
		argv := mgr.InstallArgv(pkg)
		if _, err := execute.Run(rc.Ctx, execute.Options{
			Command: argv[0],
			Args:    argv[1:],
			Timeout: installTimeout,
		}); err != nil {
			rc.Log.Warn("Package install failed",
				zap.String("package", pkg), zap.Error(err))
			result = multierror.Append(result, cerr.Wrapf(err, "install %s", pkg))
		} else {
			rc.Log.Info("Installed package", zap.String("package", pkg))
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if err := result.ErrorOrNil(); err != nil {
		return cerr.Wrapf(err, "bootstrap set %q finished with failures", set.Name)
	}
	rc.Log.Info("Bootstrap complete", zap.String("set", set.Name))
	return nil
}
