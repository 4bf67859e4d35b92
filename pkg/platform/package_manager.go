// pkg/platform/package_manager.go

package platform

import (
	"context"

	cerr "github.com/cockroachdb/errors"

	"github.com/dotkit/dotkit/pkg/kit_err"
)

// PackageManager describes the system package manager bootstrap drives.
type PackageManager struct {
	Name string
	// InstallArgv builds the full argv installing one package.
	InstallArgv func(pkg string) []string
	// UpdateArgv refreshes the package index before installs; nil when the
	// manager needs none.
	UpdateArgv []string
}

// ResolvePackageManager maps the current platform to its package manager.
// Unknown platforms are an expected user error, not a tool failure.
func ResolvePackageManager(ctx context.Context) (*PackageManager, error) {
	switch GetOSPlatform() {
	case "linux":
		switch distro := DetectLinuxDistro(); distro {
		case "debian":
			return &PackageManager{
				Name:        "apt-get",
				InstallArgv: func(pkg string) []string { return []string{"apt-get", "install", "-y", pkg} },
				UpdateArgv:  []string{"apt-get", "update"},
			}, nil
		case "rhel":
			return &PackageManager{
				Name:        "dnf",
				InstallArgv: func(pkg string) []string { return []string{"dnf", "install", "-y", pkg} },
			}, nil
		case "arch":
			return &PackageManager{
				Name:        "pacman",
				InstallArgv: func(pkg string) []string { return []string{"pacman", "-S", "--noconfirm", pkg} },
				UpdateArgv:  []string{"pacman", "-Sy"},
			}, nil
		default:
			return nil, kit_err.NewExpectedError(ctx, cerr.Newf("unsupported linux distribution %q", distro))
		}
	case "macos":
		return &PackageManager{
			Name:        "brew",
			InstallArgv: func(pkg string) []string { return []string{"brew", "install", pkg} },
			UpdateArgv:  []string{"brew", "update"},
		}, nil
	default:
		return nil, kit_err.NewExpectedError(ctx, cerr.Newf("unsupported platform %q", GetOSPlatform()))
	}
}
