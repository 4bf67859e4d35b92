// pkg/platform/platform.go

package platform

import (
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// GetOSPlatform normalizes runtime.GOOS into the platforms bootstrap
// knows how to provision.
func GetOSPlatform() string {
	switch runtime.GOOS {
	case "linux":
		return "linux"
	case "darwin":
		return "macos"
	default:
		return runtime.GOOS
	}
}

// DetectLinuxDistro classifies the running distribution into a package
// manager family by reading os-release. Unknown distros report "unknown"
// and the caller decides how hard to fail.
func DetectLinuxDistro() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		zap.L().Warn("Could not read /etc/os-release", zap.Error(err))
		return "unknown"
	}
	return classifyOSRelease(string(data))
}

func classifyOSRelease(content string) string {
	ids := ""
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "ID=") || strings.HasPrefix(line, "ID_LIKE=") {
			ids += " " + strings.Trim(strings.SplitN(line, "=", 2)[1], `"`)
		}
	}
	ids = strings.ToLower(ids)

	switch {
	case containsAny(ids, "debian", "ubuntu"):
		return "debian"
	case containsAny(ids, "rhel", "fedora", "centos"):
		return "rhel"
	case containsAny(ids, "arch"):
		return "arch"
	default:
		return "unknown"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
