// pkg/platform/platform_test.go

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOSRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "ubuntu",
			content: "NAME=\"Ubuntu\"\nID=ubuntu\nID_LIKE=debian\n",
			want:    "debian",
		},
		{
			name:    "debian",
			content: "ID=debian\n",
			want:    "debian",
		},
		{
			name:    "fedora",
			content: "ID=fedora\n",
			want:    "rhel",
		},
		{
			name:    "rocky via id_like",
			content: "ID=rocky\nID_LIKE=\"rhel centos fedora\"\n",
			want:    "rhel",
		},
		{
			name:    "arch",
			content: "ID=arch\n",
			want:    "arch",
		},
		{
			name:    "unknown distro",
			content: "ID=plan9\n",
			want:    "unknown",
		},
		{
			name:    "empty file",
			content: "",
			want:    "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classifyOSRelease(tt.content))
		})
	}
}

func TestGetOSPlatform(t *testing.T) {
	t.Parallel()
	// Whatever the host, the result must be one of the names bootstrap
	// understands or the raw GOOS it will refuse.
	assert.NotEmpty(t, GetOSPlatform())
}
