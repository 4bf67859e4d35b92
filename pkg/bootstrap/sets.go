// pkg/bootstrap/sets.go

package bootstrap

import (
	"os"
	"path/filepath"
	"sort"

	cerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// PackageSet is a named group of OS packages installed together.
type PackageSet struct {
	Name     string   `yaml:"name"`
	Packages []string `yaml:"packages"`
}

// defaultSets mirrors the package lists the original bootstrap script
// installed on a fresh workstation.
var defaultSets = map[string]PackageSet{
	"base": {
		Name: "base",
		Packages: []string{
			"git", "curl", "wget", "tmux", "htop", "tree",
			"unzip", "p7zip-full", "dnsutils", "openssl",
		},
	},
	"dev": {
		Name: "dev",
		Packages: []string{
			"build-essential", "golang", "nodejs", "npm", "shellcheck",
		},
	},
}

// LoadSets returns the built-in package sets merged with any user
// overrides from configPath (a YAML list of sets). User sets with the
// same name replace the built-in ones.
func LoadSets(configPath string) (map[string]PackageSet, error) {
	sets := make(map[string]PackageSet, len(defaultSets))
	for name, set := range defaultSets {
		sets[name] = set
	}

	if configPath == "" {
		return sets, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return sets, nil
		}
		return nil, cerr.Wrapf(err, "read package sets %s", configPath)
	}

	var user struct {
		Sets []PackageSet `yaml:"sets"`
	}
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, cerr.Wrapf(err, "parse package sets %s", configPath)
	}
	for _, set := range user.Sets {
		if set.Name != "" {
			sets[set.Name] = set
		}
	}
	return sets, nil
}

// DefaultSetsPath is where user package-set overrides live.
func DefaultSetsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dotkit", "packages.yaml")
}

// SetNames lists the available set names, sorted for stable help output.
func SetNames(sets map[string]PackageSet) []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
