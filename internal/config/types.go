package config

import (
	"slices"

	"github.com/modu-ai/lintwiz/pkg/models"
)

// Config is the root tool-preference aggregate read from .lintwiz.yaml.
// Everything here is optional; compiled defaults apply for missing
// sections and fields.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Install  InstallConfig  `yaml:"install"`
	UI       UIConfig       `yaml:"ui"`
}

// DefaultsConfig preselects wizard answers. Explicit flags and
// interactive answers still override these.
type DefaultsConfig struct {
	Strict   bool `yaml:"strict"`
	Prettier bool `yaml:"prettier"`
	Husky    bool `yaml:"husky"`
}

// InstallConfig controls dependency installation.
type InstallConfig struct {
	PackageManager models.PackageManager `yaml:"package_manager"`
	Skip           bool                  `yaml:"skip"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	Headless bool `yaml:"headless"`
	NoColor  bool `yaml:"no_color"`
}

// sectionNames lists all valid top-level keys in .lintwiz.yaml.
var sectionNames = []string{"defaults", "install", "ui"}

// IsValidSectionName checks if the given name is a valid section name.
func IsValidSectionName(name string) bool {
	return slices.Contains(sectionNames, name)
}

// ValidSectionNames returns all valid section names.
func ValidSectionNames() []string {
	result := make([]string, len(sectionNames))
	copy(result, sectionNames)
	return result
}
