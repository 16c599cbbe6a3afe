package config

import "github.com/modu-ai/lintwiz/pkg/models"

// Compiled default values applied before any file or environment
// override.
const (
	DefaultStrict   = false
	DefaultPrettier = true
	DefaultHusky    = false

	DefaultSkipInstall = false
	DefaultHeadless    = false
	DefaultNoColor     = false
)

// DefaultPackageManager is used when neither the preference file nor
// the lockfile detection names one.
const DefaultPackageManager = models.PackageManagerNpm

// NewDefaultConfig returns a Config with all fields set to compiled
// defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: NewDefaultDefaultsConfig(),
		Install:  NewDefaultInstallConfig(),
		UI:       NewDefaultUIConfig(),
	}
}

// NewDefaultDefaultsConfig returns the default wizard preselections.
func NewDefaultDefaultsConfig() DefaultsConfig {
	return DefaultsConfig{
		Strict:   DefaultStrict,
		Prettier: DefaultPrettier,
		Husky:    DefaultHusky,
	}
}

// NewDefaultInstallConfig returns the default installer behavior. The
// package manager starts empty, meaning "detect from the lockfile".
func NewDefaultInstallConfig() InstallConfig {
	return InstallConfig{
		PackageManager: "",
		Skip:           DefaultSkipInstall,
	}
}

// NewDefaultUIConfig returns the default terminal presentation.
func NewDefaultUIConfig() UIConfig {
	return UIConfig{
		Headless: DefaultHeadless,
		NoColor:  DefaultNoColor,
	}
}
