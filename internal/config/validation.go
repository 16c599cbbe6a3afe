package config

import (
	"fmt"
	"strings"

	"github.com/modu-ai/lintwiz/pkg/models"
)

// Validate checks the merged configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateInstallConfig(&cfg.Install)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateInstallConfig checks installer settings.
func validateInstallConfig(in *InstallConfig) []ValidationError {
	if in.PackageManager == "" || in.PackageManager.IsValid() {
		return nil
	}
	return []ValidationError{
		{
			Field:   "install.package_manager",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(packageManagerStrings(), ", ")),
			Value:   string(in.PackageManager),
			Wrapped: ErrInvalidPackageManager,
		},
	}
}

// packageManagerStrings returns valid package manager values as strings.
func packageManagerStrings() []string {
	pms := models.ValidPackageManagers()
	strs := make([]string, len(pms))
	for i, pm := range pms {
		strs[i] = string(pm)
	}
	return strs
}
