package models

// SetupOptions records the validated answers that drive configuration
// generation. Constructed once and read-only afterward; the Svelte
// TypeScript auto-detection derives a corrected copy via WithTypeScript
// instead of mutating in place.
type SetupOptions struct {
	ProjectType   ProjectType `yaml:"project_type" json:"projectType"`
	UseTypeScript bool        `yaml:"use_typescript" json:"useTypeScript"`
	UseHusky      bool        `yaml:"use_husky" json:"useHusky"`
	UseStrict     bool        `yaml:"use_strict" json:"useStrict"`
	UsePrettier   bool        `yaml:"use_prettier" json:"usePrettier"`
}

// WithTypeScript returns a copy of the options with UseTypeScript
// replaced. Used by the Svelte filesystem auto-detection step.
func (o SetupOptions) WithTypeScript(useTypeScript bool) SetupOptions {
	o.UseTypeScript = useTypeScript
	return o
}

// PackageManager identifies the tool used to install dependencies.
type PackageManager string

const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerPnpm PackageManager = "pnpm"
	PackageManagerYarn PackageManager = "yarn"
)

// ValidPackageManagers returns all supported package manager values.
func ValidPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNpm, PackageManagerPnpm, PackageManagerYarn}
}

// IsValid checks if the package manager is a supported value.
func (m PackageManager) IsValid() bool {
	switch m {
	case PackageManagerNpm, PackageManagerPnpm, PackageManagerYarn:
		return true
	}
	return false
}
