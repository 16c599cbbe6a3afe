// Package ignore builds the companion exclude lists written next to
// the generated lint and formatter configuration.
package ignore

import "github.com/modu-ai/lintwiz/pkg/models"

// commonLint excludes dependency, build, and generated artifacts for
// every project type.
var commonLint = []string{
	"node_modules",
	"dist",
	"build",
	"coverage",
	"*.min.js",
	"*.d.ts",
}

// lintExtras holds per-type additions appended after the common list.
// Types without framework-specific build output are absent.
var lintExtras = map[models.ProjectType][]string{
	models.ProjectTypeNextJS:  {".next/", "out/"},
	models.ProjectTypeAngular: {".angular/"},
	models.ProjectTypeSvelte:  {".svelte-kit/", "package/"},
}

// prettierPatterns is the fixed formatter exclude list. Lockfiles are
// machine-managed and must never be reformatted.
var prettierPatterns = []string{
	"node_modules",
	"dist",
	"build",
	"coverage",
	"package-lock.json",
	"pnpm-lock.yaml",
	"yarn.lock",
	"*.min.js",
}

// Lint returns the lint exclude patterns for the project type: the
// common patterns followed by any per-type additions. The result is a
// fresh slice the caller may keep.
func Lint(projectType models.ProjectType) []string {
	extras := lintExtras[projectType]
	out := make([]string, 0, len(commonLint)+len(extras))
	out = append(out, commonLint...)
	out = append(out, extras...)
	return out
}

// Prettier returns the formatter exclude patterns. Not parameterized
// by project type.
func Prettier() []string {
	out := make([]string, len(prettierPatterns))
	copy(out, prettierPatterns)
	return out
}
