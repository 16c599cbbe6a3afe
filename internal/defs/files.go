package defs

// Generated artifact file names.
const (
	// EslintrcJSON is the emitted ESLint configuration file.
	EslintrcJSON = ".eslintrc.json"

	// PrettierrcJSON is the emitted Prettier configuration file.
	PrettierrcJSON = ".prettierrc.json"

	// EslintIgnore is the ESLint ignore-pattern file.
	EslintIgnore = ".eslintignore"

	// PrettierIgnore is the Prettier ignore-pattern file.
	PrettierIgnore = ".prettierignore"

	// PackageJSON is the npm package manifest.
	PackageJSON = "package.json"

	// TsconfigJSON is the TypeScript project manifest generated for the
	// Svelte auto-detection case.
	TsconfigJSON = "tsconfig.json"

	// HuskyDir is the directory holding installed git hooks.
	HuskyDir = ".husky"

	// PreCommitHook is the hook script name under HuskyDir.
	PreCommitHook = "pre-commit"
)

// Existing ESLint configuration candidates, checked in order. The first
// match becomes the merge snapshot; .js/.cjs flavours are detected but
// cannot be parsed as data.
var EslintConfigCandidates = []string{
	".eslintrc.json",
	".eslintrc",
	".eslintrc.yaml",
	".eslintrc.yml",
	".eslintrc.js",
	".eslintrc.cjs",
}

// Tool configuration file names.
const (
	// LintwizYAML is the optional per-project tool preference file.
	LintwizYAML = ".lintwiz.yaml"
)
