package wizard

import (
	"fmt"
	"strconv"

	"github.com/modu-ai/lintwiz/pkg/models"
)

// Inputs carries the detected project facts that shape the question
// list: the dependency-based type suggestion, the lockfile-based
// package manager, any mergeable existing configuration, and the
// preselected answers from .lintwiz.yaml.
type Inputs struct {
	SuggestedType   models.ProjectType
	DetectedPM      models.PackageManager
	ExistingConfig  string
	DefaultStrict   bool
	DefaultPrettier bool
	DefaultHusky    bool
	SkipInstall     bool
}

// DefaultQuestions returns the setup questions in prompt order:
// project type, TypeScript, strictness, Prettier, Husky, package
// manager, and the merge decision for a pre-existing configuration.
func DefaultQuestions(in Inputs) []Question {
	questions := []Question{
		{
			ID:          "project_type",
			Type:        QuestionTypeSelect,
			Title:       "What kind of project is this?",
			Description: "Picks the framework-specific plugins and rules.",
			Options:     projectTypeOptions(in.SuggestedType),
			Default:     string(defaultProjectType(in.SuggestedType)),
		},
		{
			ID:          "typescript",
			Type:        QuestionTypeConfirm,
			Title:       "Does the project use TypeScript?",
			Description: "Adds the TypeScript parser and plugin.",
			Default:     "false",
		},
		{
			ID:          "strict",
			Type:        QuestionTypeConfirm,
			Title:       "Enable strict rules?",
			Description: "Treats console/debugger leftovers and unused variables as errors.",
			Default:     strconv.FormatBool(in.DefaultStrict),
		},
		{
			ID:          "prettier",
			Type:        QuestionTypeConfirm,
			Title:       "Format with Prettier?",
			Description: "Adds Prettier with conflict-free ESLint integration.",
			Default:     strconv.FormatBool(in.DefaultPrettier),
		},
		{
			ID:          "husky",
			Type:        QuestionTypeConfirm,
			Title:       "Run checks before each commit?",
			Description: "Installs a Husky pre-commit hook. Requires a git repository.",
			Default:     strconv.FormatBool(in.DefaultHusky),
		},
	}

	if !in.SkipInstall {
		questions = append(questions, Question{
			ID:      "package_manager",
			Type:    QuestionTypeSelect,
			Title:   "Which package manager installs the dependencies?",
			Options: packageManagerOptions(in.DetectedPM),
			Default: string(defaultPackageManager(in.DetectedPM)),
		})
	}

	if in.ExistingConfig != "" {
		questions = append(questions, Question{
			ID:    "merge_existing",
			Type:  QuestionTypeConfirm,
			Title: fmt.Sprintf("Found %s. Keep its settings?", in.ExistingConfig),
			Description: "Yes merges the existing rules into the new configuration. " +
				"No starts fresh and overwrites the file.",
			Default: "true",
		})
	}

	return questions
}

// projectTypeOptions lists all project types with the suggested one
// first. The default option must be first in the list so the select
// viewport does not scroll it out of view.
func projectTypeOptions(suggested models.ProjectType) []Option {
	types := models.ValidProjectTypes()
	def := defaultProjectType(suggested)

	options := make([]Option, 0, len(types))
	options = append(options, projectTypeOption(def))
	for _, t := range types {
		if t == def {
			continue
		}
		options = append(options, projectTypeOption(t))
	}
	return options
}

func projectTypeOption(t models.ProjectType) Option {
	descs := map[models.ProjectType]string{
		models.ProjectTypeNextJS:  "Next.js app with core-web-vitals rules",
		models.ProjectTypeReact:   "React with hooks linting",
		models.ProjectTypeNodeJS:  "Plain Node.js service or library",
		models.ProjectTypeAngular: "Angular with template linting",
		models.ProjectTypeVue:     "Vue 3 single-file components",
		models.ProjectTypeSvelte:  "Svelte components",
	}
	return Option{Label: t.Label(), Value: string(t), Desc: descs[t]}
}

// defaultProjectType maps an absent suggestion to nodejs.
func defaultProjectType(suggested models.ProjectType) models.ProjectType {
	if suggested.IsValid() {
		return suggested
	}
	return models.ProjectTypeNodeJS
}

// packageManagerOptions lists the supported package managers with the
// detected one first.
func packageManagerOptions(detected models.PackageManager) []Option {
	def := defaultPackageManager(detected)

	options := make([]Option, 0, 3)
	options = append(options, packageManagerOption(def, def == detected))
	for _, pm := range models.ValidPackageManagers() {
		if pm == def {
			continue
		}
		options = append(options, packageManagerOption(pm, false))
	}
	return options
}

func packageManagerOption(pm models.PackageManager, detected bool) Option {
	opt := Option{Label: string(pm), Value: string(pm)}
	if detected {
		opt.Desc = "detected from lockfile"
	}
	return opt
}

// defaultPackageManager maps an absent detection to npm.
func defaultPackageManager(detected models.PackageManager) models.PackageManager {
	if detected.IsValid() {
		return detected
	}
	return models.PackageManagerNpm
}
