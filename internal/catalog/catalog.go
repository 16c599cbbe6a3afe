// Package catalog holds the static development-dependency tables
// behind every generated setup. Tables are keyed by project type,
// built once at process start, and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modu-ai/lintwiz/pkg/models"
)

// ErrUnknownProjectType is returned when no dependency table exists
// for the requested project type.
var ErrUnknownProjectType = errors.New("catalog: unknown project type")

// Specifier names one npm package at a caret version range.
type Specifier struct {
	Name    string
	Version string
}

// String renders the specifier in name@range form, the shape package
// managers accept on the command line.
func (s Specifier) String() string {
	return s.Name + "@" + s.Version
}

// common is the toolchain every setup installs before framework or
// language additions.
var common = []Specifier{
	{Name: "eslint", Version: "^8.57.0"},
	{Name: "prettier", Version: "^3.2.5"},
	{Name: "eslint-config-prettier", Version: "^9.1.0"},
	{Name: "eslint-plugin-prettier", Version: "^5.1.3"},
}

// framework maps each project type to its lint additions.
var framework = map[models.ProjectType][]Specifier{
	models.ProjectTypeNextJS: {
		{Name: "eslint-config-next", Version: "^14.1.0"},
	},
	models.ProjectTypeReact: {
		{Name: "eslint-plugin-react", Version: "^7.34.0"},
		{Name: "eslint-plugin-react-hooks", Version: "^4.6.0"},
	},
	models.ProjectTypeNodeJS: {
		{Name: "eslint-plugin-node", Version: "^11.1.0"},
	},
	models.ProjectTypeAngular: {
		{Name: "@angular-eslint/eslint-plugin", Version: "^17.3.0"},
		{Name: "@angular-eslint/template-parser", Version: "^17.3.0"},
	},
	models.ProjectTypeVue: {
		{Name: "eslint-plugin-vue", Version: "^9.23.0"},
		{Name: "vue-eslint-parser", Version: "^9.4.2"},
	},
	models.ProjectTypeSvelte: {
		{Name: "eslint-plugin-svelte", Version: "^2.35.1"},
		{Name: "svelte-eslint-parser", Version: "^0.33.1"},
	},
}

// typescript is the parser/plugin pair added when the project opts
// into type checking. Next.js ships its own TypeScript support, so
// the pair is skipped there.
var typescript = []Specifier{
	{Name: "@typescript-eslint/parser", Version: "^7.3.1"},
	{Name: "@typescript-eslint/eslint-plugin", Version: "^7.3.1"},
}

// Resolve returns the ordered development dependencies for the chosen
// options: the common toolchain, then framework additions, then the
// TypeScript pair. With Prettier disabled, every package whose name
// mentions prettier is dropped from the result.
func Resolve(opts models.SetupOptions) ([]Specifier, error) {
	additions, ok := framework[opts.ProjectType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, opts.ProjectType)
	}

	specs := make([]Specifier, 0, len(common)+len(additions)+len(typescript))
	specs = append(specs, common...)
	specs = append(specs, additions...)
	if opts.UseTypeScript && opts.ProjectType != models.ProjectTypeNextJS {
		specs = append(specs, typescript...)
	}

	if !opts.UsePrettier {
		kept := specs[:0]
		for _, s := range specs {
			if !strings.Contains(s.Name, "prettier") {
				kept = append(kept, s)
			}
		}
		specs = kept
	}
	return specs, nil
}

// Names returns the specifier strings in resolution order.
func Names(specs []Specifier) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.String()
	}
	return names
}
