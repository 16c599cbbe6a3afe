// Package rules derives the lint configuration document for a chosen
// project setup. Application is an explicit ordered pipeline of pure
// steps so the document can be inspected after each stage: base
// initialization, merge with any existing snapshot, framework rules,
// TypeScript rules, Prettier rules.
package rules

import (
	"errors"
	"fmt"

	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// ErrUnknownProjectType is returned when no rule set exists for the
// requested project type. Callers validate input earlier, so hitting
// this indicates a programming error.
var ErrUnknownProjectType = errors.New("rules: unknown project type")

// Step is one named transformation in the pipeline. Apply never
// mutates its input.
type Step struct {
	Name  string
	Apply func(doc *merge.Document) *merge.Document
}

// Pipeline returns the ordered steps for the given options. A non-nil
// snapshot is the parsed pre-existing configuration, folded in right
// after base initialization so later steps win on conflicts.
func Pipeline(opts models.SetupOptions, snapshot *merge.Document) ([]Step, error) {
	if _, ok := frameworkRules[opts.ProjectType]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, opts.ProjectType)
	}

	steps := []Step{
		{Name: "base", Apply: baseStep(opts)},
	}
	if snapshot != nil {
		steps = append(steps, Step{Name: "existing", Apply: snapshotStep(snapshot)})
	}
	steps = append(steps, Step{Name: string(opts.ProjectType), Apply: frameworkStep(opts.ProjectType)})
	if opts.UseTypeScript && opts.ProjectType != models.ProjectTypeNextJS {
		steps = append(steps, Step{Name: "typescript", Apply: typescriptStep(opts)})
	}
	if opts.UsePrettier {
		steps = append(steps, Step{Name: "prettier", Apply: prettierStep})
	}
	return steps, nil
}

// Apply runs the full pipeline and returns the final document.
func Apply(opts models.SetupOptions, snapshot *merge.Document) (*merge.Document, error) {
	steps, err := Pipeline(opts, snapshot)
	if err != nil {
		return nil, err
	}

	var doc *merge.Document
	for _, s := range steps {
		doc = s.Apply(doc)
	}
	return doc, nil
}

// snapshotStep folds the existing on-disk configuration into the
// fresh base. The snapshot side wins on scalar conflicts, keeping the
// user's prior choices until a later step overrides them.
func snapshotStep(snapshot *merge.Document) func(*merge.Document) *merge.Document {
	return func(doc *merge.Document) *merge.Document {
		return merge.Merge(doc, snapshot)
	}
}
