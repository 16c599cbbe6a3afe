// Package wizard provides the interactive setup questionnaire built on
// huh forms. It collects the choices that drive configuration
// generation: project type, TypeScript, strictness, Prettier, Husky,
// package manager, and whether to merge an existing configuration.
package wizard

import (
	"errors"

	"github.com/modu-ai/lintwiz/pkg/models"
)

// Answers holds the user's selections from the setup wizard. Fields
// for skipped questions keep their zero value; callers fall back to
// detected or configured defaults.
type Answers struct {
	ProjectType    models.ProjectType
	UseTypeScript  bool
	UseStrict      bool
	UsePrettier    bool
	UseHusky       bool
	PackageManager models.PackageManager
	MergeExisting  bool
}

// SetupOptions converts the answers into the immutable options record
// consumed by the generation pipeline.
func (a *Answers) SetupOptions() models.SetupOptions {
	return models.SetupOptions{
		ProjectType:   a.ProjectType,
		UseTypeScript: a.UseTypeScript,
		UseHusky:      a.UseHusky,
		UseStrict:     a.UseStrict,
		UsePrettier:   a.UsePrettier,
	}
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string              // Unique identifier
	Type        QuestionType        // Select or Confirm
	Title       string              // Question title
	Description string              // Additional description
	Options     []Option            // Options for select questions
	Default     string              // Select: option value; confirm: "true"/"false"
	Condition   func(*Answers) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
