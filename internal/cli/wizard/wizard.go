package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/modu-ai/lintwiz/pkg/models"
)

// Run executes the wizard and returns the collected answers.
// Each question runs as its own independent huh.Form so the select
// viewport never scrolls; the options lists are short and static.
func Run(questions []Question) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Answers{}
	theme := newSetupTheme()

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, result)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// RunDefaults runs the wizard with the standard question list built
// from the detected project facts.
func RunDefaults(in Inputs) (*Answers, error) {
	return Run(DefaultQuestions(in))
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *Answers) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, result)
	}

	g := huh.NewGroup(field)

	if q.Condition != nil {
		cond := q.Condition
		g = g.WithHideFunc(func() bool {
			return !cond(result)
		})
	}

	return g
}

// buildSelectField creates a huh.Select field for a select-type
// question. Options are static; the default value is the first option
// so the viewport stays put.
func buildSelectField(q *Question, result *Answers) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	// Store the answer as part of validation so later conditions see it.
	qID := q.ID
	sel.Validate(func(val string) error {
		saveAnswer(qID, val, result)
		return nil
	})

	return sel
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q *Question, result *Answers) *huh.Confirm {
	value := q.Default == "true"

	conf := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	qID := q.ID
	conf.Validate(func(val bool) error {
		if val {
			saveAnswer(qID, "true", result)
		} else {
			saveAnswer(qID, "false", result)
		}
		return nil
	})

	return conf
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *Answers) {
	enabled := value == "true"

	switch id {
	case "project_type":
		result.ProjectType = models.ProjectType(value)
	case "typescript":
		result.UseTypeScript = enabled
	case "strict":
		result.UseStrict = enabled
	case "prettier":
		result.UsePrettier = enabled
	case "husky":
		result.UseHusky = enabled
	case "package_manager":
		result.PackageManager = models.PackageManager(value)
	case "merge_existing":
		result.MergeExisting = enabled
	}
}
