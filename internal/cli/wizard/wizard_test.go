package wizard

import (
	"errors"
	"strings"
	"testing"

	"github.com/modu-ai/lintwiz/pkg/models"
)

func questionIDs(questions []Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func findQuestion(t *testing.T, questions []Question, id string) *Question {
	t.Helper()
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	t.Fatalf("question %q not found in %v", id, questionIDs(questions))
	return nil
}

func TestDefaultQuestionsOrder(t *testing.T) {
	t.Parallel()

	questions := DefaultQuestions(Inputs{})
	want := []string{"project_type", "typescript", "strict", "prettier", "husky", "package_manager"}

	got := questionIDs(questions)
	if len(got) != len(want) {
		t.Fatalf("question ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("question %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultQuestionsSkipInstall(t *testing.T) {
	t.Parallel()

	questions := DefaultQuestions(Inputs{SkipInstall: true})
	for _, q := range questions {
		if q.ID == "package_manager" {
			t.Error("package manager question present with install skipped")
		}
	}
}

func TestDefaultQuestionsExistingConfig(t *testing.T) {
	t.Parallel()

	questions := DefaultQuestions(Inputs{ExistingConfig: ".eslintrc.yaml"})
	q := findQuestion(t, questions, "merge_existing")

	if !strings.Contains(q.Title, ".eslintrc.yaml") {
		t.Errorf("title %q should name the existing file", q.Title)
	}
	if q.Default != "true" {
		t.Errorf("default = %q, want merge preselected", q.Default)
	}
	if q.Type != QuestionTypeConfirm {
		t.Errorf("type = %v, want confirm", q.Type)
	}
}

func TestDefaultQuestionsNoExistingConfig(t *testing.T) {
	t.Parallel()

	for _, q := range DefaultQuestions(Inputs{}) {
		if q.ID == "merge_existing" {
			t.Error("merge question present without an existing config")
		}
	}
}

func TestProjectTypeOptionsSuggestedFirst(t *testing.T) {
	t.Parallel()

	questions := DefaultQuestions(Inputs{SuggestedType: models.ProjectTypeVue})
	q := findQuestion(t, questions, "project_type")

	if q.Default != "vue" {
		t.Errorf("default = %q, want vue", q.Default)
	}
	if q.Options[0].Value != "vue" {
		t.Errorf("first option = %q, want the suggested type first", q.Options[0].Value)
	}

	seen := make(map[string]bool)
	for _, opt := range q.Options {
		if seen[opt.Value] {
			t.Errorf("duplicate option %q", opt.Value)
		}
		seen[opt.Value] = true
	}
	if len(q.Options) != len(models.ValidProjectTypes()) {
		t.Errorf("option count = %d, want %d", len(q.Options), len(models.ValidProjectTypes()))
	}
}

func TestProjectTypeOptionsNoSuggestion(t *testing.T) {
	t.Parallel()

	questions := DefaultQuestions(Inputs{})
	q := findQuestion(t, questions, "project_type")

	if q.Options[0].Value != "nodejs" {
		t.Errorf("first option = %q, want nodejs fallback", q.Options[0].Value)
	}
}

func TestPackageManagerOptions(t *testing.T) {
	t.Parallel()

	questions := DefaultQuestions(Inputs{DetectedPM: models.PackageManagerPnpm})
	q := findQuestion(t, questions, "package_manager")

	if q.Options[0].Value != "pnpm" {
		t.Errorf("first option = %q, want detected pnpm", q.Options[0].Value)
	}
	if q.Options[0].Desc == "" {
		t.Error("detected option should carry the lockfile note")
	}

	questions = DefaultQuestions(Inputs{})
	q = findQuestion(t, questions, "package_manager")
	if q.Options[0].Value != "npm" {
		t.Errorf("first option = %q, want npm fallback", q.Options[0].Value)
	}
	if q.Options[0].Desc != "" {
		t.Errorf("fallback option desc = %q, want none", q.Options[0].Desc)
	}
}

func TestDefaultsFromPreferences(t *testing.T) {
	t.Parallel()

	questions := DefaultQuestions(Inputs{
		DefaultStrict:   true,
		DefaultPrettier: false,
		DefaultHusky:    true,
	})

	tests := map[string]string{
		"strict":     "true",
		"prettier":   "false",
		"husky":      "true",
		"typescript": "false",
	}
	for id, want := range tests {
		if got := findQuestion(t, questions, id).Default; got != want {
			t.Errorf("%s default = %q, want %q", id, got, want)
		}
	}
}

func TestSaveAnswer(t *testing.T) {
	t.Parallel()

	result := &Answers{}
	saveAnswer("project_type", "svelte", result)
	saveAnswer("typescript", "true", result)
	saveAnswer("strict", "false", result)
	saveAnswer("prettier", "true", result)
	saveAnswer("husky", "true", result)
	saveAnswer("package_manager", "yarn", result)
	saveAnswer("merge_existing", "true", result)

	want := Answers{
		ProjectType:    models.ProjectTypeSvelte,
		UseTypeScript:  true,
		UsePrettier:    true,
		UseHusky:       true,
		PackageManager: models.PackageManagerYarn,
		MergeExisting:  true,
	}
	if *result != want {
		t.Errorf("answers = %+v, want %+v", *result, want)
	}
}

func TestSaveAnswerUnknownIDIgnored(t *testing.T) {
	t.Parallel()

	result := &Answers{}
	saveAnswer("shoe_size", "44", result)
	if *result != (Answers{}) {
		t.Errorf("unknown id mutated answers: %+v", result)
	}
}

func TestAnswersSetupOptions(t *testing.T) {
	t.Parallel()

	a := &Answers{
		ProjectType:    models.ProjectTypeReact,
		UseTypeScript:  true,
		UseStrict:      true,
		UsePrettier:    true,
		UseHusky:       false,
		PackageManager: models.PackageManagerNpm,
	}
	opts := a.SetupOptions()

	want := models.SetupOptions{
		ProjectType:   models.ProjectTypeReact,
		UseTypeScript: true,
		UseStrict:     true,
		UsePrettier:   true,
	}
	if opts != want {
		t.Errorf("options = %+v, want %+v", opts, want)
	}
}

func TestRunNoQuestions(t *testing.T) {
	t.Parallel()

	if _, err := Run(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Run(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestSetupTheme(t *testing.T) {
	t.Parallel()

	if newSetupTheme() == nil {
		t.Fatal("theme is nil")
	}
}
