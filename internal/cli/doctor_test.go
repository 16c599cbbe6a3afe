package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/lintwiz/internal/core/project"
)

// withTestDeps points the command globals at real collaborators for
// the duration of one test. Tests using it must not run in parallel.
func withTestDeps(t *testing.T) {
	t.Helper()
	old := GetDeps()
	SetDeps(&Dependencies{
		Detector: project.NewDetector(nil),
		Env:      project.NewEnvironment(nil),
	})
	t.Cleanup(func() { SetDeps(old) })
}

func TestCountStatus(t *testing.T) {
	t.Parallel()

	checks := []DiagnosticCheck{
		{Status: StatusOK},
		{Status: StatusWarn},
		{Status: StatusOK},
		{Status: StatusFail},
	}

	if got := countStatus(checks, StatusOK); got != 2 {
		t.Errorf("ok count = %d, want 2", got)
	}
	if got := countStatus(checks, StatusWarn); got != 1 {
		t.Errorf("warn count = %d, want 1", got)
	}
	if got := countStatus(checks, StatusFail); got != 1 {
		t.Errorf("fail count = %d, want 1", got)
	}
}

func TestExportDiagnostics(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doctor.json")
	checks := []DiagnosticCheck{
		{Name: "node runtime", Status: StatusOK, Message: "v20.11.0"},
		{Name: "git repository", Status: StatusWarn, Message: "not a git repository", Detail: "run git init"},
	}

	if err := exportDiagnostics(path, checks); err != nil {
		t.Fatalf("exportDiagnostics: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got []DiagnosticCheck
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(got) != 2 || got[0].Name != "node runtime" || got[1].Detail != "run git init" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if strings.Contains(string(data), `"detail"`) && !strings.Contains(string(data), "run git init") {
		t.Error("detail should only appear when set")
	}
}

func TestExportDiagnosticsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doctor.json")
	if err := exportDiagnostics(path, nil); err != nil {
		t.Fatalf("exportDiagnostics: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "null" {
		t.Errorf("empty export = %q, want null", data)
	}
}

func TestRenderDiagnostics(t *testing.T) {
	t.Parallel()

	checks := []DiagnosticCheck{
		{Name: "node runtime", Status: StatusOK, Message: "v20.11.0", Detail: "only with verbose"},
		{Name: "git repository", Status: StatusWarn, Message: "not a git repository", Detail: "run git init"},
	}

	var buf strings.Builder
	renderDiagnostics(&buf, checks, false)
	out := buf.String()

	for _, want := range []string{"node runtime", "v20.11.0", "git repository", "run git init", "2 checks", "1 warnings"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "only with verbose") {
		t.Error("ok details should stay hidden without verbose")
	}

	buf.Reset()
	renderDiagnostics(&buf, checks, true)
	if !strings.Contains(buf.String(), "only with verbose") {
		t.Error("verbose should show every detail")
	}
}

func TestCheckToolPreferences(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	c := checkToolPreferences(context.Background(), root)
	if c.Status != StatusOK || !strings.Contains(c.Message, "not present") {
		t.Errorf("missing file: got %+v", c)
	}

	path := filepath.Join(root, ".lintwiz.yaml")
	if err := os.WriteFile(path, []byte("defaults:\n  strict: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c := checkToolPreferences(context.Background(), root); c.Status != StatusOK {
		t.Errorf("valid file: got %+v", c)
	}

	if err := os.WriteFile(path, []byte(":\n\t: bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	c = checkToolPreferences(context.Background(), root)
	if c.Status != StatusWarn {
		t.Errorf("malformed file: got %+v", c)
	}
}

func TestCheckPackageManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	c := checkPackageManifest(context.Background(), root)
	if c.Status != StatusFail {
		t.Errorf("missing manifest: got %+v", c)
	}

	manifest := filepath.Join(root, "package.json")
	if err := os.WriteFile(manifest, []byte(`{"name": "demo"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c = checkPackageManifest(context.Background(), root)
	if c.Status != StatusOK || c.Message != "demo" {
		t.Errorf("valid manifest: got %+v", c)
	}
}

func TestCheckGitRepository(t *testing.T) {
	withTestDeps(t)
	root := t.TempDir()

	c := checkGitRepository(context.Background(), root)
	if c.Status != StatusWarn {
		t.Errorf("no .git: got %+v", c)
	}
	if !strings.Contains(c.Detail, "git init") {
		t.Errorf("detail should point at git init: %+v", c)
	}

	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	c = checkGitRepository(context.Background(), root)
	if c.Status != StatusOK {
		t.Errorf("with .git: got %+v", c)
	}
}

func TestCheckLintConfiguration(t *testing.T) {
	withTestDeps(t)
	root := t.TempDir()

	c := checkLintConfiguration(context.Background(), root)
	if c.Status != StatusOK || c.Message != "none found" {
		t.Errorf("fresh project: got %+v", c)
	}

	rc := filepath.Join(root, ".eslintrc.json")
	if err := os.WriteFile(rc, []byte(`{"rules": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c = checkLintConfiguration(context.Background(), root)
	if c.Status != StatusOK || c.Message != ".eslintrc.json" {
		t.Errorf("mergeable config: got %+v", c)
	}

	if err := os.WriteFile(rc, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	c = checkLintConfiguration(context.Background(), root)
	if c.Status != StatusWarn {
		t.Errorf("unmergeable config: got %+v", c)
	}
	if c.Detail == "" {
		t.Error("unmergeable config should carry the reason")
	}
}

func TestRunDiagnosticChecksFilter(t *testing.T) {
	withTestDeps(t)
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"name": "demo"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	checks := runDiagnosticChecks(context.Background(), root, "package manifest")
	if len(checks) != 1 {
		t.Fatalf("filter should keep one check, got %d", len(checks))
	}
	if checks[0].Name != "package manifest" {
		t.Errorf("wrong check survived: %+v", checks[0])
	}

	all := runDiagnosticChecks(context.Background(), root, "")
	if len(all) != 6 {
		t.Errorf("expected 6 checks, got %d", len(all))
	}
}
