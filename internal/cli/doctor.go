package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/lintwiz/internal/core/project"
	"github.com/modu-ai/lintwiz/internal/defs"
)

// CheckStatus is the outcome of one diagnostic check.
type CheckStatus string

const (
	StatusOK   CheckStatus = "ok"
	StatusWarn CheckStatus = "warn"
	StatusFail CheckStatus = "fail"
)

// DiagnosticCheck is one named probe result, shaped for both terminal
// rendering and JSON export.
type DiagnosticCheck struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
	Detail  string      `json:"detail,omitempty"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [directory]",
	Short: "Diagnose the project environment",
	Long: `Run every environment probe a setup would run, plus a few extra,
and report the results without changing anything.

A warning means setup still works but a feature is limited (for
example, Husky hooks need a git repository). A failure means setup
would abort.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().Bool("verbose", false, "Show the detail line for every check")
	doctorCmd.Flags().String("filter", "", "Run only the check with this name")
	doctorCmd.Flags().String("export", "", "Write the results as JSON to the given file")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// A broken project is exactly what doctor diagnoses, so a missing
	// manifest falls back to the working directory instead of failing.
	var dir string
	var err error
	if len(args) == 0 {
		dir, err = project.FindProjectRootOrCurrent()
	} else {
		dir, err = resolveExplicitDir(args[0])
	}
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	checks := runDiagnosticChecks(ctx, dir, getStringFlag(cmd, "filter"))
	renderDiagnostics(out, checks, getBoolFlag(cmd, "verbose"))

	if path := getStringFlag(cmd, "export"); path != "" {
		if err := exportDiagnostics(path, checks); err != nil {
			return fmt.Errorf("export diagnostics: %w", err)
		}
		_, _ = fmt.Fprintf(out, "\nResults written to %s\n", path)
	}

	if n := countStatus(checks, StatusFail); n > 0 {
		return fmt.Errorf("%d of %d checks failed", n, len(checks))
	}
	return nil
}

// runDiagnosticChecks executes every probe against the project
// directory. An empty filter runs them all.
func runDiagnosticChecks(ctx context.Context, dir, filter string) []DiagnosticCheck {
	probes := []func(context.Context, string) DiagnosticCheck{
		checkNodeRuntime,
		checkPackageManifest,
		checkGitRepository,
		checkPackageManagerTool,
		checkLintConfiguration,
		checkToolPreferences,
	}

	var checks []DiagnosticCheck
	for _, probe := range probes {
		c := probe(ctx, dir)
		if filter != "" && c.Name != filter {
			continue
		}
		checks = append(checks, c)
	}
	return checks
}

func checkNodeRuntime(ctx context.Context, _ string) DiagnosticCheck {
	c := DiagnosticCheck{Name: "node runtime"}

	version, err := deps.Env.NodeVersion(ctx)
	if err != nil {
		c.Status = StatusFail
		c.Message = "Node.js not found"
		c.Detail = "install Node.js 18 or newer from https://nodejs.org"
		return c
	}

	c.Status = StatusOK
	c.Message = version
	return c
}

func checkPackageManifest(_ context.Context, dir string) DiagnosticCheck {
	c := DiagnosticCheck{Name: "package manifest"}

	m, err := project.LoadManifest(dir)
	if err != nil {
		c.Status = StatusFail
		c.Message = "package.json missing or unreadable"
		c.Detail = "run lintwiz inside a directory initialized with npm init"
		return c
	}

	c.Status = StatusOK
	c.Message = m.Name
	if c.Message == "" {
		c.Message = "unnamed package"
	}
	return c
}

func checkGitRepository(_ context.Context, dir string) DiagnosticCheck {
	c := DiagnosticCheck{Name: "git repository"}

	if git := deps.Env.CheckGit(dir); !git.Ok() {
		c.Status = StatusWarn
		c.Message = "not a git repository"
		c.Detail = "only needed for Husky pre-commit hooks; run git init to enable them"
		return c
	}

	c.Status = StatusOK
	c.Message = ".git present"
	return c
}

func checkPackageManagerTool(_ context.Context, dir string) DiagnosticCheck {
	c := DiagnosticCheck{Name: "package manager"}

	pm := deps.Env.DetectPackageManager(dir)
	if _, err := exec.LookPath(string(pm)); err != nil {
		c.Status = StatusWarn
		c.Message = fmt.Sprintf("%s not found on PATH", pm)
		c.Detail = "packages cannot be installed; use --skip-install or install " + string(pm)
		return c
	}

	c.Status = StatusOK
	c.Message = string(pm)
	return c
}

func checkLintConfiguration(_ context.Context, dir string) DiagnosticCheck {
	c := DiagnosticCheck{Name: "lint configuration"}

	existing := deps.Detector.FindExistingConfig(dir)
	if existing == nil {
		c.Status = StatusOK
		c.Message = "none found"
		c.Detail = "setup will create a fresh configuration"
		return c
	}
	if existing.Snapshot == nil {
		c.Status = StatusWarn
		c.Message = fmt.Sprintf("%s cannot be merged", existing.Filename)
		c.Detail = existing.Reason
		return c
	}

	c.Status = StatusOK
	c.Message = existing.Filename
	c.Detail = "setup will merge its settings"
	return c
}

func checkToolPreferences(_ context.Context, dir string) DiagnosticCheck {
	c := DiagnosticCheck{Name: "tool preferences"}

	data, err := os.ReadFile(filepath.Join(dir, defs.LintwizYAML))
	if err != nil {
		if os.IsNotExist(err) {
			c.Status = StatusOK
			c.Message = "not present, using defaults"
			return c
		}
		c.Status = StatusWarn
		c.Message = defs.LintwizYAML + " unreadable"
		c.Detail = err.Error()
		return c
	}

	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		c.Status = StatusWarn
		c.Message = defs.LintwizYAML + " malformed, defaults apply"
		c.Detail = err.Error()
		return c
	}

	c.Status = StatusOK
	c.Message = defs.LintwizYAML + " loaded"
	return c
}

// renderDiagnostics prints one line per check plus a summary.
func renderDiagnostics(out io.Writer, checks []DiagnosticCheck, verbose bool) {
	width := 0
	for _, c := range checks {
		width = max(width, len(c.Name))
	}

	for _, c := range checks {
		sym := symSuccess()
		switch c.Status {
		case StatusWarn:
			sym = symWarning()
		case StatusFail:
			sym = symError()
		}

		name := fmt.Sprintf("%-*s", width, c.Name)
		_, _ = fmt.Fprintf(out, "%s %s  %s\n", sym, cliMuted.Render(name), c.Message)
		if c.Detail != "" && (verbose || c.Status != StatusOK) {
			_, _ = fmt.Fprintf(out, "  %s\n", cliMuted.Render(c.Detail))
		}
	}

	warns := countStatus(checks, StatusWarn)
	fails := countStatus(checks, StatusFail)

	summary := fmt.Sprintf("%d checks", len(checks))
	var extra []string
	if warns > 0 {
		extra = append(extra, fmt.Sprintf("%d warnings", warns))
	}
	if fails > 0 {
		extra = append(extra, fmt.Sprintf("%d failures", fails))
	}
	if len(extra) > 0 {
		summary += " (" + strings.Join(extra, ", ") + ")"
	}
	_, _ = fmt.Fprintf(out, "\n%s\n", summary)
}

// exportDiagnostics writes the check results as indented JSON.
func exportDiagnostics(path string, checks []DiagnosticCheck) error {
	data, err := json.MarshalIndent(checks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func countStatus(checks []DiagnosticCheck, status CheckStatus) int {
	n := 0
	for _, c := range checks {
		if c.Status == status {
			n++
		}
	}
	return n
}
