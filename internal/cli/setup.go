package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/lintwiz/internal/cli/wizard"
	"github.com/modu-ai/lintwiz/internal/config"
	"github.com/modu-ai/lintwiz/internal/core/project"
	"github.com/modu-ai/lintwiz/internal/core/setup"
	"github.com/modu-ai/lintwiz/internal/ui"
	"github.com/modu-ai/lintwiz/pkg/models"
)

var setupCmd = &cobra.Command{
	Use:   "setup [directory]",
	Short: "Provision ESLint, Prettier, and Husky for a project",
	Long: `Provision linting and formatting for the project in the given
directory. Without an argument the nearest ancestor directory holding
a package.json is used.

Without flags an interactive wizard collects the choices. Flags that
are set explicitly always win over wizard answers; with --yes or a
non-interactive terminal the wizard is skipped entirely and unset
choices fall back to .lintwiz.yaml defaults.

Examples:
  lintwiz setup                      Interactive setup in the current directory
  lintwiz setup ./web                Interactive setup for ./web
  lintwiz setup --yes --type react   Non-interactive React setup
  lintwiz setup --dry-run            Preview every file without writing`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateSetupFlags,
	RunE:    runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().String("type", "", "Project type: nextjs, react, nodejs, angular, vue, or svelte")
	setupCmd.Flags().Bool("ts", false, "Configure the TypeScript parser and plugin")
	setupCmd.Flags().Bool("strict", false, "Treat console/debugger leftovers and unused variables as errors")
	setupCmd.Flags().Bool("prettier", true, "Configure Prettier formatting")
	setupCmd.Flags().Bool("husky", false, "Install a Husky pre-commit hook (requires a git repository)")
	setupCmd.Flags().String("pm", "", "Package manager: npm, pnpm, or yarn (default: lockfile detection)")
	setupCmd.Flags().Bool("yes", false, "Skip the wizard; use flags and configured defaults")
	setupCmd.Flags().Bool("dry-run", false, "Print the artifacts instead of writing them; skips installation")
	setupCmd.Flags().Bool("skip-install", false, "Generate configuration only, without installing packages")
	setupCmd.Flags().Bool("no-color", false, "Disable colored output")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateSetupFlags validates enumerated flag values before execution.
func validateSetupFlags(cmd *cobra.Command, _ []string) error {
	if t := getStringFlag(cmd, "type"); t != "" {
		if !slices.Contains(models.ProjectTypeStrings(), t) {
			return fmt.Errorf("invalid --type value %q: must be one of: %s",
				t, strings.Join(models.ProjectTypeStrings(), ", "))
		}
	}

	if pm := getStringFlag(cmd, "pm"); pm != "" {
		if !models.PackageManager(pm).IsValid() {
			return fmt.Errorf("invalid --pm value %q: must be one of: npm, pnpm, yarn", pm)
		}
	}

	return nil
}

// runSetup executes the provisioning workflow.
func runSetup(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	dir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	if err := deps.EnsureConfig(dir); err != nil {
		return err
	}
	cfg := deps.Config

	if cfg.UI.Headless {
		deps.Headless.ForceHeadless(true)
	}

	dryRun := getBoolFlag(cmd, "dry-run")
	skipInstall := getBoolFlag(cmd, "skip-install") || cfg.Install.Skip

	// Detection feeds the wizard defaults and the non-interactive path.
	suggested, ok := deps.Detector.SuggestProjectType(dir)
	if !ok {
		suggested = models.ProjectTypeNodeJS
	}
	detectedPM := deps.Env.DetectPackageManager(dir)
	existing := deps.Detector.FindExistingConfig(dir)

	answers, err := collectAnswers(out, collectInputs{
		cfg:         cfg,
		suggested:   suggested,
		detectedPM:  detectedPM,
		existing:    existing,
		skipInstall: skipInstall,
		yes:         getBoolFlag(cmd, "yes"),
	})
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
		return err
	}

	applyFlagOverrides(cmd, answers)
	pm := resolvePackageManager(getStringFlag(cmd, "pm"),
		answers.PackageManager, cfg.Install.PackageManager, detectedPM)

	theme := ui.DefaultTheme()
	theme.NoColor = cfg.UI.NoColor || getBoolFlag(cmd, "no-color")
	progress := ui.NewProgress(theme, deps.Headless)
	runner := setup.NewRunner(deps.Detector, deps.Env, progress, deps.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := runner.Run(ctx, setup.Options{
		ProjectRoot:    dir,
		Setup:          answers.SetupOptions(),
		PackageManager: pm,
		MergeExisting:  answers.MergeExisting,
		SkipInstall:    skipInstall,
		DryRun:         dryRun,
	})
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	if dryRun {
		printPreview(out, result)
		return nil
	}
	printResult(out, result, skipInstall)
	return nil
}

// resolveProjectDir picks the project root: an explicit argument wins,
// otherwise the nearest ancestor directory holding a package.json.
func resolveProjectDir(args []string) (string, error) {
	if len(args) == 0 {
		return project.FindProjectRoot()
	}
	return resolveExplicitDir(args[0])
}

// resolveExplicitDir turns a user-supplied path into an absolute,
// existing directory.
func resolveExplicitDir(arg string) (string, error) {
	// Normalize to composed form before the path hits the filesystem;
	// some terminals hand over decomposed characters.
	dir := norm.NFC.String(arg)

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve project path %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project path %q is not a directory", dir)
	}
	return abs, nil
}

// collectInputs bundles the detection results feeding answer
// collection.
type collectInputs struct {
	cfg         *config.Config
	suggested   models.ProjectType
	detectedPM  models.PackageManager
	existing    *project.ExistingConfig
	skipInstall bool
	yes         bool
}

// collectAnswers runs the wizard on an interactive terminal, or falls
// back to configured defaults with --yes or a non-TTY stdin.
func collectAnswers(out io.Writer, in collectInputs) (*wizard.Answers, error) {
	if in.yes || deps.Headless.IsHeadless() {
		return answersFromDefaults(in), nil
	}

	printBanner(out)

	wi := wizard.Inputs{
		SuggestedType:   in.suggested,
		DetectedPM:      in.detectedPM,
		DefaultStrict:   in.cfg.Defaults.Strict,
		DefaultPrettier: in.cfg.Defaults.Prettier,
		DefaultHusky:    in.cfg.Defaults.Husky,
		SkipInstall:     in.skipInstall,
	}
	// Only a structurally mergeable config is worth asking about.
	if in.existing != nil && in.existing.Snapshot != nil {
		wi.ExistingConfig = in.existing.Filename
	}
	return wizard.RunDefaults(wi)
}

// answersFromDefaults builds the non-interactive answer set: detected
// project type plus the preselections from .lintwiz.yaml. The package
// manager stays unset so the precedence chain resolves it.
func answersFromDefaults(in collectInputs) *wizard.Answers {
	return &wizard.Answers{
		ProjectType:   in.suggested,
		UseStrict:     in.cfg.Defaults.Strict,
		UsePrettier:   in.cfg.Defaults.Prettier,
		UseHusky:      in.cfg.Defaults.Husky,
		MergeExisting: true,
	}
}

// applyFlagOverrides clobbers answers with every flag the user set
// explicitly.
func applyFlagOverrides(cmd *cobra.Command, answers *wizard.Answers) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		answers.ProjectType = models.ProjectType(getStringFlag(cmd, "type"))
	}
	if flags.Changed("ts") {
		answers.UseTypeScript = getBoolFlag(cmd, "ts")
	}
	if flags.Changed("strict") {
		answers.UseStrict = getBoolFlag(cmd, "strict")
	}
	if flags.Changed("prettier") {
		answers.UsePrettier = getBoolFlag(cmd, "prettier")
	}
	if flags.Changed("husky") {
		answers.UseHusky = getBoolFlag(cmd, "husky")
	}
}

// resolvePackageManager picks the installer tool: explicit flag, then
// wizard answer, then .lintwiz.yaml, then lockfile detection.
func resolvePackageManager(flagPM string, answer, configured, detected models.PackageManager) models.PackageManager {
	if flagPM != "" {
		return models.PackageManager(flagPM)
	}
	if answer != "" {
		return answer
	}
	if configured != "" {
		return configured
	}
	if detected != "" {
		return detected
	}
	return config.DefaultPackageManager
}

// printResult renders the success card, the merge diff, and any
// warnings after a real run.
func printResult(out io.Writer, result *setup.Result, skipInstall bool) {
	if result.Diff != "" {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, cliMuted.Render("Configuration changes:"))
		_, _ = fmt.Fprintln(out, renderDiff(result.Diff))
	}

	pairs := []kvPair{
		{"Project type", result.Options.ProjectType.Label()},
		{"Files written", fmt.Sprintf("%d", len(result.WrittenFiles))},
	}
	if skipInstall {
		pairs = append(pairs, kvPair{"Packages", fmt.Sprintf("%d to install manually", len(result.Packages))})
	} else {
		pairs = append(pairs, kvPair{"Packages", fmt.Sprintf("%d installed", len(result.Installed))})
	}

	details := []string{renderKeyValueLines(pairs)}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Lint setup complete", details...))

	if skipInstall && len(result.Packages) > 0 {
		_, _ = fmt.Fprintf(out, "\nInstall manually:\n  %s\n",
			cliMuted.Render(strings.Join(result.Packages, " ")))
	}

	printGuide(out)
}

// printPreview renders the dry-run artifact contents.
func printPreview(out io.Writer, result *setup.Result) {
	_, _ = fmt.Fprintln(out, cliMuted.Render("Dry run: nothing was written, nothing installed."))

	for _, name := range result.WrittenFiles {
		_, _ = fmt.Fprintf(out, "\n%s %s\n", symInfo(), cliPrimary.Render(name))
		_, _ = fmt.Fprintln(out, strings.TrimRight(result.Preview[name], "\n"))
	}

	if result.Diff != "" {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, cliMuted.Render("Changes to the existing configuration:"))
		_, _ = fmt.Fprintln(out, renderDiff(result.Diff))
	}

	for _, w := range result.Warnings {
		_, _ = fmt.Fprintln(out, cliWarn.Render("Warning: "+w))
	}

	if len(result.Packages) > 0 {
		_, _ = fmt.Fprintf(out, "\nWould install: %s\n",
			cliMuted.Render(strings.Join(result.Packages, " ")))
	}
}

// renderDiff colorizes unified diff lines.
func renderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = cliSuccess.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = cliError.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = cliPrimary.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
