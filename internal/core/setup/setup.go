// Package setup sequences one provisioning run: environment checks,
// existing-config detection, dependency resolution, installation, and
// artifact persistence. Configuration generation itself is pure; this
// package owns the ordering and the degradation rules around it.
package setup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/modu-ai/lintwiz/internal/catalog"
	"github.com/modu-ai/lintwiz/internal/core/project"
	"github.com/modu-ai/lintwiz/internal/defs"
	"github.com/modu-ai/lintwiz/internal/husky"
	"github.com/modu-ai/lintwiz/internal/ignore"
	"github.com/modu-ai/lintwiz/internal/installer"
	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/internal/rules"
	"github.com/modu-ai/lintwiz/internal/ui"
	"github.com/modu-ai/lintwiz/internal/writer"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// Options configures one setup run.
type Options struct {
	// ProjectRoot is the validated project directory.
	ProjectRoot string

	// Setup carries the generation choices collected from the wizard,
	// flags, or configuration defaults.
	Setup models.SetupOptions

	// PackageManager runs the installation step. Empty falls back to
	// npm.
	PackageManager models.PackageManager

	// MergeExisting folds a parseable pre-existing lint config into
	// the generated document instead of replacing it.
	MergeExisting bool

	// SkipInstall leaves dependency installation to the user.
	SkipInstall bool

	// DryRun renders every artifact into the result instead of
	// touching the filesystem, and skips installation.
	DryRun bool
}

// Result reports what a setup run did.
type Result struct {
	// Options are the effective choices after auto-detection
	// overrides.
	Options models.SetupOptions

	// Packages is the resolved dependency list, in catalog order.
	Packages []string

	// WrittenFiles lists artifacts in write order, relative to the
	// project root. In dry-run mode these are the files that would
	// have been written.
	WrittenFiles []string

	// Preview holds dry-run artifact contents keyed by filename.
	Preview map[string]string

	// Installed and FailedInstall report the installer outcome.
	Installed     []string
	FailedInstall []string

	// InstallTier is the fallback level the installer settled on.
	InstallTier installer.Tier

	// Diff previews what changed relative to a pre-existing lint
	// config. Empty when no mergeable config was found.
	Diff string

	// TsconfigCreated reports whether a starter tsconfig.json was
	// added for an auto-detected TypeScript setup.
	TsconfigCreated bool

	// Warnings collects non-fatal issues encountered along the way.
	Warnings []string
}

// Preflighter verifies environment preconditions before any mutation.
type Preflighter interface {
	Preflight(ctx context.Context, root string, opts models.SetupOptions) error
}

// Runner executes the provisioning pipeline for one project.
type Runner interface {
	Run(ctx context.Context, opts Options) (*Result, error)
}

// installerFactory builds the installer for a run; swapped in tests.
type installerFactory func(pm models.PackageManager, dir string, logger *slog.Logger, dryRun bool) (installer.Installer, error)

type setupRunner struct {
	detector     project.Detector
	preflight    Preflighter
	progress     ui.Progress
	newInstaller installerFactory
	logger       *slog.Logger
}

// NewRunner creates a Runner. A nil progress reports nothing; a nil
// logger discards log output.
func NewRunner(detector project.Detector, preflight Preflighter, progress ui.Progress, logger *slog.Logger) Runner {
	if progress == nil {
		progress = noopProgress{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &setupRunner{
		detector:     detector,
		preflight:    preflight,
		progress:     progress,
		newInstaller: installer.New,
		logger:       logger,
	}
}

// Run executes the pipeline. Environment and write failures are
// fatal; install failures and an unmergeable existing config degrade
// into Result.Warnings.
func (r *setupRunner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := opts.ProjectRoot
	pm := opts.PackageManager
	if pm == "" {
		pm = models.PackageManagerNpm
	}

	result := &Result{Options: opts.Setup}
	r.logger.Info("setup starting",
		"root", root,
		"type", opts.Setup.ProjectType,
		"package_manager", pm,
		"dry_run", opts.DryRun)

	installing := !opts.SkipInstall && !opts.DryRun
	total := 5
	if installing {
		total++
	}
	bar := r.progress.Start("Setting up", total)
	defer bar.Done()

	// Step 1: verify environment preconditions before any mutation.
	bar.SetTitle("Checking environment")
	if err := r.preflight.Preflight(ctx, root, opts.Setup); err != nil {
		return nil, fmt.Errorf("preflight: %w", err)
	}
	bar.Increment(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 2: read any pre-existing lint config, once. The rendered
	// bytes are kept for the diff preview because the snapshot itself
	// feeds the merge pipeline.
	bar.SetTitle("Reading existing configuration")
	var snapshot *merge.Document
	var existingOut []byte
	existing := r.detector.FindExistingConfig(root)
	switch {
	case existing == nil:
	case existing.Snapshot == nil:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("existing %s left untouched: %s", existing.Filename, existing.Reason))
		r.logger.Warn("existing config not mergeable",
			"file", existing.Filename, "reason", existing.Reason)
	default:
		out, err := merge.EncodeJSON(existing.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("render existing config: %w", err)
		}
		existingOut = out
		if opts.MergeExisting {
			snapshot = existing.Snapshot
			r.logger.Info("merging existing config", "file", existing.Filename)
		} else {
			r.logger.Info("replacing existing config", "file", existing.Filename)
		}
	}

	// Svelte language answers yield to what is actually on disk.
	if opts.Setup.ProjectType == models.ProjectTypeSvelte {
		detected := r.detector.DetectTypeScript(root)
		if detected != opts.Setup.UseTypeScript {
			opts.Setup = opts.Setup.WithTypeScript(detected)
			result.Options = opts.Setup
			r.logger.Info("typescript answer overridden by detection", "typescript", detected)
		}
	}
	bar.Increment(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: resolve the dependency set, once, before anything runs.
	bar.SetTitle("Resolving dependencies")
	specs, err := catalog.Resolve(opts.Setup)
	if err != nil {
		return nil, fmt.Errorf("resolve dependencies: %w", err)
	}
	result.Packages = catalog.Names(specs)
	bar.Increment(1)

	// Step 4: install. Per-package failures degrade into warnings.
	if installing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bar.SetTitle("Installing packages")
		inst, err := r.newInstaller(pm, root, r.logger, false)
		if err != nil {
			return nil, fmt.Errorf("create installer: %w", err)
		}
		ires, err := inst.Install(ctx, specs)
		if err != nil {
			return nil, fmt.Errorf("install packages: %w", err)
		}
		result.Installed = ires.Installed
		result.FailedInstall = ires.Failed
		result.InstallTier = ires.Tier
		for _, name := range ires.Failed {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("package %s could not be installed; add it manually", name))
		}
		bar.Increment(1)
	} else {
		r.logger.Info("installation skipped",
			"skip_install", opts.SkipInstall, "dry_run", opts.DryRun)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 5: generate the documents. Pure, independent of install
	// outcome.
	bar.SetTitle("Generating configuration")
	lintDoc, err := rules.Apply(opts.Setup, snapshot)
	if err != nil {
		return nil, fmt.Errorf("apply rules: %w", err)
	}
	lintOut, err := merge.EncodeJSON(lintDoc)
	if err != nil {
		return nil, fmt.Errorf("render lint config: %w", err)
	}
	if existingOut != nil {
		result.Diff = merge.UnifiedDiff(defs.EslintrcJSON, existingOut, lintOut)
	}

	var prettierDoc *merge.Document
	if opts.Setup.UsePrettier {
		prettierDoc = rules.PrettierConfig()
	}
	lintIgnore := ignore.Lint(opts.Setup.ProjectType)
	bar.Increment(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 6: persist, or render previews in dry-run mode.
	w := writer.New(root, r.logger)
	needTsconfig := opts.Setup.ProjectType == models.ProjectTypeSvelte && opts.Setup.UseTypeScript

	if opts.DryRun {
		bar.SetTitle("Previewing files")
		if err := r.renderPreview(result, w, opts.Setup, lintOut, prettierDoc, lintIgnore, needTsconfig); err != nil {
			return nil, err
		}
		bar.Increment(1)
		r.logger.Info("dry run complete", "files", len(result.WrittenFiles))
		return result, nil
	}

	bar.SetTitle("Writing files")
	if err := r.writeArtifacts(result, w, opts.Setup, root, lintDoc, prettierDoc, lintIgnore, needTsconfig); err != nil {
		return nil, err
	}
	bar.Increment(1)

	r.logger.Info("setup complete",
		"files", len(result.WrittenFiles),
		"installed", len(result.Installed),
		"warnings", len(result.Warnings))
	return result, nil
}

// writeArtifacts persists every artifact. Any failure is fatal.
func (r *setupRunner) writeArtifacts(result *Result, w *writer.Writer, opts models.SetupOptions, root string, lintDoc, prettierDoc *merge.Document, lintIgnore []string, needTsconfig bool) error {
	if err := w.WriteDocument(defs.EslintrcJSON, lintDoc); err != nil {
		return fmt.Errorf("write lint config: %w", err)
	}
	result.WrittenFiles = append(result.WrittenFiles, defs.EslintrcJSON)

	if err := w.WriteIgnore(defs.EslintIgnore, lintIgnore); err != nil {
		return fmt.Errorf("write lint ignore: %w", err)
	}
	result.WrittenFiles = append(result.WrittenFiles, defs.EslintIgnore)

	if prettierDoc != nil {
		if err := w.WriteDocument(defs.PrettierrcJSON, prettierDoc); err != nil {
			return fmt.Errorf("write formatter config: %w", err)
		}
		result.WrittenFiles = append(result.WrittenFiles, defs.PrettierrcJSON)

		if err := w.WriteIgnore(defs.PrettierIgnore, ignore.Prettier()); err != nil {
			return fmt.Errorf("write formatter ignore: %w", err)
		}
		result.WrittenFiles = append(result.WrittenFiles, defs.PrettierIgnore)
	}

	if err := w.UpdateManifest(opts); err != nil {
		return fmt.Errorf("update package.json: %w", err)
	}
	result.WrittenFiles = append(result.WrittenFiles, defs.PackageJSON)

	if opts.UseHusky {
		if err := husky.New(root, r.logger).WritePreCommit(); err != nil {
			return fmt.Errorf("write pre-commit hook: %w", err)
		}
		result.WrittenFiles = append(result.WrittenFiles,
			filepath.Join(defs.HuskyDir, defs.PreCommitHook))
	}

	if needTsconfig {
		created, err := w.WriteTsconfig()
		if err != nil {
			return fmt.Errorf("write tsconfig: %w", err)
		}
		if created {
			result.TsconfigCreated = true
			result.WrittenFiles = append(result.WrittenFiles, defs.TsconfigJSON)
		}
	}
	return nil
}

// renderPreview fills Result.Preview with the exact artifact contents
// a real run would write.
func (r *setupRunner) renderPreview(result *Result, w *writer.Writer, opts models.SetupOptions, lintOut []byte, prettierDoc *merge.Document, lintIgnore []string, needTsconfig bool) error {
	result.Preview = make(map[string]string)
	add := func(name string, content []byte) {
		result.Preview[name] = string(content)
		result.WrittenFiles = append(result.WrittenFiles, name)
	}

	add(defs.EslintrcJSON, lintOut)
	add(defs.EslintIgnore, writer.RenderIgnore(lintIgnore))

	if prettierDoc != nil {
		out, err := merge.EncodeJSON(prettierDoc)
		if err != nil {
			return fmt.Errorf("render formatter config: %w", err)
		}
		add(defs.PrettierrcJSON, out)
		add(defs.PrettierIgnore, writer.RenderIgnore(ignore.Prettier()))
	}

	manifest, err := w.RenderManifest(opts)
	if err != nil {
		return err
	}
	add(defs.PackageJSON, manifest)

	if opts.UseHusky {
		add(filepath.Join(defs.HuskyDir, defs.PreCommitHook), []byte(husky.Script()))
	}

	if needTsconfig && !w.TsconfigExists() {
		out, err := merge.EncodeJSON(writer.RenderTsconfig())
		if err != nil {
			return fmt.Errorf("render tsconfig: %w", err)
		}
		add(defs.TsconfigJSON, out)
	}
	return nil
}

// noopProgress satisfies ui.Progress for callers that want none.
type noopProgress struct{}

func (noopProgress) Start(string, int) ui.ProgressBar { return noopBar{} }
func (noopProgress) Spinner(string) ui.Spinner        { return noopBar{} }

type noopBar struct{}

func (noopBar) Increment(int)   {}
func (noopBar) SetTitle(string) {}
func (noopBar) Done()           {}
func (noopBar) Stop()           {}
