// Package installer runs the package manager to add the resolved
// development dependencies, degrading through batch and per-package
// fallbacks when the direct install fails.
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"slices"
	"strings"

	"github.com/modu-ai/lintwiz/internal/catalog"
	"github.com/modu-ai/lintwiz/internal/resilience"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// ErrUnknownPackageManager is returned when no install command table
// exists for the requested package manager.
var ErrUnknownPackageManager = errors.New("installer: unknown package manager")

// batchSize is how many packages a batch-tier invocation carries.
const batchSize = 4

// Tier identifies which fallback level completed an install run.
type Tier int

const (
	// TierDirect means the single all-packages invocation succeeded.
	TierDirect Tier = iota
	// TierBatch means the run fell back to fixed-size batches.
	TierBatch
	// TierPerPackage means at least one package needed an individual
	// invocation.
	TierPerPackage
)

// String names the tier for logs.
func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierBatch:
		return "batch"
	case TierPerPackage:
		return "per-package"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Result reports what an install run achieved. A non-empty Failed
// list is degradation, not an error: those packages were logged and
// skipped after all fallbacks.
type Result struct {
	Installed []string
	Failed    []string
	Tier      Tier
}

// Installer adds development dependencies to a project.
type Installer interface {
	// Install adds the packages as devDependencies. Only context
	// cancellation aborts the run; per-package failures end up in
	// Result.Failed.
	Install(ctx context.Context, specs []catalog.Specifier) (*Result, error)
}

// installArgs maps each package manager to its dev-dependency
// install verb.
var installArgs = map[models.PackageManager][]string{
	models.PackageManagerNpm:  {"install", "--save-dev"},
	models.PackageManagerPnpm: {"add", "-D"},
	models.PackageManagerYarn: {"add", "--dev"},
}

// runnerFunc executes one package-manager command.
type runnerFunc func(ctx context.Context, dir, name string, args ...string) error

// packageInstaller is the concrete Installer.
type packageInstaller struct {
	pm     models.PackageManager
	dir    string
	logger *slog.Logger
	policy resilience.Policy
	dryRun bool
	runner runnerFunc
}

// New creates an Installer for the given package manager, running
// commands in dir. With dryRun set, commands are logged instead of
// executed.
func New(pm models.PackageManager, dir string, logger *slog.Logger, dryRun bool) (Installer, error) {
	if _, ok := installArgs[pm]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPackageManager, pm)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &packageInstaller{
		pm:     pm,
		dir:    dir,
		logger: logger,
		policy: resilience.InstallPolicy(),
		dryRun: dryRun,
		runner: execRunner,
	}, nil
}

// Install walks the three tiers: one direct invocation, then batches,
// then individual packages for whatever the batches could not place.
func (p *packageInstaller) Install(ctx context.Context, specs []catalog.Specifier) (*Result, error) {
	names := catalog.Names(specs)
	if len(names) == 0 {
		return &Result{}, nil
	}

	if err := p.run(ctx, names); err == nil {
		return &Result{Installed: names, Tier: TierDirect}, nil
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	} else {
		p.logger.Warn("direct install failed, falling back to batches", "error", err)
	}

	result := &Result{Tier: TierBatch}
	var leftovers []string
	for batch := range slices.Chunk(names, batchSize) {
		if err := p.run(ctx, batch); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Warn("batch install failed", "packages", batch, "error", err)
			leftovers = append(leftovers, batch...)
			continue
		}
		result.Installed = append(result.Installed, batch...)
	}

	if len(leftovers) > 0 {
		result.Tier = TierPerPackage
		for _, name := range leftovers {
			if err := p.run(ctx, []string{name}); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				p.logger.Warn("package skipped after all fallbacks", "package", name, "error", err)
				result.Failed = append(result.Failed, name)
				continue
			}
			result.Installed = append(result.Installed, name)
		}
	}
	return result, nil
}

// run invokes the package manager once for the given packages,
// retrying registry transients.
func (p *packageInstaller) run(ctx context.Context, packages []string) error {
	args := append(slices.Clone(installArgs[p.pm]), packages...)
	if p.dryRun {
		p.logger.Info("dry run: install skipped",
			"command", string(p.pm)+" "+strings.Join(args, " "))
		return nil
	}

	return resilience.Retry(ctx, p.policy, func() error {
		return p.runner(ctx, p.dir, string(p.pm), args...)
	})
}

// execRunner is the real command execution path.
func execRunner(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return resilience.Permanent(fmt.Errorf("installer: %s not found: %w", name, err))
		}
		return fmt.Errorf("installer: %s %s: %w: %s",
			name, strings.Join(args, " "), err, bytes.TrimSpace(out))
	}
	return nil
}
