package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/modu-ai/lintwiz/pkg/models"
)

// minNodeVersion is the oldest node runtime the generated toolchain
// supports.
const minNodeVersion = "18.0.0"

// Check is one environment probe result for doctor-style reporting.
type Check struct {
	Name   string
	Detail string
	Err    error
}

// Ok reports whether the probe passed.
func (c Check) Ok() bool {
	return c.Err == nil
}

// Environment probes the runtime prerequisites of a setup run.
type Environment struct {
	logger *slog.Logger
}

// NewEnvironment creates an Environment.
func NewEnvironment(logger *slog.Logger) *Environment {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Environment{logger: logger}
}

// Preflight verifies every precondition the chosen options need and
// returns the first failure. It runs before any mutation.
func (e *Environment) Preflight(ctx context.Context, root string, opts models.SetupOptions) error {
	for _, c := range e.Checks(ctx, root, opts.UseHusky) {
		if c.Err != nil {
			return c.Err
		}
	}
	return nil
}

// Checks runs every environment probe and returns all results,
// passing or failing. The git probe only counts as a failure when the
// setup needs hooks.
func (e *Environment) Checks(ctx context.Context, root string, needGit bool) []Check {
	checks := []Check{
		e.checkNode(ctx),
		e.checkManifest(root),
	}
	if needGit {
		checks = append(checks, e.CheckGit(root))
	}
	return checks
}

// checkNode probes the node runtime version.
func (e *Environment) checkNode(ctx context.Context) Check {
	version, err := e.NodeVersion(ctx)
	if err != nil {
		return Check{Name: "node runtime", Err: err}
	}

	c := Check{Name: "node runtime", Detail: version}
	if compareSemver(version, minNodeVersion) < 0 {
		c.Err = fmt.Errorf("%w: %s (need >= %s)", ErrNodeTooOld, version, minNodeVersion)
	}
	return c
}

// NodeVersion runs `node --version` and returns the reported version.
func (e *Environment) NodeVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNodeMissing, err)
	}

	version := strings.TrimSpace(string(out))
	e.logger.Debug("node version probed", "version", version)
	return version, nil
}

// checkManifest verifies the package manifest loads.
func (e *Environment) checkManifest(root string) Check {
	m, err := LoadManifest(root)
	if err != nil {
		return Check{Name: "package manifest", Err: err}
	}

	detail := m.Name
	if detail == "" {
		detail = "unnamed package"
	}
	return Check{Name: "package manifest", Detail: detail}
}

// CheckGit verifies the root is a git repository, the precondition
// for installing pre-commit hooks.
func (e *Environment) CheckGit(root string) Check {
	info, err := os.Stat(filepath.Join(root, ".git"))
	if err != nil || !info.IsDir() {
		return Check{Name: "git repository", Err: fmt.Errorf("%w: %s", ErrNotGitRepository, root)}
	}
	return Check{Name: "git repository", Detail: ".git"}
}

// DetectPackageManager picks the package manager from the lockfile
// present in the root, defaulting to npm.
func (e *Environment) DetectPackageManager(root string) models.PackageManager {
	if _, err := os.Stat(filepath.Join(root, "pnpm-lock.yaml")); err == nil {
		return models.PackageManagerPnpm
	}
	if _, err := os.Stat(filepath.Join(root, "yarn.lock")); err == nil {
		return models.PackageManagerYarn
	}
	return models.PackageManagerNpm
}

// compareSemver compares two semantic version strings, tolerating a
// leading "v". Returns -1 if a < b, 0 if equal, 1 if a > b.
func compareSemver(a, b string) int {
	a = strings.TrimPrefix(a, "v")
	b = strings.TrimPrefix(b, "v")

	aParts := parseSemverParts(a)
	bParts := parseSemverParts(b)

	for i := range 3 {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseSemverParts extracts [major, minor, patch] from a version string.
func parseSemverParts(v string) [3]int {
	var parts [3]int
	segments := strings.SplitN(v, ".", 3)
	for i, seg := range segments {
		if i >= 3 {
			break
		}
		// Strip any pre-release suffix (e.g., "1-nightly").
		if idx := strings.IndexAny(seg, "-+"); idx >= 0 {
			seg = seg[:idx]
		}
		n, err := strconv.Atoi(seg)
		if err == nil {
			parts[i] = n
		}
	}
	return parts
}
