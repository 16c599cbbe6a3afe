// Package cli provides the Cobra command tree and dependency wiring
// for the lintwiz CLI. This file defines the Dependencies struct, the
// composition root where concrete types are instantiated; commands
// reach everything else through interfaces.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/modu-ai/lintwiz/internal/config"
	"github.com/modu-ai/lintwiz/internal/core/project"
	"github.com/modu-ai/lintwiz/internal/ui"
)

// Dependencies holds the domain services used by CLI commands.
type Dependencies struct {
	Loader   *config.Loader
	Config   *config.Config
	Detector project.Detector
	Env      *project.Environment
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by
// InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires the domain dependencies. It is
// called once during application startup. The tool configuration
// needs a project root and is loaded lazily via EnsureConfig.
func InitDependencies() {
	// Command output stays clean; diagnostics go through the result,
	// not the log.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Loader:   config.NewLoader(),
		Detector: project.NewDetector(logger),
		Env:      project.NewEnvironment(logger),
		Headless: ui.NewHeadlessManager(),
		Logger:   logger,
	}
}

// GetDeps returns the current Dependencies instance, nil before
// InitDependencies.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureConfig lazily loads the per-project tool configuration.
// Subsequent calls are no-ops once a config is loaded.
func (d *Dependencies) EnsureConfig(projectRoot string) error {
	if d.Config != nil {
		return nil
	}
	cfg, err := d.Loader.Load(projectRoot)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	d.Config = cfg
	return nil
}
