package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/lintwiz/internal/defs"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// Loader reads tool preferences from .lintwiz.yaml.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	loadedSections map[string]bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads .lintwiz.yaml from the project root and returns the merged
// Config: compiled defaults, then file values, then LINTWIZ_*
// environment overrides. A missing file is normal; an unreadable or
// malformed file logs a warning and falls back to defaults. The merged
// result is validated before being returned.
func (l *Loader) Load(projectRoot string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	path := filepath.Join(filepath.Clean(projectRoot), defs.LintwizYAML)
	l.loadFile(path, cfg)

	applyEnvOverrides(cfg)

	// An empty package manager stays empty: it means "detect from the
	// lockfile", which only the caller can do.
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which sections
// were present in the preference file.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}

// loadFile overlays file values onto cfg. A missing file is silent;
// read or parse failures log a warning and leave the defaults alone.
func (l *Loader) loadFile(path string, cfg *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		slog.Warn("tool preferences unreadable, using defaults", "path", path, "error", err)
		return
	}

	// Probe the top-level keys first so section tracking and unknown-key
	// warnings survive even though struct decoding ignores extras.
	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		slog.Warn("tool preferences malformed, using defaults",
			"path", path, "error", fmt.Errorf("parse %s: %w", defs.LintwizYAML, ErrInvalidYAML))
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		*cfg = *NewDefaultConfig()
		slog.Warn("tool preferences malformed, using defaults",
			"path", path, "error", fmt.Errorf("parse %s: %w", defs.LintwizYAML, ErrInvalidYAML))
		return
	}

	for name := range sections {
		if !IsValidSectionName(name) {
			slog.Warn("unknown section in tool preferences", "path", path, "section", name)
			continue
		}
		l.loadedSections[name] = true
	}
}

// applyEnvOverrides applies LINTWIZ_* environment variables on top of
// file values.
func applyEnvOverrides(cfg *Config) {
	if pm := os.Getenv("LINTWIZ_PACKAGE_MANAGER"); pm != "" {
		cfg.Install.PackageManager = models.PackageManager(pm)
	}
	if skip := os.Getenv("LINTWIZ_SKIP_INSTALL"); skip == "true" || skip == "1" {
		cfg.Install.Skip = true
	}
	if headless := os.Getenv("LINTWIZ_HEADLESS"); headless == "true" || headless == "1" {
		cfg.UI.Headless = true
	}
	if noColor := os.Getenv("LINTWIZ_NO_COLOR"); noColor == "true" || noColor == "1" {
		cfg.UI.NoColor = true
	}
}
