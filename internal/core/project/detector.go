package project

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modu-ai/lintwiz/internal/defs"
	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// ExistingConfig describes a pre-existing lint configuration file
// found in the project root.
type ExistingConfig struct {
	// Filename is the candidate that matched, relative to the root.
	Filename string

	// Snapshot is the parsed document, nil when the file exists but
	// cannot be merged structurally.
	Snapshot *merge.Document

	// Reason explains a nil Snapshot for a file that exists.
	Reason string
}

// Detector identifies project characteristics from the filesystem.
type Detector interface {
	// SuggestProjectType inspects manifest dependencies and proposes a
	// project type for the wizard's default answer. The second return
	// is false when nothing recognizable was found.
	SuggestProjectType(root string) (models.ProjectType, bool)

	// DetectTypeScript reports whether the project carries TypeScript
	// sources. Svelte setups call this to override the prompted
	// language answer.
	DetectTypeScript(root string) bool

	// FindExistingConfig walks the candidate filename list in order
	// and returns the first match, or nil when the project has no lint
	// configuration yet.
	FindExistingConfig(root string) *ExistingConfig
}

// projectDetector is the concrete implementation of Detector.
type projectDetector struct {
	logger *slog.Logger
}

// NewDetector creates a Detector.
func NewDetector(logger *slog.Logger) Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectDetector{logger: logger}
}

// typeHints maps manifest dependencies to project types. Order is
// precedence: a Next.js app also depends on react, so next must be
// probed first.
var typeHints = []struct {
	dependency  string
	projectType models.ProjectType
}{
	{"next", models.ProjectTypeNextJS},
	{"@angular/core", models.ProjectTypeAngular},
	{"vue", models.ProjectTypeVue},
	{"svelte", models.ProjectTypeSvelte},
	{"react", models.ProjectTypeReact},
	{"express", models.ProjectTypeNodeJS},
	{"@nestjs/core", models.ProjectTypeNodeJS},
	{"fastify", models.ProjectTypeNodeJS},
}

// SuggestProjectType inspects manifest dependencies for a known
// framework and proposes the matching type.
func (d *projectDetector) SuggestProjectType(root string) (models.ProjectType, bool) {
	manifest, err := LoadManifest(root)
	if err != nil {
		d.logger.Debug("no manifest for type suggestion", "root", root, "error", err)
		return "", false
	}

	for _, hint := range typeHints {
		if manifest.HasDependency(hint.dependency) {
			d.logger.Debug("project type suggested",
				"dependency", hint.dependency,
				"type", hint.projectType)
			return hint.projectType, true
		}
	}
	return "", false
}

// skipDirs lists directories excluded from filesystem walks.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"out":          true,
	".next":        true,
	".svelte-kit":  true,
	".angular":     true,
}

// typeScriptMarkers are filename suffixes whose presence means the
// project uses TypeScript: declaration files, TypeScript sources, and
// Svelte components (which carry typed script blocks).
var typeScriptMarkers = []string{".d.ts", ".ts", ".svelte"}

// DetectTypeScript walks the project tree until it sees a TypeScript
// marker file.
func (d *projectDetector) DetectTypeScript(root string) bool {
	root = filepath.Clean(root)
	found := false

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if path == root {
			return nil
		}
		if entry.IsDir() {
			name := entry.Name()
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		for _, marker := range typeScriptMarkers {
			if strings.HasSuffix(entry.Name(), marker) {
				d.logger.Debug("typescript marker found", "path", path)
				found = true
				return filepath.SkipAll
			}
		}
		return nil
	})
	return found
}

// FindExistingConfig returns the first candidate configuration file
// present in the root. Script-based configs and files that fail to
// parse yield a nil Snapshot with the reason recorded; the caller
// surfaces a warning and proceeds without merging.
func (d *projectDetector) FindExistingConfig(root string) *ExistingConfig {
	for _, name := range defs.EslintConfigCandidates {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		cfg := &ExistingConfig{Filename: name}
		switch filepath.Ext(name) {
		case ".js", ".cjs":
			cfg.Reason = "script-based configuration cannot be merged"
			return cfg
		}

		data, err := os.ReadFile(path)
		if err != nil {
			cfg.Reason = "unreadable: " + err.Error()
			return cfg
		}

		doc, err := decodeConfig(name, data)
		if err != nil {
			d.logger.Debug("existing config unparseable", "file", name, "error", err)
			cfg.Reason = "unparseable: " + err.Error()
			return cfg
		}
		if doc.Kind() != merge.KindMap {
			cfg.Reason = "top-level value is not an object"
			return cfg
		}

		cfg.Snapshot = doc
		return cfg
	}
	return nil
}

// decodeConfig parses candidate content by extension. Extensionless
// .eslintrc files are JSON by convention.
func decodeConfig(name string, data []byte) (*merge.Document, error) {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return merge.DecodeYAML(data)
	default:
		doc, err := merge.DecodeJSON(data)
		if err != nil && !strings.HasSuffix(name, ".json") {
			// Legacy .eslintrc may be YAML despite the convention.
			if ydoc, yerr := merge.DecodeYAML(data); yerr == nil {
				return ydoc, nil
			}
		}
		return doc, err
	}
}
