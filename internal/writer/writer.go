// Package writer persists the generated artifacts into the project
// root: configuration documents, ignore files, package manifest
// updates, and the TypeScript project file.
package writer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modu-ai/lintwiz/internal/defs"
	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// Writer persists artifacts under one project root. I/O failures are
// fatal to the run and reported as errors, never swallowed.
type Writer struct {
	root   string
	logger *slog.Logger
}

// New creates a Writer rooted at the project directory.
func New(root string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{root: root, logger: logger}
}

// WriteDocument persists the document as indented JSON under name.
func (w *Writer) WriteDocument(name string, doc *merge.Document) error {
	out, err := merge.EncodeJSON(doc)
	if err != nil {
		return err
	}
	return w.writeFile(name, out)
}

// WriteIgnore persists the patterns one per line under name.
func (w *Writer) WriteIgnore(name string, patterns []string) error {
	return w.writeFile(name, RenderIgnore(patterns))
}

// RenderIgnore lays the patterns out one per line with a trailing
// newline.
func RenderIgnore(patterns []string) []byte {
	return []byte(strings.Join(patterns, "\n") + "\n")
}

// UpdateManifest rewrites package.json with the lint scripts, the
// format scripts when Prettier is enabled, and the lint-staged map
// when hooks are enabled. Existing keys keep their positions; new
// keys append.
func (w *Writer) UpdateManifest(opts models.SetupOptions) error {
	out, err := w.RenderManifest(opts)
	if err != nil {
		return err
	}
	return w.writeFile(defs.PackageJSON, out)
}

// RenderManifest produces the updated package.json content without
// writing it back.
func (w *Writer) RenderManifest(opts models.SetupOptions) ([]byte, error) {
	path := filepath.Join(w.root, defs.PackageJSON)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("writer: read %q: %w", path, err)
	}
	doc, err := merge.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("writer: parse %q: %w", path, err)
	}

	scripts := doc.EnsureMap("scripts")
	scripts.SetString("lint", "eslint .")
	scripts.SetString("lint:fix", "eslint . --fix")
	if opts.UsePrettier {
		scripts.SetString("format", "prettier --write .")
		scripts.SetString("check", "prettier --check .")
	}

	if opts.UseHusky {
		doc.Set("lint-staged", lintStagedMap(opts))
	}

	return merge.EncodeJSON(doc)
}

// lintStagedMap builds the staged-file rule map the pre-commit hook
// runs. Formatting joins in only when Prettier is enabled.
func lintStagedMap(opts models.SetupOptions) *merge.Document {
	commands := []string{"eslint --fix"}
	if opts.UsePrettier {
		commands = append(commands, "prettier --write")
	}

	staged := merge.NewMap()
	staged.Set("*.{js,jsx,ts,tsx,vue,svelte}", merge.Strings(commands...))
	return staged
}

// TsconfigExists reports whether the project already carries a
// tsconfig.json.
func (w *Writer) TsconfigExists() bool {
	_, err := os.Stat(filepath.Join(w.root, defs.TsconfigJSON))
	return err == nil
}

// WriteTsconfig writes a starter tsconfig.json, skipping when the
// project already has one. Returns whether a file was created.
func (w *Writer) WriteTsconfig() (bool, error) {
	if w.TsconfigExists() {
		w.logger.Debug("tsconfig.json already present, keeping it")
		return false, nil
	}

	out, err := merge.EncodeJSON(RenderTsconfig())
	if err != nil {
		return false, err
	}
	if err := w.writeFile(defs.TsconfigJSON, out); err != nil {
		return false, err
	}
	return true, nil
}

// RenderTsconfig is the starter TypeScript project file for setups
// whose language answer came from auto-detection.
func RenderTsconfig() *merge.Document {
	co := merge.NewMap()
	co.SetString("target", "ES2020")
	co.SetString("module", "ESNext")
	co.SetString("moduleResolution", "bundler")
	co.SetBool("strict", true)
	co.SetBool("esModuleInterop", true)
	co.SetBool("skipLibCheck", true)
	co.SetBool("forceConsistentCasingInFileNames", true)

	doc := merge.NewMap()
	doc.Set("compilerOptions", co)
	doc.AppendStrings("include",
		"src/**/*.d.ts", "src/**/*.ts", "src/**/*.js", "src/**/*.svelte")
	return doc
}

// writeFile persists content under the project root.
func (w *Writer) writeFile(name string, content []byte) error {
	path := filepath.Join(w.root, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writer: write %q: %w", path, err)
	}
	w.logger.Debug("artifact written", "file", name, "bytes", len(content))
	return nil
}
