// Package husky writes the pre-commit hook assets for projects that
// opted into staged-file checks. The companion lint-staged rule map
// lives in package.json and is written by the writer package.
package husky

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/modu-ai/lintwiz/internal/defs"
)

// preCommitScript runs the staged-file checks before the commit
// completes. The shebang keeps the hook runnable under a plain
// core.hooksPath setup as well.
const preCommitScript = "#!/usr/bin/env sh\nnpx lint-staged\n"

// Script returns the pre-commit hook content, for previews.
func Script() string {
	return preCommitScript
}

// Hooks deploys git hook scripts under one project root.
type Hooks struct {
	root   string
	logger *slog.Logger
}

// New creates a hook deployer rooted at the project directory.
func New(root string, logger *slog.Logger) *Hooks {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Hooks{root: root, logger: logger}
}

// WritePreCommit creates .husky/pre-commit with the executable bit,
// replacing any previous hook of the same name.
func (h *Hooks) WritePreCommit() error {
	dir := filepath.Join(h.root, defs.HuskyDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("husky: create %q: %w", dir, err)
	}

	path := filepath.Join(dir, defs.PreCommitHook)
	if err := os.WriteFile(path, []byte(preCommitScript), 0o755); err != nil {
		return fmt.Errorf("husky: write %q: %w", path, err)
	}
	h.logger.Debug("pre-commit hook written", "file", path)
	return nil
}
