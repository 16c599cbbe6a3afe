package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectRoot locates the project root by searching for a
// package.json, starting from the working directory and traversing
// upward. Returns the absolute path, or an error when no manifest is
// found in any parent.
//
// Anchoring on the manifest keeps every generated artifact next to
// the dependencies it configures, even when the command runs from a
// subdirectory.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		manifest := filepath.Join(absDir, "package.json")
		if info, err := os.Stat(manifest); err == nil && !info.IsDir() {
			return absDir, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", fmt.Errorf("%w: no package.json in %s or any parent directory", ErrManifestMissing, absDir)
		}
		absDir = parent
	}
}

// FindProjectRootOrCurrent is like FindProjectRoot but falls back to
// the current directory when no manifest exists. Useful for commands
// that diagnose a broken project rather than configure a working one.
func FindProjectRootOrCurrent() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if root, err := FindProjectRoot(); err == nil {
		return root, nil
	}
	return filepath.Abs(dir)
}
