// Package project inspects the target JavaScript project: its package
// manifest, framework dependencies, any pre-existing lint
// configuration, and the runtime environment a setup run needs.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidRoot indicates the given project root path is invalid or inaccessible.
	ErrInvalidRoot = errors.New("project: invalid project root path")

	// ErrManifestMissing indicates the project has no package.json.
	ErrManifestMissing = errors.New("project: package.json not found")

	// ErrManifestUnreadable indicates package.json exists but cannot be read or parsed.
	ErrManifestUnreadable = errors.New("project: package.json unreadable")

	// ErrNodeMissing indicates no node runtime was found on PATH.
	ErrNodeMissing = errors.New("project: node runtime not found")

	// ErrNodeTooOld indicates the node runtime is below the supported version.
	ErrNodeTooOld = errors.New("project: node runtime below supported version")

	// ErrNotGitRepository indicates the project root has no .git directory.
	ErrNotGitRepository = errors.New("project: not a git repository")
)
