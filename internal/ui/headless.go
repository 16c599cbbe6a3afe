package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether UI components run without terminal
// animation. Detection order: explicit override, LINTWIZ_HEADLESS
// environment variable, then the TTY state of os.Stdin.
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager using automatic
// detection.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when the UI should operate in headless mode.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	if v := os.Getenv("LINTWIZ_HEADLESS"); v == "true" || v == "1" {
		return true
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic
// detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
