// Package ui renders setup progress in the terminal. Animated spinner
// and progress-bar components run on bubbletea when a TTY is attached;
// headless fallbacks write plain log lines for pipes and CI.
package ui

// Progress creates progress displays appropriate for the terminal.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar

	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar tracks completion of a known number of steps.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner shows activity with no known end.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// Theme carries the palette shared by the progress components. The
// colors mirror the tools being configured.
type Theme struct {
	Colors  ColorSet
	NoColor bool
}

// ColorSet holds the two gradient anchors.
type ColorSet struct {
	Primary   string
	Secondary string
}

// DefaultTheme returns the standard palette: ESLint indigo fading into
// Prettier gold.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: ColorSet{
			Primary:   "#4B32C3",
			Secondary: "#F7B93E",
		},
	}
}
