package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/lintwiz/pkg/version"
)

// CLI output styles shared by every command.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4B32C3", Dark: "#8B80F9"})
	cliBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(cliBorder).
	Padding(0, 2)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }
func symInfo() string    { return cliMuted.Render("○") }

// kvPair is one aligned label/value line in a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines lays pairs out with aligned, muted labels.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		label := fmt.Sprintf("%-*s", width, p.key)
		lines = append(lines, fmt.Sprintf("%s  %s", cliMuted.Render(label), p.value))
	}
	return strings.Join(lines, "\n")
}

// renderCard draws a bordered box with a title line and optional
// detail blocks.
func renderCard(title string, details ...string) string {
	body := title
	if len(details) > 0 {
		body += "\n\n" + strings.Join(details, "\n")
	}
	return cardStyle.Render(body)
}

// renderSuccessCard draws a card with a success-styled title.
func renderSuccessCard(title string, details ...string) string {
	return renderCard(symSuccess()+" "+cliSuccess.Render(title), details...)
}

// printBanner writes the one-line tool header shown before the wizard.
func printBanner(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s %s\n\n",
		cliPrimary.Render("lintwiz"),
		cliMuted.Render(version.GetVersion()))
}
