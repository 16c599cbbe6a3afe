package cli

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the post-setup usage guide",
	Long: `Show the usage guide that explains the generated files and the
npm scripts wired into package.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printGuide(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

// printGuide renders the usage guide as styled terminal markdown,
// falling back to the raw text when rendering is unavailable.
func printGuide(w io.Writer) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		_, _ = fmt.Fprintln(w, guideMarkdown)
		return
	}
	rendered, err := renderer.Render(guideMarkdown)
	if err != nil {
		_, _ = fmt.Fprintln(w, guideMarkdown)
		return
	}
	_, _ = fmt.Fprint(w, rendered)
}
