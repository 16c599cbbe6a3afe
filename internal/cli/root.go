package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/lintwiz/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "lintwiz",
	Short: "lintwiz: lint and format setup wizard for JavaScript projects",
	Long: `lintwiz provisions ESLint, Prettier, and optional Husky pre-commit
hooks for a JavaScript or TypeScript project.

It asks a handful of questions (or takes flags), derives the matching
dependency set and configuration documents for your framework, merges
any configuration the project already has, and writes the result.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("lintwiz %s\n", version.GetVersion()))
}
