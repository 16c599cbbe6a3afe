package main

import (
	"log/slog"
	"os"

	"github.com/modu-ai/lintwiz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Commands print their own user-facing output; anything that
		// escapes to here is a real failure worth a timestamped line.
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("command failed", "error", err)
		os.Exit(1)
	}
}
