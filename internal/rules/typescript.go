package rules

import (
	"slices"

	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// typescriptStep switches the document-wide parser to the TypeScript
// one and replaces the stock unused-vars rule with the type-aware
// variant. Runs after the framework step, so it wins any parser
// conflict except the per-file override svelte installs.
func typescriptStep(opts models.SetupOptions) func(*merge.Document) *merge.Document {
	severity := "warn"
	if opts.UseStrict {
		severity = "error"
	}

	return func(doc *merge.Document) *merge.Document {
		out := doc.Clone()
		out.SetString("parser", "@typescript-eslint/parser")
		out.AppendStrings("plugins", "@typescript-eslint")
		out.AppendStrings("extends", "plugin:@typescript-eslint/recommended")

		rules := out.EnsureMap("rules")
		rules.SetString("no-unused-vars", "off")
		rules.SetString("@typescript-eslint/no-unused-vars", severity)

		nestTypeScriptParser(out)
		return out
	}
}

// nestTypeScriptParser threads the TypeScript parser into any
// *.svelte overrides entry, where the component parser delegates
// script blocks through parserOptions.parser.
func nestTypeScriptParser(doc *merge.Document) {
	overrides, ok := doc.Get("overrides")
	if !ok || overrides.Kind() != merge.KindSequence {
		return
	}
	for _, entry := range overrides.Items() {
		if entry.Kind() != merge.KindMap {
			continue
		}
		if !slices.Contains(entry.StringSlice("files"), "*.svelte") {
			continue
		}
		entry.EnsureMap("parserOptions").SetString("parser", "@typescript-eslint/parser")
	}
}
