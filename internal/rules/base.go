package rules

import (
	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// baseStep builds the fresh configuration every project type starts
// from. The strictness rules land here, before the framework step, so
// a framework rule that sets the same key wins.
func baseStep(opts models.SetupOptions) func(*merge.Document) *merge.Document {
	return func(*merge.Document) *merge.Document {
		doc := merge.NewMap()
		doc.SetBool("root", true)

		env := doc.EnsureMap("env")
		env.SetBool("browser", true)
		env.SetBool("es2021", true)
		env.SetBool("node", true)

		doc.AppendStrings("extends", "eslint:recommended")

		po := doc.EnsureMap("parserOptions")
		po.SetInt("ecmaVersion", 2021)
		po.SetString("sourceType", "module")

		rules := doc.EnsureMap("rules")
		if opts.UseStrict {
			rules.SetString("no-console", "error")
			rules.SetString("no-debugger", "error")
			rules.SetString("no-unused-vars", "error")
		} else {
			rules.SetString("no-console", "warn")
		}
		return doc
	}
}
