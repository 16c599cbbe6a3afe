package rules

import "github.com/modu-ai/lintwiz/internal/merge"

// prettierStep hands format enforcement to the Prettier plugin. The
// shareable config it extends also disables every stylistic ESLint
// rule that would fight the formatter.
func prettierStep(doc *merge.Document) *merge.Document {
	out := doc.Clone()
	out.AppendStrings("extends", "plugin:prettier/recommended")
	out.EnsureMap("rules").SetString("prettier/prettier", "error")
	return out
}

// PrettierConfig returns the formatter settings written to
// .prettierrc.json when Prettier is enabled.
func PrettierConfig() *merge.Document {
	doc := merge.NewMap()
	doc.SetBool("semi", true)
	doc.SetBool("singleQuote", true)
	doc.SetInt("tabWidth", 2)
	doc.SetString("trailingComma", "es5")
	doc.SetInt("printWidth", 100)
	doc.SetString("arrowParens", "always")
	doc.SetString("endOfLine", "lf")
	return doc
}
