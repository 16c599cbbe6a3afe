package rules

import (
	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/pkg/models"
)

// frameworkRules maps each project type to its augmentation. Each
// function mutates the document it is handed; the step wrapper clones
// first so the pipeline stays pure.
var frameworkRules = map[models.ProjectType]func(*merge.Document){
	models.ProjectTypeNextJS:  nextjsRules,
	models.ProjectTypeReact:   reactRules,
	models.ProjectTypeNodeJS:  nodejsRules,
	models.ProjectTypeAngular: angularRules,
	models.ProjectTypeVue:     vueRules,
	models.ProjectTypeSvelte:  svelteRules,
}

func frameworkStep(projectType models.ProjectType) func(*merge.Document) *merge.Document {
	apply := frameworkRules[projectType]
	return func(doc *merge.Document) *merge.Document {
		out := doc.Clone()
		apply(out)
		return out
	}
}

// nextjsRules leans on the Next.js shareable config, which carries
// its own React and TypeScript handling.
func nextjsRules(doc *merge.Document) {
	doc.AppendStrings("extends", "next/core-web-vitals")
}

func reactRules(doc *merge.Document) {
	doc.AppendStrings("extends", "plugin:react/recommended", "plugin:react-hooks/recommended")
	doc.AppendStrings("plugins", "react", "react-hooks")
	doc.EnsureMap("parserOptions").EnsureMap("ecmaFeatures").SetBool("jsx", true)
	doc.EnsureMap("settings").EnsureMap("react").SetString("version", "detect")

	rules := doc.EnsureMap("rules")
	rules.SetString("react/react-in-jsx-scope", "off")
	rules.SetString("react/prop-types", "off")
}

func nodejsRules(doc *merge.Document) {
	doc.AppendStrings("extends", "plugin:node/recommended")
	doc.AppendStrings("plugins", "node")

	rules := doc.EnsureMap("rules")
	rules.SetString("node/no-unsupported-features/es-syntax", "off")
	rules.SetString("node/no-missing-import", "off")
}

func angularRules(doc *merge.Document) {
	doc.AppendStrings("extends", "plugin:@angular-eslint/recommended")
	doc.AppendStrings("plugins", "@angular-eslint")

	rules := doc.EnsureMap("rules")
	rules.Set("@angular-eslint/directive-selector", selectorRule("attribute", "app", "camelCase"))
	rules.Set("@angular-eslint/component-selector", selectorRule("element", "app", "kebab-case"))
}

// selectorRule builds the ["error", {...}] tuple the Angular selector
// rules expect.
func selectorRule(kind, prefix, style string) *merge.Document {
	cfg := merge.NewMap()
	cfg.SetString("type", kind)
	cfg.SetString("prefix", prefix)
	cfg.SetString("style", style)
	return merge.Sequence(merge.Scalar("error"), cfg)
}

func vueRules(doc *merge.Document) {
	doc.AppendStrings("extends", "plugin:vue/vue3-recommended")
	doc.SetString("parser", "vue-eslint-parser")
	doc.EnsureMap("rules").SetString("vue/multi-word-component-names", "off")
}

// svelteRules nests the component parser inside an overrides entry:
// *.svelte files need their own parser regardless of what the
// document-wide parser ends up being.
func svelteRules(doc *merge.Document) {
	doc.AppendStrings("extends", "plugin:svelte/recommended")

	override := merge.NewMap()
	override.AppendStrings("files", "*.svelte")
	override.SetString("parser", "svelte-eslint-parser")
	doc.Append("overrides", override)
}
