package rules

import (
	"slices"
	"testing"

	"github.com/modu-ai/lintwiz/internal/merge"
	"github.com/modu-ai/lintwiz/pkg/models"
)

func mustApply(t *testing.T, opts models.SetupOptions) *merge.Document {
	t.Helper()
	doc, err := Apply(opts, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	return doc
}

func TestFrameworkExtends(t *testing.T) {
	t.Parallel()

	tests := []struct {
		projectType models.ProjectType
		want        string
	}{
		{models.ProjectTypeNextJS, "next/core-web-vitals"},
		{models.ProjectTypeReact, "plugin:react/recommended"},
		{models.ProjectTypeNodeJS, "plugin:node/recommended"},
		{models.ProjectTypeAngular, "plugin:@angular-eslint/recommended"},
		{models.ProjectTypeVue, "plugin:vue/vue3-recommended"},
		{models.ProjectTypeSvelte, "plugin:svelte/recommended"},
	}

	for _, tt := range tests {
		t.Run(string(tt.projectType), func(t *testing.T) {
			t.Parallel()

			doc := mustApply(t, models.SetupOptions{ProjectType: tt.projectType})
			if got := doc.StringSlice("extends"); !slices.Contains(got, tt.want) {
				t.Errorf("extends = %v, want %s present", got, tt.want)
			}
		})
	}
}

func TestReactRules(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{ProjectType: models.ProjectTypeReact})

	if got := doc.StringSlice("plugins"); !slices.Contains(got, "react-hooks") {
		t.Errorf("plugins = %v, want react-hooks present", got)
	}

	po, _ := doc.Get("parserOptions")
	ef, ok := po.Get("ecmaFeatures")
	if !ok {
		t.Fatal("parserOptions.ecmaFeatures missing")
	}
	jsx, _ := ef.Get("jsx")
	if jsx.Value() != true {
		t.Error("ecmaFeatures.jsx != true")
	}

	settings, ok := doc.Get("settings")
	if !ok {
		t.Fatal("settings missing")
	}
	react, _ := settings.Get("react")
	version, _ := react.Get("version")
	if version.Value() != "detect" {
		t.Errorf("settings.react.version = %v, want detect", version.Value())
	}

	if got := ruleValue(t, doc, "react/react-in-jsx-scope"); got != "off" {
		t.Errorf("react/react-in-jsx-scope = %v, want off", got)
	}
}

func TestAngularSelectorTuples(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{ProjectType: models.ProjectTypeAngular})

	rules, _ := doc.Get("rules")
	sel, ok := rules.Get("@angular-eslint/component-selector")
	if !ok {
		t.Fatal("component-selector rule missing")
	}
	if sel.Kind() != merge.KindSequence || sel.Len() != 2 {
		t.Fatalf("component-selector shape = kind %v len %d, want 2-element sequence", sel.Kind(), sel.Len())
	}

	items := sel.Items()
	if items[0].Value() != "error" {
		t.Errorf("severity = %v, want error", items[0].Value())
	}
	cfg := items[1]
	style, _ := cfg.Get("style")
	if style.Value() != "kebab-case" {
		t.Errorf("style = %v, want kebab-case", style.Value())
	}
}

func TestVueParser(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{ProjectType: models.ProjectTypeVue})
	parser, ok := doc.Get("parser")
	if !ok || parser.Value() != "vue-eslint-parser" {
		t.Errorf("parser = %v, want vue-eslint-parser", parser)
	}
}

func TestTypeScriptParserWins(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{
		ProjectType:   models.ProjectTypeVue,
		UseTypeScript: true,
	})
	parser, _ := doc.Get("parser")
	if parser.Value() != "@typescript-eslint/parser" {
		t.Errorf("parser = %v, want @typescript-eslint/parser after typescript step", parser.Value())
	}

	if got := ruleValue(t, doc, "no-unused-vars"); got != "off" {
		t.Errorf("no-unused-vars = %v, want off under TypeScript", got)
	}
	if got := ruleValue(t, doc, "@typescript-eslint/no-unused-vars"); got != "warn" {
		t.Errorf("@typescript-eslint/no-unused-vars = %v, want warn", got)
	}
}

func TestTypeScriptStrictSeverity(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{
		ProjectType:   models.ProjectTypeReact,
		UseTypeScript: true,
		UseStrict:     true,
	})
	if got := ruleValue(t, doc, "@typescript-eslint/no-unused-vars"); got != "error" {
		t.Errorf("@typescript-eslint/no-unused-vars = %v, want error when strict", got)
	}
}

func TestSvelteOverrides(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{ProjectType: models.ProjectTypeSvelte})

	overrides, ok := doc.Get("overrides")
	if !ok || overrides.Kind() != merge.KindSequence {
		t.Fatal("overrides sequence missing")
	}
	entry := overrides.Items()[0]
	if got := entry.StringSlice("files"); !slices.Contains(got, "*.svelte") {
		t.Errorf("overrides files = %v, want *.svelte", got)
	}
	parser, _ := entry.Get("parser")
	if parser.Value() != "svelte-eslint-parser" {
		t.Errorf("overrides parser = %v, want svelte-eslint-parser", parser.Value())
	}
}

func TestSvelteTypeScriptNesting(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{
		ProjectType:   models.ProjectTypeSvelte,
		UseTypeScript: true,
	})

	overrides, _ := doc.Get("overrides")
	entry := overrides.Items()[0]
	po, ok := entry.Get("parserOptions")
	if !ok {
		t.Fatal("overrides parserOptions missing after typescript step")
	}
	nested, _ := po.Get("parser")
	if nested.Value() != "@typescript-eslint/parser" {
		t.Errorf("nested parser = %v, want @typescript-eslint/parser", nested.Value())
	}

	// The per-file component parser survives the document-wide switch.
	parser, _ := entry.Get("parser")
	if parser.Value() != "svelte-eslint-parser" {
		t.Errorf("overrides parser = %v, want svelte-eslint-parser preserved", parser.Value())
	}
}

func TestPrettierAugmentation(t *testing.T) {
	t.Parallel()

	doc := mustApply(t, models.SetupOptions{
		ProjectType: models.ProjectTypeReact,
		UsePrettier: true,
	})

	got := doc.StringSlice("extends")
	if !slices.Contains(got, "plugin:prettier/recommended") {
		t.Errorf("extends = %v, want plugin:prettier/recommended present", got)
	}
	if got[len(got)-1] != "plugin:prettier/recommended" {
		t.Errorf("extends = %v, want prettier last so it can disable conflicting rules", got)
	}
	if got := ruleValue(t, doc, "prettier/prettier"); got != "error" {
		t.Errorf("prettier/prettier = %v, want error", got)
	}
}

func TestPrettierConfigDocument(t *testing.T) {
	t.Parallel()

	doc := PrettierConfig()
	if doc.Kind() != merge.KindMap {
		t.Fatalf("Kind() = %v, want map", doc.Kind())
	}

	semi, _ := doc.Get("semi")
	if semi.Value() != true {
		t.Error("semi != true")
	}
	quote, _ := doc.Get("singleQuote")
	if quote.Value() != true {
		t.Error("singleQuote != true")
	}
	width, _ := doc.Get("printWidth")
	if width.Value() != 100 {
		t.Errorf("printWidth = %v, want 100", width.Value())
	}
}
