package merge

import (
	"reflect"
	"testing"
)

func TestMergeSequencesAsSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     []string
		incoming []string
		want     []string
	}{
		{
			name:     "disjoint union keeps base order first",
			base:     []string{"eslint:recommended", "plugin:react/recommended"},
			incoming: []string{"airbnb", "prettier"},
			want:     []string{"eslint:recommended", "plugin:react/recommended", "airbnb", "prettier"},
		},
		{
			name:     "overlap deduplicated",
			base:     []string{"eslint:recommended", "prettier"},
			incoming: []string{"prettier", "airbnb"},
			want:     []string{"eslint:recommended", "prettier", "airbnb"},
		},
		{
			name:     "identical inputs unchanged",
			base:     []string{"a", "b"},
			incoming: []string{"a", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:     "empty base takes incoming",
			base:     nil,
			incoming: []string{"prettier"},
			want:     []string{"prettier"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Merge(Strings(tt.base...), Strings(tt.incoming...))
			if got.Kind() != KindSequence {
				t.Fatalf("Kind() = %v, want %v", got.Kind(), KindSequence)
			}
			var values []string
			for _, item := range got.Items() {
				values = append(values, item.Value().(string))
			}
			if !reflect.DeepEqual(values, tt.want) {
				t.Errorf("Merge() = %v, want %v", values, tt.want)
			}
		})
	}
}

func TestMergeSequenceOfMaps(t *testing.T) {
	t.Parallel()

	override := func(files, parser string) *Document {
		m := NewMap()
		m.AppendStrings("files", files)
		m.SetString("parser", parser)
		return m
	}

	base := Sequence(override("*.svelte", "svelte-eslint-parser"))
	incoming := Sequence(
		override("*.svelte", "svelte-eslint-parser"),
		override("*.ts", "@typescript-eslint/parser"),
	)

	got := Merge(base, incoming)
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (duplicate map not deduplicated)", got.Len())
	}
}

func TestMergeMapsRecursively(t *testing.T) {
	t.Parallel()

	base := NewMap()
	base.SetBool("root", true)
	baseEnv := base.EnsureMap("env")
	baseEnv.SetBool("browser", true)
	base.EnsureMap("rules").SetString("no-console", "warn")

	incoming := NewMap()
	incomingEnv := incoming.EnsureMap("env")
	incomingEnv.SetBool("jest", true)
	incoming.EnsureMap("rules").SetString("no-console", "off")
	incoming.SetString("parser", "espree")

	got := Merge(base, incoming)

	// Base-only keys survive.
	root, ok := got.Get("root")
	if !ok || root.Value() != true {
		t.Error("base-only key root lost in merge")
	}

	// Nested maps union their keys.
	env, _ := got.Get("env")
	if !env.Has("browser") || !env.Has("jest") {
		t.Errorf("env keys = %v, want browser and jest", env.Keys())
	}

	// Incoming wins on scalar conflicts.
	rules, _ := got.Get("rules")
	noConsole, _ := rules.Get("no-console")
	if noConsole.Value() != "off" {
		t.Errorf("no-console = %v, want off", noConsole.Value())
	}

	// Incoming-only keys append after base keys.
	keys := got.Keys()
	if keys[len(keys)-1] != "parser" {
		t.Errorf("Keys() = %v, want parser appended last", keys)
	}
}

func TestMergeShapeMismatchIncomingWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     *Document
		incoming *Document
	}{
		{"scalar over sequence", Strings("a", "b"), Scalar("plugin:vue/vue3-recommended")},
		{"sequence over scalar", Scalar("eslint:recommended"), Strings("a")},
		{"map over scalar", Scalar("warn"), NewMap()},
		{"scalar over map", NewMap(), Scalar("warn")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Merge(tt.base, tt.incoming)
			if !got.Equal(tt.incoming) {
				t.Errorf("Merge() = %v, want incoming side %v", got.Value(), tt.incoming.Value())
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	doc := NewMap()
	doc.SetBool("root", true)
	env := doc.EnsureMap("env")
	env.SetBool("browser", true)
	env.SetBool("es2021", true)
	doc.AppendStrings("extends", "eslint:recommended", "plugin:prettier/recommended")
	doc.AppendStrings("plugins", "prettier")
	rules := doc.EnsureMap("rules")
	rules.SetString("no-console", "warn")
	rules.Set("prettier/prettier", Scalar("error"))
	po := doc.EnsureMap("parserOptions")
	po.SetInt("ecmaVersion", 2021)
	po.SetString("sourceType", "module")

	got := Merge(doc, doc)
	if !got.Equal(doc) {
		t.Error("Merge(X, X) != X")
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := NewMap()
	base.AppendStrings("extends", "eslint:recommended")
	incoming := NewMap()
	incoming.AppendStrings("extends", "prettier")

	baseBefore := base.Clone()
	incomingBefore := incoming.Clone()

	got := Merge(base, incoming)
	got.EnsureMap("rules").SetString("semi", "error")
	got.AppendStrings("extends", "airbnb")

	if !base.Equal(baseBefore) {
		t.Error("Merge mutated base input")
	}
	if !incoming.Equal(incomingBefore) {
		t.Error("Merge mutated incoming input")
	}
}

func TestMergeNilHandling(t *testing.T) {
	t.Parallel()

	doc := NewMap()
	doc.SetBool("root", true)

	if got := Merge(nil, doc); !got.Equal(doc) {
		t.Error("Merge(nil, doc) != doc")
	}
	if got := Merge(doc, nil); !got.Equal(doc) {
		t.Error("Merge(doc, nil) != doc")
	}
}
