package merge

import (
	"reflect"
	"testing"
)

func TestDocumentKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *Document
		want Kind
	}{
		{"scalar string", Scalar("error"), KindScalar},
		{"scalar bool", Scalar(true), KindScalar},
		{"scalar nil", Scalar(nil), KindScalar},
		{"sequence", Strings("eslint:recommended"), KindSequence},
		{"map", NewMap(), KindMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.doc.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapInsertionOrder(t *testing.T) {
	t.Parallel()

	doc := NewMap()
	doc.SetBool("root", true)
	doc.SetString("parser", "@typescript-eslint/parser")
	doc.Set("env", NewMap())
	doc.SetInt("ecmaVersion", 2021)

	want := []string{"root", "parser", "env", "ecmaVersion"}
	if got := doc.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	// Re-setting an existing key must keep its original position.
	doc.SetString("parser", "vue-eslint-parser")
	if got := doc.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after re-set = %v, want %v", got, want)
	}

	v, ok := doc.Get("parser")
	if !ok {
		t.Fatal("Get(parser) reported missing key")
	}
	if v.Value() != "vue-eslint-parser" {
		t.Errorf("parser = %v, want vue-eslint-parser", v.Value())
	}
}

func TestEnsureMap(t *testing.T) {
	t.Parallel()

	doc := NewMap()

	rules := doc.EnsureMap("rules")
	rules.SetString("no-console", "warn")

	// A second call returns the same nested map.
	again := doc.EnsureMap("rules")
	if !again.Has("no-console") {
		t.Error("EnsureMap returned a fresh map instead of the existing one")
	}

	// A scalar under the key is replaced by a map.
	doc.SetString("extends", "eslint:recommended")
	ext := doc.EnsureMap("extends")
	if ext.Kind() != KindMap {
		t.Errorf("EnsureMap over scalar: Kind() = %v, want %v", ext.Kind(), KindMap)
	}
}

func TestAppendStrings(t *testing.T) {
	t.Parallel()

	doc := NewMap()
	doc.AppendStrings("extends", "eslint:recommended")
	doc.AppendStrings("extends", "plugin:react/recommended", "prettier")

	want := []string{"eslint:recommended", "plugin:react/recommended", "prettier"}
	if got := doc.StringSlice("extends"); !reflect.DeepEqual(got, want) {
		t.Errorf("StringSlice(extends) = %v, want %v", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	original := NewMap()
	original.SetBool("root", true)
	env := original.EnsureMap("env")
	env.SetBool("node", true)
	original.AppendStrings("extends", "eslint:recommended")

	clone := original.Clone()
	clone.EnsureMap("env").SetBool("browser", true)
	clone.AppendStrings("extends", "prettier")

	if original.EnsureMap("env").Has("browser") {
		t.Error("mutating clone leaked into original map")
	}
	if got := original.StringSlice("extends"); len(got) != 1 {
		t.Errorf("original extends = %v, want 1 element", got)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	makeRules := func() *Document {
		doc := NewMap()
		doc.SetString("no-console", "warn")
		doc.SetString("no-unused-vars", "error")
		return doc
	}

	reversed := NewMap()
	reversed.SetString("no-unused-vars", "error")
	reversed.SetString("no-console", "warn")

	tests := []struct {
		name string
		a, b *Document
		want bool
	}{
		{"identical maps", makeRules(), makeRules(), true},
		{"map key order ignored", makeRules(), reversed, true},
		{"sequence order significant", Strings("a", "b"), Strings("b", "a"), false},
		{"equal sequences", Strings("a", "b"), Strings("a", "b"), true},
		{"scalar mismatch", Scalar("warn"), Scalar("error"), false},
		{"kind mismatch", Scalar("warn"), Strings("warn"), false},
		{"normalized ints", Scalar(int64(2021)), Scalar(2021), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequenceValues(t *testing.T) {
	t.Parallel()

	seq := Sequence(Scalar("error"), Scalar(2), NewMap())
	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", seq.Len())
	}

	items := seq.Items()
	if items[0].Value() != "error" {
		t.Errorf("items[0] = %v, want error", items[0].Value())
	}
	if items[1].Value() != 2 {
		t.Errorf("items[1] = %v, want 2", items[1].Value())
	}
	if items[2].Kind() != KindMap {
		t.Errorf("items[2].Kind() = %v, want %v", items[2].Kind(), KindMap)
	}
}
