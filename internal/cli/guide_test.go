package cli

import (
	"strings"
	"testing"
)

func TestGuideMarkdownEmbedded(t *testing.T) {
	t.Parallel()

	if !strings.HasPrefix(guideMarkdown, "# Next steps") {
		t.Error("guide should open with the next-steps heading")
	}
	for _, want := range []string{"npm run lint", ".eslintrc.json", ".lintwiz.yaml"} {
		if !strings.Contains(guideMarkdown, want) {
			t.Errorf("guide should mention %q", want)
		}
	}
}

func TestPrintGuide(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	printGuide(&buf)

	out := buf.String()
	if out == "" {
		t.Fatal("guide output is empty")
	}
	// Rendered or raw, the command names must survive.
	if !strings.Contains(out, "lint") {
		t.Errorf("guide output should mention the lint script:\n%s", out)
	}
}
