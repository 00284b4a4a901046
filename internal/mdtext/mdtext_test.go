package mdtext

import (
	"strings"
	"testing"
)

func TestToPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips image references",
			input: "before ![img-0.jpeg](img-0.jpeg) after",
			want:  "before after",
		},
		{
			name:  "converts br tags to newlines",
			input: "line one<br>line two<br/>line three<br />line four",
			want:  "line one\nline two\nline three\nline four",
		},
		{
			name:  "strips heading markers",
			input: "# Invoice Summary",
			want:  "Invoice Summary",
		},
		{
			name:  "strips emphasis and list markers",
			input: "* item with **bold** and _underscore_",
			want:  "item with bold and underscore",
		},
		{
			name:  "unwraps links keeping text",
			input: "see [the docs](https://docs.example.com) now",
			want:  "see the docs now",
		},
		{
			name:  "collapses horizontal whitespace",
			input: "a\t\t  b",
			want:  "a b",
		},
		{
			name:  "collapses blank line runs",
			input: "para one\n\n\n\npara two",
			want:  "para one\npara two",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n text \n  ",
			want:  "text",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPlainText(tt.input); got != tt.want {
				t.Errorf("ToPlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToPlainTextIdempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome **bold** text with ![img](img)\n\n- item one<br>item two\n\n[link](http://x.com)",
		"plain already",
		"| col1 | col2 |\n|------|------|\n| a | b |",
		"",
	}
	for _, in := range inputs {
		once := ToPlainText(in)
		twice := ToPlainText(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestInlineImages(t *testing.T) {
	md := "intro ![img-0.jpeg](img-0.jpeg) middle ![img-1.jpeg](img-1.jpeg) end ![missing](missing)"
	images := map[string]string{
		"img-0.jpeg": "AAAA",
		"img-1.jpeg": "BBBB",
	}
	got := InlineImages(md, images)

	if !strings.Contains(got, "![img-0.jpeg](data:image/png;base64,AAAA)") {
		t.Errorf("expected first image inlined, got %q", got)
	}
	if !strings.Contains(got, "![img-1.jpeg](data:image/png;base64,BBBB)") {
		t.Errorf("expected second image inlined, got %q", got)
	}
	// References with no map entry stay as-is.
	if !strings.Contains(got, "![missing](missing)") {
		t.Errorf("expected unmatched reference untouched, got %q", got)
	}
}

func TestInlineImagesEmptyMap(t *testing.T) {
	md := "text ![img](img)"
	if got := InlineImages(md, nil); got != md {
		t.Errorf("expected markdown unchanged with nil map, got %q", got)
	}
}

func TestInlineThenPlainTextStripsDataURIs(t *testing.T) {
	md := "heading\n\n![img-0.jpeg](img-0.jpeg)\n\nbody text"
	inlined := InlineImages(md, map[string]string{"img-0.jpeg": strings.Repeat("Zm9v", 100)})
	plain := ToPlainText(inlined)
	if strings.Contains(plain, "data:image") {
		t.Errorf("expected no data URI in plain text, got %q", plain)
	}
	if !strings.Contains(plain, "body text") {
		t.Errorf("expected body text preserved, got %q", plain)
	}
}
