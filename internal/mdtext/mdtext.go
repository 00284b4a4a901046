// Package mdtext normalizes OCR markdown: it inlines extracted images as
// data URIs for display, and derives plain text for keyword search.
package mdtext

import (
	"regexp"
	"strings"
)

var (
	imageRe     = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	lineBreakRe = regexp.MustCompile(`<br\s*/?>`)
	punctRe     = regexp.MustCompile(`[#>*_\-]`)
	linkRe      = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	hspaceRe    = regexp.MustCompile(`[ \t]+`)
	blankRe     = regexp.MustCompile(`\n\s*\n`)
)

// InlineImages replaces each literal image reference of the form
// ![id](id) with a base64 data URI so the markdown is self-contained.
// References without a matching map entry are left untouched.
func InlineImages(markdown string, images map[string]string) string {
	for id, b64 := range images {
		ref := "![" + id + "](" + id + ")"
		inlined := "![" + id + "](data:image/png;base64," + b64 + ")"
		markdown = strings.ReplaceAll(markdown, ref, inlined)
	}
	return markdown
}

// ToPlainText strips markdown syntax, producing searchable plain text.
// Pure and idempotent: image references are dropped, <br> variants become
// newlines, markdown punctuation is removed, links collapse to their
// text, and whitespace is normalized.
func ToPlainText(markdown string) string {
	text := imageRe.ReplaceAllString(markdown, "")
	text = lineBreakRe.ReplaceAllString(text, "\n")
	text = punctRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = hspaceRe.ReplaceAllString(text, " ")
	text = blankRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
