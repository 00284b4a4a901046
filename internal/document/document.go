// Package document turns vendor OCR responses into structured pages and
// holds the single current document in memory.
package document

import (
	"fmt"
	"strings"

	"github.com/pdfsift/pdfsift/internal/mdtext"
	"github.com/pdfsift/pdfsift/internal/ocr"
)

// StructuredPage is one OCR'd page: vendor markdown with images inlined,
// plus plain text derived from it for keyword search. PageNumber is the
// vendor's 0-based index, carried verbatim.
type StructuredPage struct {
	PageNumber int    `json:"page_number"`
	Markdown   string `json:"markdown"`
	PlainText  string `json:"plain_text"`
}

// BuildPages converts a vendor response into structured pages. Output has
// the same length and order as the vendor's page list; indices are never
// reassigned.
func BuildPages(resp *ocr.Response) []StructuredPage {
	pages := make([]StructuredPage, 0, len(resp.Pages))
	for _, p := range resp.Pages {
		md := inlinedMarkdown(p)
		pages = append(pages, StructuredPage{
			PageNumber: p.Index,
			Markdown:   md,
			PlainText:  mdtext.ToPlainText(md),
		})
	}
	return pages
}

// CombinedMarkdown renders the whole document as one markdown string with
// a horizontal rule and a human-readable 1-based page marker after each
// page. Display convenience only; retrieval works on structured pages.
func CombinedMarkdown(resp *ocr.Response) string {
	parts := make([]string, 0, len(resp.Pages))
	for _, p := range resp.Pages {
		parts = append(parts, fmt.Sprintf("%s\n\n---\n**Page %d**\n\n", inlinedMarkdown(p), p.Index+1))
	}
	return strings.Join(parts, "\n")
}

func inlinedMarkdown(p ocr.Page) string {
	md := strings.TrimSpace(p.Markdown)
	if len(p.Images) == 0 {
		return md
	}
	images := make(map[string]string, len(p.Images))
	for _, img := range p.Images {
		images[img.ID] = img.ImageBase64
	}
	return mdtext.InlineImages(md, images)
}
