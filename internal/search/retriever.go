// Package search scores structured pages by keyword overlap. This is
// deliberately not semantic search: a page matches when query keywords
// occur as substrings of its lowercased plain text.
package search

import (
	"errors"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/pdfsift/pdfsift/internal/document"
)

// ErrNoDocument is returned when a search runs before any document has
// been processed. Surfaces as a validation failure, never a silent empty
// result.
var ErrNoDocument = errors.New("no PDF has been processed yet")

// Result is one scored page with a short plain-text preview and the full
// page markdown for display.
type Result struct {
	Text       string  `json:"text"`
	Score      float64 `json:"score"`
	PageNumber int     `json:"page_number"`
	Markdown   string  `json:"markdown"`
}

// DefaultTopK is how many results a search returns when the caller does
// not ask for a specific count.
const DefaultTopK = 3

const (
	previewRunes = 200

	// Raw overlap fractions are rescaled into [0.4, 0.9] so displayed
	// percentages look plausible, then jittered and capped at 0.95.
	scoreFloor   = 0.4
	scoreSpan    = 0.5
	scoreCeiling = 0.95
	jitterRange  = 0.05
)

// Retriever ranks pages for a query. In deterministic mode the jitter is
// dropped and equal scores tie-break by ascending page number; otherwise
// behavior matches the original randomized scoring.
type Retriever struct {
	deterministic bool
}

func NewRetriever(deterministic bool) *Retriever {
	return &Retriever{deterministic: deterministic}
}

// Search scores every page against the query and returns the top-K in
// non-increasing score order.
func (r *Retriever) Search(pages []document.StructuredPage, query string, topK int) ([]Result, error) {
	if len(pages) == 0 {
		return nil, ErrNoDocument
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	keywords := make(map[string]struct{})
	for _, kw := range strings.Fields(strings.ToLower(query)) {
		keywords[kw] = struct{}{}
	}

	var results []Result
	for _, page := range pages {
		text := strings.ToLower(page.PlainText)

		base := 0
		for kw := range keywords {
			if strings.Contains(text, kw) {
				base++
			}
		}
		if base == 0 {
			continue
		}

		normalized := float64(base) / float64(len(keywords))
		score := scoreFloor + normalized*scoreSpan
		if !r.deterministic {
			score += (rand.Float64()*2 - 1) * jitterRange
		}
		if score > scoreCeiling {
			score = scoreCeiling
		}

		results = append(results, Result{
			Text:       preview(page.PlainText),
			Score:      score,
			PageNumber: page.PageNumber,
		})
	}

	// Stable: equal scores keep original page order.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if r.deterministic {
			return results[i].PageNumber < results[j].PageNumber
		}
		return false
	})
	if len(results) > topK {
		results = results[:topK]
	}

	for i := range results {
		results[i].Markdown = markdownForPage(pages, results[i].PageNumber)
	}
	return results, nil
}

// markdownForPage finds the full markdown for a page number. First match
// wins; vendor page numbers are usually unique, but duplicates are not
// assumed impossible.
func markdownForPage(pages []document.StructuredPage, pageNumber int) string {
	for _, p := range pages {
		if p.PageNumber == pageNumber {
			return p.Markdown
		}
	}
	return "Markdown content not found."
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewRunes {
		return string(runes[:previewRunes]) + "..."
	}
	return text + "..."
}
