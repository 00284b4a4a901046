package usage

import (
	"math"
	"strings"
)

// EstimateTokens gives a rough token count for a text string, averaging a
// word-based estimate (~0.75 words per token) and a character-based one
// (~4 chars per token). Feeds analytics only, never billing.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	words := float64(len(strings.Fields(text)))
	chars := float64(len(text))
	return int(math.Round((words/0.75 + chars/4) / 2))
}

// EstimateDocumentTokens approximates the input cost of OCR'ing a document
// from its size: a flat base plus one token per KB.
func EstimateDocumentTokens(sizeKB float64) int {
	const baseTokens = 500
	return baseTokens + int(math.Round(sizeKB))
}
