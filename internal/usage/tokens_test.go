package usage

import (
	"strings"
	"testing"
)

func TestEstimateTokens_Empty(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", got)
	}
}

func TestEstimateTokens_KnownValues(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		// 1 word, 1 char: (1/0.75 + 1/4) / 2 = 0.79 -> 1
		{"a", 1},
		// 2 words, 11 chars: (2.67 + 2.75) / 2 = 2.71 -> 3
		{"hello world", 3},
		// 4 words, 19 chars: (5.33 + 4.75) / 2 = 5.04 -> 5
		{"the cat sat down", 5},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.text); got != tt.want {
			t.Errorf("EstimateTokens(%q): expected %d, got %d", tt.text, tt.want, got)
		}
	}
}

func TestEstimateTokens_MonotonicInLength(t *testing.T) {
	// Fixed word/char ratio: repeat the same block.
	prev := 0
	for n := 1; n <= 50; n++ {
		text := strings.Repeat("lorem ipsum dolor ", n)
		got := EstimateTokens(text)
		if got < prev {
			t.Fatalf("token estimate decreased at n=%d: %d -> %d", n, prev, got)
		}
		prev = got
	}
}

func TestEstimateDocumentTokens(t *testing.T) {
	tests := []struct {
		sizeKB float64
		want   int
	}{
		{0, 500},
		{1, 501},
		{10.4, 510},
		{1024, 1524},
	}
	for _, tt := range tests {
		if got := EstimateDocumentTokens(tt.sizeKB); got != tt.want {
			t.Errorf("EstimateDocumentTokens(%v): expected %d, got %d", tt.sizeKB, tt.want, got)
		}
	}
}
