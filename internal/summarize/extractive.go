package summarize

import (
	"context"
	"math"
	"sort"
	"strings"
)

// Extractive is the dependency-free fallback strategy. It ranks sentences
// by position, word frequency, and length shape, then keeps the top-scored
// ones in document order. Sentence boundaries are the literal ". "
// delimiter, which is an intentional simplification.
type Extractive struct{}

// NewExtractive creates the extractive fallback strategy.
func NewExtractive() *Extractive {
	return &Extractive{}
}

func (e *Extractive) Name() string { return "extractive" }

// Summarize implements Strategy. The word-count bounds are accepted for
// interface compatibility but do not affect selection: the number of kept
// sentences depends only on how many sentences the text has.
func (e *Extractive) Summarize(_ context.Context, text string, _, _ int) (string, error) {
	return e.extract(text), nil
}

func (e *Extractive) extract(text string) string {
	sentences := strings.Split(text, ". ")
	if len(sentences) <= 3 {
		return text
	}

	freq := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) > 3 {
			freq[word]++
		}
	}

	n := len(sentences)
	scores := make([]float64, n)
	for i, sentence := range sentences {
		words := strings.Fields(strings.ToLower(sentence))

		// Earlier sentences score higher.
		score := float64(n-i) / float64(n) * 0.3

		for _, word := range words {
			score += float64(freq[word])
		}

		if len(words) >= 10 && len(words) <= 30 {
			score += 0.2
		}

		scores[i] = score
	}

	target := int(math.Round(float64(n) * 0.3))
	if target < 2 {
		target = 2
	}
	if target > 5 {
		target = 5
	}

	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	selected := append([]int(nil), ranked[:target]...)
	sort.Ints(selected)

	parts := make([]string, 0, target)
	for _, i := range selected {
		parts = append(parts, sentences[i])
	}

	summary := strings.Join(parts, ". ")
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}
