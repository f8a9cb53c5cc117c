package summarize

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// TooShortMessage is the advisory returned for inputs under 50 words.
// It is a designed output, not an error.
const TooShortMessage = "Text too short for meaningful summarization. Please provide at least 50 words."

const (
	// DefaultMaxWords and DefaultMinWords bound a summary when the caller
	// does not ask for anything specific.
	DefaultMaxWords = 150
	DefaultMinWords = 30

	advisoryThreshold = 50
	chunkThreshold    = 1000
	chunkSize         = 800
	chunkMaxWords     = 100
	chunkMinWords     = 20
)

// Strategy produces a summary of text within the given word bounds.
type Strategy interface {
	Name() string
	Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error)
}

// Engine owns the length-adaptive bounds and chunking policy, applied
// uniformly to whichever strategy is configured.
type Engine struct {
	strategy Strategy
}

// NewEngine creates an engine dispatching to the given strategy.
func NewEngine(strategy Strategy) *Engine {
	return &Engine{strategy: strategy}
}

// StrategyName reports which strategy the engine dispatches to.
func (e *Engine) StrategyName() string {
	return e.strategy.Name()
}

// Summarize produces a summary for text. Inputs under 50 words get the
// advisory message. Strategy failures are converted into a user-visible
// error string and never propagate as faults.
func (e *Engine) Summarize(ctx context.Context, text string, maxWords, minWords int) string {
	words := strings.Fields(text)
	if len(words) < advisoryThreshold {
		return TooShortMessage
	}

	if len(words) > chunkThreshold {
		return e.summarizeChunked(ctx, words, maxWords, minWords)
	}

	maxLen := min(maxWords, max(minWords, roundInt(float64(len(words))*0.4)))
	summary, err := e.strategy.Summarize(ctx, text, maxLen, minWords)
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return summary
}

// summarizeChunked splits long input into non-overlapping 800-word chunks,
// summarizes each independently, and concatenates the results in order.
// Chunks whose summarization fails are dropped from the output; this lossy
// behavior is accepted. If the concatenation still exceeds maxWords it is
// re-summarized once with the caller's bounds.
func (e *Engine) summarizeChunked(ctx context.Context, words []string, maxWords, minWords int) string {
	var parts []string
	for start := 0; start < len(words); start += chunkSize {
		end := min(start+chunkSize, len(words))
		chunk := strings.Join(words[start:end], " ")
		maxLen := min(chunkMaxWords, roundInt(float64(end-start)*0.3))

		part, err := e.strategy.Summarize(ctx, chunk, maxLen, chunkMinWords)
		if err != nil {
			continue
		}
		parts = append(parts, part)
	}

	combined := strings.Join(parts, " ")
	if len(strings.Fields(combined)) > maxWords {
		reduced, err := e.strategy.Summarize(ctx, combined, maxWords, minWords)
		if err != nil {
			return fmt.Sprintf("Error generating summary: %v", err)
		}
		return reduced
	}
	return combined
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
