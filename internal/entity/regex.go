package entity

import (
	"context"
	"regexp"
)

// Pattern rules for the fallback extractor. Matching semantics (boundary
// anchoring, case-insensitivity, per-category caps) are load-bearing for
// output compatibility and must not be "improved".
var (
	datePattern  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`)
	moneyPattern = regexp.MustCompile(`(?i)\$\d+(?:,\d{3})*(?:\.\d{2})?|\b\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:dollars?|USD|million|billion)\b`)
	namePattern  = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
)

const (
	maxDates          = 5
	maxMoney          = 5
	maxNameCandidates = 10
)

// RegexExtractor is the deterministic fallback used when no entity model is
// available. It returns dates, monetary amounts, and capitalized phrases,
// in that order, capped at 20 entities total. Unlike the model-backed path
// it performs no de-duplication.
type RegexExtractor struct{}

// NewRegexExtractor creates the pattern-based fallback extractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

func (r *RegexExtractor) Name() string { return "regex" }

// Extract implements Strategy. The error is always nil.
func (r *RegexExtractor) Extract(_ context.Context, text string) ([]Entity, error) {
	var entities []Entity

	for _, m := range datePattern.FindAllString(text, maxDates) {
		entities = append(entities, Entity{Text: m, Label: LabelDate})
	}

	for _, m := range moneyPattern.FindAllString(text, maxMoney) {
		entities = append(entities, Entity{Text: m, Label: LabelMoney})
	}

	// Capitalized phrases are name/organization candidates; single short
	// words are noise and get filtered after the candidate cap.
	for _, m := range namePattern.FindAllString(text, maxNameCandidates) {
		if len(m) > 3 {
			entities = append(entities, Entity{Text: m, Label: LabelPersonOrg})
		}
	}

	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}
	return entities, nil
}
