// Package entity extracts named entities from normalized text, either
// through a model-backed strategy or through deterministic pattern rules.
package entity

import (
	"context"
	"log"
	"strings"
)

// Labels used by the pattern-based fallback. Model-backed strategies may
// return any label.
const (
	LabelDate      = "DATE"
	LabelMoney     = "MONEY"
	LabelPersonOrg = "PERSON/ORG"
)

const maxEntities = 20

// Entity is a surface string paired with a label tag.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Strategy extracts entities from text.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text string) ([]Entity, error)
}

// Extractor dispatches to the configured model strategy when one is
// present, falling back to the pattern rules when it is absent or when a
// call fails.
type Extractor struct {
	model    Strategy
	fallback *RegexExtractor
}

// NewExtractor creates an extractor. model may be nil, in which case every
// extraction uses the pattern rules.
func NewExtractor(model Strategy) *Extractor {
	return &Extractor{
		model:    model,
		fallback: NewRegexExtractor(),
	}
}

// Extract returns at most 20 entities for text. It never fails: model
// errors are logged and the pattern rules take over for that call.
func (x *Extractor) Extract(ctx context.Context, text string) []Entity {
	if x.model != nil {
		entities, err := x.model.Extract(ctx, text)
		if err == nil {
			return DedupeAndCap(entities)
		}
		log.Printf("Model entity extraction failed, using pattern rules: %v", err)
	}

	entities, _ := x.fallback.Extract(ctx, text)
	return entities
}

// DedupeAndCap applies the model-backed post-filter: matches of length 1 or
// less are dropped, duplicates are removed by exact surface text, and the
// result is capped at 20 entities. The pattern-based fallback deliberately
// skips this filter.
func DedupeAndCap(entities []Entity) []Entity {
	seen := make(map[string]struct{}, len(entities))
	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if len(strings.TrimSpace(e.Text)) <= 1 {
			continue
		}
		if _, ok := seen[e.Text]; ok {
			continue
		}
		seen[e.Text] = struct{}{}
		out = append(out, e)
		if len(out) == maxEntities {
			break
		}
	}
	return out
}
