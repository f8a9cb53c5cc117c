package entity

import (
	"context"
	"errors"
	"testing"
)

type stubStrategy struct {
	entities []Entity
	err      error
	calls    int
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) Extract(_ context.Context, _ string) ([]Entity, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entities, nil
}

func TestExtractorUsesModel(t *testing.T) {
	model := &stubStrategy{entities: []Entity{
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "x", Label: "ORG"},
	}}
	extractor := NewExtractor(model)

	got := extractor.Extract(context.Background(), "some text")
	if model.calls != 1 {
		t.Errorf("Expected 1 model call, got %d", model.calls)
	}
	if len(got) != 1 || got[0].Text != "Acme Corp" {
		t.Errorf("Expected deduped and filtered model entities, got %v", got)
	}
}

func TestExtractorFallsBackOnModelError(t *testing.T) {
	model := &stubStrategy{err: errors.New("quota exceeded")}
	extractor := NewExtractor(model)

	got := extractor.Extract(context.Background(), "Payment of $500 due on 12/01/2024.")
	if model.calls != 1 {
		t.Errorf("Expected 1 model call, got %d", model.calls)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 pattern entities, got %v", got)
	}
	if got[0].Label != LabelDate || got[1].Label != LabelMoney || got[2].Label != LabelPersonOrg {
		t.Errorf("Expected DATE, MONEY, PERSON/ORG order, got %v", got)
	}
	if got[2].Text != "Payment" {
		t.Errorf("Expected capitalized word picked up by the name rule, got %q", got[2].Text)
	}
}

func TestExtractorWithoutModel(t *testing.T) {
	extractor := NewExtractor(nil)

	got := extractor.Extract(context.Background(), "Meeting on 2024-03-15.")
	if len(got) != 2 || got[0].Label != LabelDate || got[0].Text != "2024-03-15" {
		t.Errorf("Expected the date entity first, got %v", got)
	}
}
