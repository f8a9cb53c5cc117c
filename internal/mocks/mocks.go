// Package mocks provides hand-written test doubles for the strategy and
// store interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/docdigest/docdigest/internal/entity"
	"github.com/docdigest/docdigest/internal/repository"
)

// SummarizeCall records one strategy invocation.
type SummarizeCall struct {
	Text     string
	MaxWords int
	MinWords int
}

// MockSummarizeStrategy implements summarize.Strategy.
type MockSummarizeStrategy struct {
	Summary string
	Err     error
	Calls   []SummarizeCall
}

func (m *MockSummarizeStrategy) Name() string { return "mock" }

func (m *MockSummarizeStrategy) Summarize(_ context.Context, text string, maxWords, minWords int) (string, error) {
	m.Calls = append(m.Calls, SummarizeCall{Text: text, MaxWords: maxWords, MinWords: minWords})
	if m.Err != nil {
		return "", m.Err
	}
	return m.Summary, nil
}

// MockEntityStrategy implements entity.Strategy.
type MockEntityStrategy struct {
	Entities []entity.Entity
	Err      error
}

func (m *MockEntityStrategy) Name() string { return "mock" }

func (m *MockEntityStrategy) Extract(_ context.Context, _ string) ([]entity.Entity, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entities, nil
}

// MockHistory implements repository.HistoryRepository over a plain slice.
type MockHistory struct {
	Records   []repository.HistoryRecord
	AppendErr error
}

func (m *MockHistory) Append(_ context.Context, rec repository.HistoryRecord) (repository.HistoryRecord, error) {
	if m.AppendErr != nil {
		return repository.HistoryRecord{}, m.AppendErr
	}
	rec.ID = len(m.Records) + 1
	m.Records = append(m.Records, rec)
	return rec, nil
}

func (m *MockHistory) LoadRecent(_ context.Context, n int) ([]repository.HistoryRecord, error) {
	if n > len(m.Records) {
		n = len(m.Records)
	}
	return m.Records[len(m.Records)-n:], nil
}

func (m *MockHistory) Prune(_ context.Context, _ time.Time) (int, error) { return 0, nil }

func (m *MockHistory) Clear(_ context.Context) error {
	m.Records = nil
	return nil
}

func (m *MockHistory) Close() error { return nil }
