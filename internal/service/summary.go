package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/docdigest/docdigest/internal/entity"
	"github.com/docdigest/docdigest/internal/repository"
	"github.com/docdigest/docdigest/internal/summarize"
	"github.com/docdigest/docdigest/internal/textproc"
)

// minInputWords is the user-input gate. Inputs below it are rejected;
// the engine's own 50-word advisory applies only above this gate.
const minInputWords = 20

// previewLength bounds the original-text preview kept in history.
const previewLength = 200

// User-input errors, surfaced in the failure envelope.
var (
	ErrEmptyText    = errors.New("Please provide text to summarize")
	ErrTextTooShort = errors.New("Text is too short. Please provide at least 20 words.")
)

// Result is the outcome of one successful summarization request.
type Result struct {
	Summary           string
	Entities          []entity.Entity
	OriginalWordCount int
	SummaryWordCount  int
	CompressionRatio  float64
	Timestamp         string
}

// Summary coordinates one request end to end: normalize, gate, summarize,
// extract entities, and record the result. No state survives a call beyond
// the appended history record.
type Summary struct {
	engine    *summarize.Engine
	extractor *entity.Extractor
	history   repository.HistoryRepository
	now       func() time.Time
}

// NewSummary creates the summarization service.
func NewSummary(engine *summarize.Engine, extractor *entity.Extractor, history repository.HistoryRepository) *Summary {
	return &Summary{
		engine:    engine,
		extractor: extractor,
		history:   history,
		now:       time.Now,
	}
}

// Process runs one summarization request over raw (possibly marked-up)
// text. maxWords <= 0 selects the default bound.
func (s *Summary) Process(ctx context.Context, rawText string, maxWords int) (*Result, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyText
	}
	if maxWords <= 0 {
		maxWords = summarize.DefaultMaxWords
	}

	cleaned := textproc.Normalize(rawText)
	wordCount := textproc.WordCount(cleaned)
	if wordCount < minInputWords {
		return nil, ErrTextTooShort
	}

	// Summarization and entity extraction run independently on the same
	// normalized text.
	summary := s.engine.Summarize(ctx, cleaned, maxWords, summarize.DefaultMinWords)
	entities := s.extractor.Extract(ctx, cleaned)

	summaryWordCount := textproc.WordCount(summary)
	compression := math.Round((1-float64(summaryWordCount)/float64(wordCount))*1000) / 10
	timestamp := s.now().Format(repository.TimestampLayout)

	rec := repository.HistoryRecord{
		Timestamp:         timestamp,
		OriginalWordCount: wordCount,
		OriginalText:      preview(cleaned),
		Summary:           summary,
		Entities:          entities,
		SummaryWordCount:  summaryWordCount,
	}
	if _, err := s.history.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving to history: %w", err)
	}

	return &Result{
		Summary:           summary,
		Entities:          entities,
		OriginalWordCount: wordCount,
		SummaryWordCount:  summaryWordCount,
		CompressionRatio:  compression,
		Timestamp:         timestamp,
	}, nil
}

// Recent returns the n most recent history records.
func (s *Summary) Recent(ctx context.Context, n int) ([]repository.HistoryRecord, error) {
	return s.history.LoadRecent(ctx, n)
}

// ClearHistory drops all retained records.
func (s *Summary) ClearHistory(ctx context.Context) error {
	return s.history.Clear(ctx)
}

// IsUserError reports whether err is a user-input error rather than an
// internal failure.
func IsUserError(err error) bool {
	return errors.Is(err, ErrEmptyText) || errors.Is(err, ErrTextTooShort)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}
