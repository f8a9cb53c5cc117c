package repository

import (
	"context"
	"sync"
	"time"

	"github.com/docdigest/docdigest/internal/entity"
)

// TimestampLayout is the wall-clock format stored in history records.
const TimestampLayout = "2006-01-02 15:04:05"

// maxHistoryRecords bounds the store: oldest records are evicted first.
const maxHistoryRecords = 50

// HistoryRecord is one retained summarization result. OriginalText holds
// only a preview of the input (first 200 characters).
type HistoryRecord struct {
	ID                int             `json:"id"`
	Timestamp         string          `json:"timestamp"`
	OriginalWordCount int             `json:"original_word_count"`
	OriginalText      string          `json:"original_text"`
	Summary           string          `json:"summary"`
	Entities          []entity.Entity `json:"entities"`
	SummaryWordCount  int             `json:"summary_word_count"`
}

// HistoryRepository is the bounded append-only log of past results.
// Append assigns the record its sequential ID and returns the stored copy.
// Reads and writes are not atomic across processes; concurrent writers may
// race and lose updates, which is an accepted limitation.
type HistoryRepository interface {
	Append(ctx context.Context, rec HistoryRecord) (HistoryRecord, error)
	LoadRecent(ctx context.Context, n int) ([]HistoryRecord, error)
	Prune(ctx context.Context, olderThan time.Time) (int, error)
	Clear(ctx context.Context) error
	Close() error
}

// nextID continues from the highest retained ID so IDs stay strictly
// sequential even after eviction.
func nextID(history []HistoryRecord) int {
	maxID := 0
	for _, r := range history {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// appendBounded assigns rec its ID, appends it, and evicts the oldest
// records beyond the retention bound.
func appendBounded(history []HistoryRecord, rec HistoryRecord) ([]HistoryRecord, HistoryRecord) {
	rec.ID = nextID(history)
	history = append(history, rec)
	if len(history) > maxHistoryRecords {
		history = history[len(history)-maxHistoryRecords:]
	}
	return history, rec
}

// lastN returns the most recent n records in chronological order.
func lastN(history []HistoryRecord, n int) []HistoryRecord {
	if n <= 0 || n > len(history) {
		n = len(history)
	}
	out := make([]HistoryRecord, n)
	copy(out, history[len(history)-n:])
	return out
}

// pruneOlder drops records whose timestamp predates cutoff. Records with
// unparseable timestamps are kept.
func pruneOlder(history []HistoryRecord, cutoff time.Time) ([]HistoryRecord, int) {
	kept := history[:0]
	for _, r := range history {
		ts, err := time.Parse(TimestampLayout, r.Timestamp)
		if err == nil && ts.Before(cutoff) {
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(history) - len(kept)
}

// MemoryHistory is an in-process history store for tests and ephemeral
// deployments.
type MemoryHistory struct {
	mu      sync.Mutex
	records []HistoryRecord
}

// NewMemoryHistory creates an empty in-memory history store.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (m *MemoryHistory) Append(_ context.Context, rec HistoryRecord) (HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records, rec = appendBounded(m.records, rec)
	return rec, nil
}

func (m *MemoryHistory) LoadRecent(_ context.Context, n int) ([]HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastN(m.records, n), nil
}

func (m *MemoryHistory) Prune(_ context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var dropped int
	m.records, dropped = pruneOlder(m.records, olderThan)
	return dropped, nil
}

func (m *MemoryHistory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

func (m *MemoryHistory) Close() error { return nil }
