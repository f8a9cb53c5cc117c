package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// FileHistory persists the history log as a single JSON file, rewriting the
// whole file on every append. The read-modify-write is guarded within the
// process only; see HistoryRepository for the cross-process caveat.
type FileHistory struct {
	path string
	mu   sync.Mutex
}

// NewFileHistory creates a file-backed history store at path. The file is
// created lazily on first append.
func NewFileHistory(path string) *FileHistory {
	return &FileHistory{path: path}
}

func (f *FileHistory) Append(_ context.Context, rec HistoryRecord) (HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	history, err := f.load()
	if err != nil {
		return HistoryRecord{}, err
	}
	history, rec = appendBounded(history, rec)
	if err := f.save(history); err != nil {
		return HistoryRecord{}, err
	}
	return rec, nil
}

func (f *FileHistory) LoadRecent(_ context.Context, n int) ([]HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	history, err := f.load()
	if err != nil {
		return nil, err
	}
	return lastN(history, n), nil
}

func (f *FileHistory) Prune(_ context.Context, olderThan time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	history, err := f.load()
	if err != nil {
		return 0, err
	}
	history, dropped := pruneOlder(history, olderThan)
	if dropped == 0 {
		return 0, nil
	}
	return dropped, f.save(history)
}

func (f *FileHistory) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing history file: %w", err)
	}
	return nil
}

func (f *FileHistory) Close() error { return nil }

func (f *FileHistory) load() ([]HistoryRecord, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var history []HistoryRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("unmarshaling history file: %w", err)
	}
	return history, nil
}

func (f *FileHistory) save(history []HistoryRecord) error {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}
