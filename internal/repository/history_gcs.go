package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSHistory stores the history log as a single JSON object in a Cloud
// Storage bucket, so serverless deployments share one log across instances.
type GCSHistory struct {
	client *storage.Client
	bucket string
	prefix string
	object string
	mu     sync.Mutex
}

// NewGCSHistory creates a Cloud Storage backed history store in bucket.
func NewGCSHistory(ctx context.Context, bucket string) (*GCSHistory, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &GCSHistory{
		client: client,
		bucket: bucket,
		prefix: "history/",
		object: "history/records.json",
	}, nil
}

func (g *GCSHistory) Append(ctx context.Context, rec HistoryRecord) (HistoryRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	history, err := g.load(ctx)
	if err != nil {
		return HistoryRecord{}, err
	}
	history, rec = appendBounded(history, rec)
	if err := g.save(ctx, history); err != nil {
		return HistoryRecord{}, err
	}
	return rec, nil
}

func (g *GCSHistory) LoadRecent(ctx context.Context, n int) ([]HistoryRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	history, err := g.load(ctx)
	if err != nil {
		return nil, err
	}
	return lastN(history, n), nil
}

func (g *GCSHistory) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	history, err := g.load(ctx)
	if err != nil {
		return 0, err
	}
	history, dropped := pruneOlder(history, olderThan)
	if dropped == 0 {
		return 0, nil
	}
	return dropped, g.save(ctx, history)
}

// Clear removes every object under the history prefix, not only the
// current log, so stale objects from older layouts are swept too.
func (g *GCSHistory) Clear(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	bucket := g.client.Bucket(g.bucket)
	it := bucket.Objects(ctx, &storage.Query{Prefix: g.prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("listing history objects: %w", err)
		}
		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil {
			return fmt.Errorf("deleting history object %s: %w", attrs.Name, err)
		}
	}
	return nil
}

func (g *GCSHistory) Close() error {
	return g.client.Close()
}

func (g *GCSHistory) load(ctx context.Context) ([]HistoryRecord, error) {
	reader, err := g.client.Bucket(g.bucket).Object(g.object).NewReader(ctx)
	if err == storage.ErrObjectNotExist {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history object: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading history object: %w", err)
	}

	var history []HistoryRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("unmarshaling history object: %w", err)
	}
	return history, nil
}

func (g *GCSHistory) save(ctx context.Context, history []HistoryRecord) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	writer := g.client.Bucket(g.bucket).Object(g.object).NewWriter(ctx)
	writer.ContentType = "application/json"
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("writing history object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing history writer: %w", err)
	}
	return nil
}
