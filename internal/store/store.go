// Package store persists embedding records and serves immutable index snapshots.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no embedding record exists for an entry.
var ErrNotFound = errors.New("embedding record not found")

// EmbeddingRecord is the stored embedding for one corpus entry. The schema
// (entry id, vector, content hash, updated at) is compatibility-critical:
// it must round-trip unchanged against embeddings written by earlier builds.
type EmbeddingRecord struct {
	EntryID     string    `json:"entry_id"`
	Vector      []float32 `json:"vector"`
	ContentHash string    `json:"content_hash"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordStore defines persistence for embedding records. Records are written
// only by the offline pipeline and read at index-build time.
type RecordStore interface {
	Get(ctx context.Context, entryID string) (*EmbeddingRecord, error)
	Upsert(ctx context.Context, rec *EmbeddingRecord) error
	List(ctx context.Context) ([]*EmbeddingRecord, error)
	Count(ctx context.Context) (int64, error)
	Close() error
}
