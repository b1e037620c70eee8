package store

import (
	"context"
	"fmt"

	"github.com/retailops/helpsearch/internal/corpus"
)

// Index is an immutable snapshot of embedding records joined against a corpus
// version, with staleness precomputed. A record is stale when its stored
// content hash no longer matches the entry's current canonical text. Snapshots
// are never mutated; a rebuild produces a new Index that is swapped in whole.
type Index struct {
	records map[string]*EmbeddingRecord
	stale   map[string]bool
}

// EmptyIndex returns an index with no records. Every lookup misses, which the
// engine treats the same as a missing embedding.
func EmptyIndex() *Index {
	return &Index{
		records: make(map[string]*EmbeddingRecord),
		stale:   make(map[string]bool),
	}
}

// BuildIndex loads every record from the store and marks the stale ones.
// Records for entries no longer in the corpus are dropped from the snapshot.
func BuildIndex(ctx context.Context, s RecordStore, c *corpus.Corpus) (*Index, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedding records: %w", err)
	}
	idx := EmptyIndex()
	for _, rec := range records {
		entry, ok := c.Get(rec.EntryID)
		if !ok {
			continue
		}
		idx.records[rec.EntryID] = rec
		if rec.ContentHash != corpus.ContentHash(entry) {
			idx.stale[rec.EntryID] = true
		}
	}
	return idx, nil
}

// Get returns the record for entryID and whether it is stale.
func (i *Index) Get(entryID string) (rec *EmbeddingRecord, stale bool, ok bool) {
	rec, ok = i.records[entryID]
	return rec, i.stale[entryID], ok
}

// Size returns the number of records in the snapshot.
func (i *Index) Size() int {
	return len(i.records)
}

// StaleCount returns the number of stale records in the snapshot.
func (i *Index) StaleCount() int {
	return len(i.stale)
}
