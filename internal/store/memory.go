package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory RecordStore for tests and local development.
type MemoryStore struct {
	records map[string]*EmbeddingRecord
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*EmbeddingRecord)}
}

// Get returns the record for entryID, or ErrNotFound.
func (m *MemoryStore) Get(ctx context.Context, entryID string) (*EmbeddingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[entryID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(rec), nil
}

// Upsert stores a copy of rec keyed by its entry id.
func (m *MemoryStore) Upsert(ctx context.Context, rec *EmbeddingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.EntryID] = cloneRecord(rec)
	return nil
}

// List returns all records ordered by entry id.
func (m *MemoryStore) List(ctx context.Context) ([]*EmbeddingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]*EmbeddingRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, cloneRecord(rec))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EntryID < records[j].EntryID })
	return records, nil
}

// Count returns the number of stored records.
func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.records)), nil
}

// Close is a no-op for MemoryStore.
func (m *MemoryStore) Close() error {
	return nil
}

func cloneRecord(rec *EmbeddingRecord) *EmbeddingRecord {
	out := *rec
	out.Vector = make([]float32, len(rec.Vector))
	copy(out.Vector, rec.Vector)
	return &out
}
