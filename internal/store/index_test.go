package store

import (
	"context"
	"testing"
	"time"

	"github.com/retailops/helpsearch/internal/corpus"
)

func indexTestCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New([]*corpus.Entry{
		{ID: "a", Category: corpus.CategoryProducts, Title: "A", Keywords: []string{"a"}},
		{ID: "b", Category: corpus.CategorySales, Title: "B", Keywords: []string{"b"}},
	})
	if err != nil {
		t.Fatalf("corpus.New() error = %v", err)
	}
	return c
}

func TestBuildIndex(t *testing.T) {
	c := indexTestCorpus(t)
	s := NewMemoryStore()
	ctx := context.Background()

	entryA, _ := c.Get("a")
	_ = s.Upsert(ctx, &EmbeddingRecord{
		EntryID:     "a",
		Vector:      []float32{1, 0},
		ContentHash: corpus.ContentHash(entryA),
		UpdatedAt:   time.Now().UTC(),
	})
	// hash no longer matches the entry content
	_ = s.Upsert(ctx, &EmbeddingRecord{
		EntryID:     "b",
		Vector:      []float32{0, 1},
		ContentHash: "outdated",
		UpdatedAt:   time.Now().UTC(),
	})
	// entry removed from the corpus
	_ = s.Upsert(ctx, &EmbeddingRecord{
		EntryID:     "ghost",
		Vector:      []float32{1, 1},
		ContentHash: "x",
		UpdatedAt:   time.Now().UTC(),
	})

	idx, err := BuildIndex(ctx, s, c)
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}

	if idx.Size() != 2 {
		t.Errorf("Size() = %d, want 2", idx.Size())
	}
	if idx.StaleCount() != 1 {
		t.Errorf("StaleCount() = %d, want 1", idx.StaleCount())
	}

	if _, stale, ok := idx.Get("a"); !ok || stale {
		t.Errorf("entry a: ok=%v stale=%v, want fresh record", ok, stale)
	}
	if _, stale, ok := idx.Get("b"); !ok || !stale {
		t.Errorf("entry b: ok=%v stale=%v, want stale record", ok, stale)
	}
	if _, _, ok := idx.Get("ghost"); ok {
		t.Error("records for removed entries must be dropped")
	}
}

func TestEmptyIndex(t *testing.T) {
	idx := EmptyIndex()
	if idx.Size() != 0 || idx.StaleCount() != 0 {
		t.Errorf("expected empty index, size=%d stale=%d", idx.Size(), idx.StaleCount())
	}
	if _, _, ok := idx.Get("anything"); ok {
		t.Error("empty index must miss every lookup")
	}
}
