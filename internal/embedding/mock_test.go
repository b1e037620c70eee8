package embedding

import (
	"context"
	"math"
	"testing"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder(64)
	ctx := context.Background()

	a, err := e.Embed(ctx, "record a sale")
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	b, err := e.Embed(ctx, "record a sale")
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 dimensions, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same text must produce the same embedding")
		}
	}
}

func TestMockEmbedder_DistinctTexts(t *testing.T) {
	e := NewMockEmbedder(64)
	ctx := context.Background()

	a, _ := e.Embed(ctx, "add product")
	b, _ := e.Embed(ctx, "invite staff")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts should produce different embeddings")
	}
}

func TestMockEmbedder_UnitLength(t *testing.T) {
	e := NewMockEmbedder(32)
	emb, err := e.Embed(context.Background(), "referral program")
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	var norm float64
	for _, v := range emb {
		norm += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-5 {
		t.Errorf("expected unit vector, norm = %v", math.Sqrt(norm))
	}
}

func TestMockEmbedder_DefaultDimensions(t *testing.T) {
	e := NewMockEmbedder(0)
	if e.Dimensions() != 384 {
		t.Errorf("Dimensions() = %d, want 384", e.Dimensions())
	}
}

func TestMockEmbedder_EmbedBatch(t *testing.T) {
	e := NewMockEmbedder(16)
	embs, err := e.EmbedBatch(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("EmbedBatch() error = %v", err)
	}
	if len(embs) != 2 {
		t.Fatalf("expected 2 embeddings, got %d", len(embs))
	}
}
