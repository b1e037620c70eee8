package ranking

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorScorer_Score(t *testing.T) {
	scorer := NewVectorScorer(nil)

	// similarity 1 -> (1+1)*50 = 100
	if got := scorer.Score([]float32{1, 0}, []float32{1, 0}); math.Abs(got-100) > 1e-9 {
		t.Errorf("identical vectors: Score() = %v, want 100", got)
	}
	// similarity 0 -> 50
	if got := scorer.Score([]float32{1, 0}, []float32{0, 1}); math.Abs(got-50) > 1e-9 {
		t.Errorf("orthogonal vectors: Score() = %v, want 50", got)
	}
	// similarity -1 -> 0
	if got := scorer.Score([]float32{1, 0}, []float32{-1, 0}); math.Abs(got) > 1e-9 {
		t.Errorf("opposite vectors: Score() = %v, want 0", got)
	}
	// empty query embedding scores 0
	if got := scorer.Score(nil, []float32{1, 0}); got != 0 {
		t.Errorf("empty query embedding: Score() = %v, want 0", got)
	}
}

func TestVectorScorer_CustomScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VectorScale = 10
	scorer := NewVectorScorer(cfg)
	if got := scorer.Score([]float32{1, 0}, []float32{1, 0}); math.Abs(got-10) > 1e-9 {
		t.Errorf("Score() = %v, want 10", got)
	}
}
