package ranking

import "math"

// VectorScorer maps cosine similarity between a query embedding and an entry
// embedding onto the keyword score scale: similarity in [-1,1] becomes
// (similarity+1) * VectorScale/2, i.e. [0, VectorScale].
type VectorScorer struct {
	config *Config
}

// NewVectorScorer creates a vector scorer with the given config.
func NewVectorScorer(config *Config) *VectorScorer {
	if config == nil {
		config = DefaultConfig()
	}
	return &VectorScorer{config: config}
}

// Score returns the scaled similarity score. Mismatched or empty vectors score 0.
func (s *VectorScorer) Score(queryEmbedding, entryEmbedding []float32) float64 {
	if len(queryEmbedding) == 0 || len(queryEmbedding) != len(entryEmbedding) {
		return 0
	}
	sim := Cosine(queryEmbedding, entryEmbedding)
	return (sim + 1) * (s.config.VectorScale / 2)
}

// Cosine returns the cosine similarity of two equal-length vectors, clamped
// to [-1, 1]. Zero vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, sim))
}
