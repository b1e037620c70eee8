package ranking

import "github.com/retailops/helpsearch/internal/corpus"

// ScoredResult is one ranked entry with its score breakdown. One is produced
// per query per entry that scored above zero (or per entry considered, for the
// empty-query fallback).
type ScoredResult struct {
	EntryID  string          `json:"entry_id"`
	Title    string          `json:"title"`
	Category corpus.Category `json:"category"`
	Priority int             `json:"priority"`

	KeywordScore float64 `json:"keyword_score"`
	VectorScore  float64 `json:"vector_score"`
	ContextBoost float64 `json:"context_boost"`
	TotalScore   float64 `json:"total_score"`

	// MatchedKeywords is the subset of the entry's keywords that contributed
	// to KeywordScore, for UI highlighting.
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	// StaleEmbedding marks results whose stored embedding no longer matches
	// the entry's current content. They remain eligible via keyword score and
	// boost; operators should trigger a re-embedding run.
	StaleEmbedding bool `json:"stale_embedding,omitempty"`
}
