// Package search provides the hybrid ranking engine for help documentation.
package search

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/helpsearch/internal/corpus"
	"github.com/retailops/helpsearch/internal/embedding"
	"github.com/retailops/helpsearch/internal/ranking"
	"github.com/retailops/helpsearch/internal/store"
)

// RankResponse is the response for a ranking request.
type RankResponse struct {
	Results []*ranking.ScoredResult `json:"results"`
	// Degraded is true when the vector signal was unavailable for this query
	// and ranking proceeded on keyword score and context boost alone.
	Degraded  bool   `json:"degraded"`
	Total     int    `json:"total"`
	QueryTime int64  `json:"query_time_ms"`
	Query     string `json:"query"`
}

// Engine ranks corpus entries for a query by fusing keyword, vector, and
// context signals. It only reads immutable snapshots (corpus, embedding
// index), so concurrent queries need no locking; the index snapshot is
// swapped atomically after an offline rebuild.
type Engine struct {
	corpus        *corpus.Corpus
	embedder      embedding.Embedder
	index         atomic.Pointer[store.Index]
	config        *ranking.Config
	keywordScorer *ranking.KeywordScorer
	vectorScorer  *ranking.VectorScorer
	booster       *ranking.Booster
	logger        *zap.Logger
}

// NewEngine creates an engine over a corpus snapshot. The embedder may be
// nil, in which case every query runs in degraded (keyword-only) mode.
func NewEngine(c *corpus.Corpus, embedder embedding.Embedder, idx *store.Index, cfg *ranking.Config, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = ranking.DefaultConfig()
	}
	cfg.ApplyDefaults()
	if idx == nil {
		idx = store.EmptyIndex()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		corpus:        c,
		embedder:      embedder,
		config:        cfg,
		keywordScorer: ranking.NewKeywordScorer(cfg),
		vectorScorer:  ranking.NewVectorScorer(cfg),
		booster:       ranking.NewBooster(cfg),
		logger:        logger,
	}
	e.index.Store(idx)
	return e
}

// Config returns the engine's ranking configuration.
func (e *Engine) Config() *ranking.Config {
	return e.config
}

// Index returns the current embedding index snapshot.
func (e *Engine) Index() *store.Index {
	return e.index.Load()
}

// SwapIndex atomically replaces the embedding index snapshot. In-flight
// queries keep the snapshot they started with.
func (e *Engine) SwapIndex(idx *store.Index) {
	if idx == nil {
		idx = store.EmptyIndex()
	}
	e.index.Store(idx)
}

// Rank scores every corpus entry for the query and returns the top results
// ordered by total score, then priority, then id. Provider failures degrade
// to keyword-plus-boost scoring; they are never surfaced as errors.
func (e *Engine) Rank(ctx context.Context, query string, qctx *ranking.QueryContext, limit int) *RankResponse {
	start := time.Now()
	if limit <= 0 {
		limit = e.config.DefaultLimit
	}
	if limit > e.config.MaxLimit {
		limit = e.config.MaxLimit
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return e.suggestByPriority(qctx, limit, query, start)
	}

	queryEmbedding, degraded := e.embedQuery(ctx, trimmed)
	idx := e.index.Load()

	results := make([]*ranking.ScoredResult, 0, e.corpus.Len())
	for _, entry := range e.corpus.Entries() {
		keywordScore, matched := e.keywordScorer.Score(trimmed, entry.Keywords)

		var vectorScore float64
		var staleEmbedding bool
		if rec, stale, ok := idx.Get(entry.ID); ok {
			if stale {
				staleEmbedding = true
			} else if !degraded {
				vectorScore = e.vectorScorer.Score(queryEmbedding, rec.Vector)
			}
		}

		boost := e.booster.Boost(entry, qctx)
		total := e.config.KeywordWeight*keywordScore + e.config.VectorWeight*vectorScore + boost
		if total == 0 {
			continue
		}

		results = append(results, &ranking.ScoredResult{
			EntryID:         entry.ID,
			Title:           entry.Title,
			Category:        entry.Category,
			Priority:        entry.Priority,
			KeywordScore:    keywordScore,
			VectorScore:     vectorScore,
			ContextBoost:    boost,
			TotalScore:      total,
			MatchedKeywords: matched,
			StaleEmbedding:  staleEmbedding,
		})
	}

	sortResults(results)
	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	return &RankResponse{
		Results:   results,
		Degraded:  degraded,
		Total:     total,
		QueryTime: time.Since(start).Milliseconds(),
		Query:     query,
	}
}

// Related resolves an entry's "see also" list against the corpus.
func (e *Engine) Related(entryID string, limit int) []*corpus.Entry {
	if limit <= 0 {
		limit = e.config.RelatedLimit
	}
	return e.corpus.Related(entryID, limit)
}

// suggestByPriority is the empty-query fallback: the highest-priority entries,
// ties broken by id ascending, with keyword and vector scores fixed at zero.
// This is documented "suggest something useful with no input" behavior, not an
// error path, so the zero-total exclusion does not apply.
func (e *Engine) suggestByPriority(qctx *ranking.QueryContext, limit int, query string, start time.Time) *RankResponse {
	entries := e.corpus.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].ID < entries[j].ID
	})

	total := len(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	results := make([]*ranking.ScoredResult, 0, len(entries))
	for _, entry := range entries {
		boost := e.booster.Boost(entry, qctx)
		results = append(results, &ranking.ScoredResult{
			EntryID:      entry.ID,
			Title:        entry.Title,
			Category:     entry.Category,
			Priority:     entry.Priority,
			ContextBoost: boost,
			TotalScore:   boost,
		})
	}

	return &RankResponse{
		Results:   results,
		Total:     total,
		QueryTime: time.Since(start).Milliseconds(),
		Query:     query,
	}
}

// embedQuery returns the query embedding, or degraded=true when no embedder
// is configured or the provider errors or times out.
func (e *Engine) embedQuery(ctx context.Context, query string) ([]float32, bool) {
	if e.embedder == nil {
		return nil, true
	}
	emb, err := e.embedder.Embed(ctx, query)
	if err != nil {
		e.logger.Warn("query embedding failed, degrading to keyword-only scoring",
			zap.String("query", query), zap.Error(err))
		return nil, true
	}
	return emb, false
}

// sortResults orders by total score descending, then priority descending,
// then id ascending. The tie-break chain makes the ordering a total order, so
// identical inputs always produce identical output.
func sortResults(results []*ranking.ScoredResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		if results[i].Priority != results[j].Priority {
			return results[i].Priority > results[j].Priority
		}
		return results[i].EntryID < results[j].EntryID
	})
}
