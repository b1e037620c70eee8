// Package pipeline implements the offline embedding batch job.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/retailops/helpsearch/internal/corpus"
	"github.com/retailops/helpsearch/internal/embedding"
	"github.com/retailops/helpsearch/internal/store"
	"github.com/retailops/helpsearch/pkg/utils"
)

// Summary reports the outcome of one pipeline run.
type Summary struct {
	RunID        string        `json:"run_id"`
	SuccessCount int           `json:"success_count"`
	ErrorCount   int           `json:"error_count"`
	SkippedCount int           `json:"skipped_count"`
	Duration     time.Duration `json:"duration"`
}

// Options configure a pipeline run.
type Options struct {
	// RequestsPerSecond throttles provider calls. Defaults to 5.
	RequestsPerSecond float64
	// SkipUnchanged skips entries whose stored content hash already matches
	// the current canonical text.
	SkipUnchanged bool
}

// Pipeline embeds every corpus entry and upserts the result into the record
// store. The corpus is processed serially behind a rate limiter to avoid
// bursty provider throttling. Failures on individual entries are counted,
// never fatal to the run.
type Pipeline struct {
	corpus        *corpus.Corpus
	embedder      embedding.Embedder
	store         store.RecordStore
	limiter       *rate.Limiter
	skipUnchanged bool
	logger        *zap.Logger
}

// New creates a pipeline over the given corpus, embedder, and record store.
func New(c *corpus.Corpus, e embedding.Embedder, s store.RecordStore, opts Options, logger *zap.Logger) *Pipeline {
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		corpus:        c,
		embedder:      e,
		store:         s,
		limiter:       rate.NewLimiter(rate.Limit(rps), 1),
		skipUnchanged: opts.SkipUnchanged,
		logger:        logger,
	}
}

// Run processes the full corpus and returns the run summary. The only error
// Run itself returns is context cancellation; per-entry failures are logged
// and reflected in Summary.ErrorCount.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString()}
	start := time.Now()
	p.logger.Info("embedding pipeline starting",
		zap.String("run_id", summary.RunID),
		zap.Int("entries", p.corpus.Len()))

	for _, entry := range p.corpus.Entries() {
		if err := p.limiter.Wait(ctx); err != nil {
			summary.Duration = time.Since(start)
			return summary, err
		}
		skipped, err := p.processEntry(ctx, entry)
		switch {
		case err != nil:
			p.logger.Error("embedding entry failed",
				zap.String("entry_id", entry.ID), zap.Error(err))
			summary.ErrorCount++
		case skipped:
			summary.SkippedCount++
		default:
			summary.SuccessCount++
		}
	}

	summary.Duration = time.Since(start)
	p.logger.Info("embedding pipeline finished",
		zap.String("run_id", summary.RunID),
		zap.Int("succeeded", summary.SuccessCount),
		zap.Int("failed", summary.ErrorCount),
		zap.Int("skipped", summary.SkippedCount),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

func (p *Pipeline) processEntry(ctx context.Context, entry *corpus.Entry) (skipped bool, err error) {
	text := corpus.Canonicalize(entry)
	hash := corpus.ContentHash(entry)

	if p.skipUnchanged {
		if existing, err := p.store.Get(ctx, entry.ID); err == nil && existing.ContentHash == hash {
			return true, nil
		}
	}

	p.logger.Debug("embedding entry",
		zap.String("entry_id", entry.ID),
		zap.String("text", utils.Truncate(text, 120)))

	vec, err := p.embedder.Embed(ctx, text)
	if err != nil {
		return false, fmt.Errorf("embed: %w", err)
	}
	rec := &store.EmbeddingRecord{
		EntryID:     entry.ID,
		Vector:      vec,
		ContentHash: hash,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := p.store.Upsert(ctx, rec); err != nil {
		return false, fmt.Errorf("upsert: %w", err)
	}
	return false, nil
}
