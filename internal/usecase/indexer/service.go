// Package indexer backfills embeddings for entries that lack one.
package indexer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Report summarizes one backfill run.
type Report struct {
	Pending  int
	Embedded int
	Failed   int
	Tokens   int
}

// Service embeds pending entries one at a time, paced by a rate limiter to
// stay inside the provider's allowance. A per-entry failure is logged and
// counted; the run continues.
type Service struct {
	entries EntryStore
	embed   Embedder
	limiter *rate.Limiter
	logger  *zap.Logger
	now     func() time.Time
}

// New creates an indexer. callsPerMin bounds provider calls per minute.
func New(entries EntryStore, embed Embedder, callsPerMin float64, burst int, logger *zap.Logger) *Service {
	if burst < 1 {
		burst = 1
	}
	return &Service{
		entries: entries,
		embed:   embed,
		limiter: rate.NewLimiter(rate.Limit(callsPerMin/60.0), burst),
		logger:  logger,
		now:     time.Now,
	}
}

// Run embeds every pending entry. Returns an error only when the candidate
// listing fails or the context is canceled mid-run.
func (s *Service) Run(ctx context.Context) (Report, error) {
	pending, err := s.entries.ListPending(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list pending entries: %w", err)
	}

	report := Report{Pending: len(pending)}
	s.logger.Info("Embedding backfill started", zap.Int("pending", len(pending)))

	for _, e := range pending {
		if err := s.limiter.Wait(ctx); err != nil {
			return report, fmt.Errorf("rate limiter: %w", err)
		}

		text := e.EmbeddingText()
		if text == "" {
			s.logger.Warn("Entry has no embeddable text, skipping", zap.String("id", e.ID()))
			report.Failed++
			continue
		}

		res, err := s.embed.Embed(ctx, text)
		if err != nil {
			s.logger.Error("Failed to embed entry",
				zap.String("id", e.ID()), zap.String("name", e.Name()), zap.Error(err))
			report.Failed++
			continue
		}

		if err := s.entries.SetEmbedding(ctx, e.ID(), res.Embedding, s.now().UTC()); err != nil {
			s.logger.Error("Failed to store embedding",
				zap.String("id", e.ID()), zap.Error(err))
			report.Failed++
			continue
		}

		report.Embedded++
		report.Tokens += res.TotalTokens
		s.logger.Info("Entry embedded",
			zap.String("id", e.ID()),
			zap.String("name", e.Name()),
			zap.Int("done", report.Embedded),
			zap.Int("total", report.Pending),
		)
	}

	s.logger.Info("Embedding backfill finished",
		zap.Int("embedded", report.Embedded),
		zap.Int("failed", report.Failed),
		zap.Int("tokens", report.Tokens),
	)
	return report, nil
}
