// Package search implements the semantic search orchestrator.
package search

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
	"github.com/Baterdene23/yellbook/internal/domain/search/request"
	"github.com/Baterdene23/yellbook/internal/domain/search/result"
	"github.com/Baterdene23/yellbook/internal/domain/vector"
	"github.com/Baterdene23/yellbook/internal/metrics"
)

// Service answers semantic search queries cache-first: a hit returns the
// stored ranking untouched; a miss embeds the query, scores every eligible
// entry by cosine similarity in-process, ranks, truncates and writes through.
// The service holds no state of its own beyond its collaborators.
type Service struct {
	cache      ResultCache
	candidates CandidateReader
	embed      Embedder
	logger     *zap.Logger
}

// New creates a search service.
func New(cache ResultCache, candidates CandidateReader, embed Embedder, logger *zap.Logger) *Service {
	return &Service{cache: cache, candidates: candidates, embed: embed, logger: logger}
}

// Search executes a semantic search. Cache failures degrade: a failing read
// counts as a miss and a failing write is logged and dropped, so a cache
// outage never fails the request. Embedding and store failures propagate.
func (s *Service) Search(ctx context.Context, req request.Request) ([]result.Result, error) {
	if req.UseCache() {
		cached, hit, err := s.cache.Get(ctx, req.Query())
		if err != nil {
			s.logger.Warn("Result cache read failed, serving uncached",
				zap.String("query", req.Query()), zap.Error(err))
		}
		if hit {
			metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
			s.logger.Debug("Search cache hit", zap.String("query", req.Query()))
			return cached, nil
		}
		metrics.SearchCacheTotal.WithLabelValues("miss").Inc()
	}

	embResult, err := s.embed.Embed(ctx, req.Query())
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	entries, err := s.candidates.ListEmbedded(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	metrics.SearchCandidatesScanned.Observe(float64(len(entries)))

	results := rank(embResult.Embedding, entries, req.Limit())

	if req.UseCache() {
		if err := s.cache.Set(ctx, req.Query(), results); err != nil {
			s.logger.Warn("Result cache write failed",
				zap.String("query", req.Query()), zap.Error(err))
		}
	}

	return results, nil
}

// InvalidateCache drops the cached results for one query. Absent keys are a
// no-op.
func (s *Service) InvalidateCache(ctx context.Context, query string) error {
	if err := s.cache.Invalidate(ctx, query); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}

// ClearAllCache drops every cached result under the search namespace and
// returns how many keys were removed.
func (s *Service) ClearAllCache(ctx context.Context) (int, error) {
	n, err := s.cache.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return n, nil
}

type scored struct {
	id         string
	name       string
	summary    string
	similarity float64
}

// rank scores candidates against the query vector, sorts descending and
// truncates. The sort is stable: equal similarities keep enumeration order,
// so identical inputs always produce identical rankings. A candidate whose
// stored vector length differs from the query vector (stale embeddings from
// a retired model) scores 0 instead of breaking the whole query.
func rank(queryVec []float32, entries []domentry.Entry, limit int) []result.Result {
	candidates := make([]scored, len(entries))
	for i, e := range entries {
		sim := 0.0
		if len(e.Embedding()) == len(queryVec) {
			sim = vector.Cosine(queryVec, e.Embedding())
		}
		candidates[i] = scored{
			id:         e.ID(),
			name:       e.Name(),
			summary:    e.Summary(),
			similarity: sim,
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]result.Result, len(candidates))
	for i, c := range candidates {
		results[i] = result.New(c.id, c.name, c.summary, c.similarity, i)
	}
	return results
}
