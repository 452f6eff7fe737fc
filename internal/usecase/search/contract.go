package search

import (
	"context"

	"github.com/Baterdene23/yellbook/internal/domain"
	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
	"github.com/Baterdene23/yellbook/internal/domain/search/result"
)

// ResultCache defines the result cache contract. Get reports a miss via the
// bool, not an error; connectivity failures wrap domain.ErrCacheUnavailable.
type ResultCache interface {
	Get(ctx context.Context, query string) ([]result.Result, bool, error)
	Set(ctx context.Context, query string, results []result.Result) error
	Invalidate(ctx context.Context, query string) error
	Clear(ctx context.Context) (int, error)
}

// CandidateReader lists the entries eligible for scoring: embedding present
// and embedded-at recorded.
type CandidateReader interface {
	ListEmbedded(ctx context.Context) ([]domentry.Entry, error)
}

// Embedder vectorizes the query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
