package indexer

import (
	"context"
	"time"

	"github.com/Baterdene23/yellbook/internal/domain"
	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
)

// EntryStore lists backfill candidates and records computed vectors.
type EntryStore interface {
	ListPending(ctx context.Context) ([]domentry.Entry, error)
	SetEmbedding(ctx context.Context, id string, vec []float32, at time.Time) error
}

// Embedder vectorizes entry text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
