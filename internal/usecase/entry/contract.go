package entry

import (
	"context"

	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
)

// Repository defines the storage contract for directory entries.
type Repository interface {
	Create(ctx context.Context, e domentry.Entry) error
	Save(ctx context.Context, e domentry.Entry) error
	Get(ctx context.Context, id string) (domentry.Entry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domentry.Entry, error)
}
