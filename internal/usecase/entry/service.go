// Package entry implements directory entry CRUD.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
)

// Service handles directory entry lifecycle. Embeddings are never written
// here: the indexer owns them, this service only drops stale ones on update.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates an entry service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates and stores a new entry with a generated ID.
func (s *Service) Create(ctx context.Context, p domentry.Params) (domentry.Entry, error) {
	e, err := domentry.New(uuid.NewString(), p, s.now().UTC())
	if err != nil {
		return domentry.Entry{}, fmt.Errorf("new entry: %w", err)
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return domentry.Entry{}, fmt.Errorf("create entry: %w", err)
	}
	return e, nil
}

// Get returns an entry by ID.
func (s *Service) Get(ctx context.Context, id string) (domentry.Entry, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return domentry.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// List returns all entries.
func (s *Service) List(ctx context.Context) ([]domentry.Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Update replaces the editable fields of an entry. A change to the embedding
// text invalidates the stored vector, returning the entry to the backfill
// queue.
func (s *Service) Update(ctx context.Context, id string, p domentry.Params) (domentry.Entry, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return domentry.Entry{}, fmt.Errorf("get entry: %w", err)
	}

	updated := e.WithParams(p, s.now().UTC())
	if err := s.repo.Save(ctx, updated); err != nil {
		return domentry.Entry{}, fmt.Errorf("save entry: %w", err)
	}
	return updated, nil
}

// Delete removes an entry by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
