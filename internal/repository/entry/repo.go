// Package entry stores directory entries as Redis JSON documents.
package entry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Baterdene23/yellbook/internal/db"
	"github.com/Baterdene23/yellbook/internal/domain"
	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
)

const keyPrefix = "yb:entry:"

// store is the consumer interface for entries (ISP).
type store interface {
	JSONSet(ctx context.Context, key string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the entry storage contract.
type Repo struct {
	store store
}

// New creates an entry repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a new entry. Fails with domain.ErrAlreadyExists on a
// duplicate ID.
func (r *Repo) Create(ctx context.Context, e domentry.Entry) error {
	key := entryKey(e.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return storeErr("check exists", key, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, e.ID())
	}

	return r.put(ctx, key, e)
}

// Save overwrites an entry unconditionally.
func (r *Repo) Save(ctx context.Context, e domentry.Entry) error {
	return r.put(ctx, entryKey(e.ID()), e)
}

func (r *Repo) put(ctx context.Context, key string, e domentry.Entry) error {
	data, err := json.Marshal(toDoc(e))
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	if err := r.store.JSONSet(ctx, key, data); err != nil {
		return storeErr("json.set", key, err)
	}
	return nil
}

// Get returns an entry by ID.
func (r *Repo) Get(ctx context.Context, id string) (domentry.Entry, error) {
	key := entryKey(id)
	raw, err := r.store.JSONGet(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domentry.Entry{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
		}
		return domentry.Entry{}, storeErr("json.get", key, err)
	}
	return parseDoc(raw)
}

// Delete removes an entry by ID. Missing entries fail with
// domain.ErrEntryNotFound.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := entryKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return storeErr("check exists", key, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}

	if err := r.store.Del(ctx, key); err != nil {
		return storeErr("del", key, err)
	}
	return nil
}

// List returns all entries. SCAN-based: intended for the directory listing
// and the backfill loader, not per-request hot paths.
func (r *Repo) List(ctx context.Context) ([]domentry.Entry, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, storeErr("scan entries", keyPrefix+"*", err)
	}

	entries := make([]domentry.Entry, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key)
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue // deleted between SCAN and GET
			}
			return nil, storeErr("json.get", key, err)
		}
		e, err := parseDoc(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// ListEmbedded returns the search candidate set: entries with a non-empty
// embedding and a recorded embedding timestamp. Never returns nil. Fetches
// only the projected candidate fields, not the whole document: this runs on
// every cache-miss query and the contact fields would be dead weight.
func (r *Repo) ListEmbedded(ctx context.Context) ([]domentry.Entry, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, storeErr("scan entries", keyPrefix+"*", err)
	}

	embedded := make([]domentry.Entry, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key, candidatePaths...)
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue // deleted between SCAN and GET
			}
			return nil, storeErr("json.get", key, err)
		}

		var doc candidateDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal candidate: %w", err)
		}

		if e := fromCandidateDoc(doc); e.IsEmbedded() {
			embedded = append(embedded, e)
		}
	}
	return embedded, nil
}

// ListPending returns entries awaiting embedding backfill.
func (r *Repo) ListPending(ctx context.Context) ([]domentry.Entry, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]domentry.Entry, 0, len(all))
	for _, e := range all {
		if !e.IsEmbedded() {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

// SetEmbedding records a computed vector and its timestamp on an entry.
func (r *Repo) SetEmbedding(ctx context.Context, id string, vec []float32, at time.Time) error {
	e, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return r.Save(ctx, e.WithEmbedding(vec, at))
}

func parseDoc(raw []byte) (domentry.Entry, error) {
	// JSON.GET with the "$" path wraps the document in a one-element array.
	if len(raw) > 0 && raw[0] == '[' {
		var docs []entryDoc
		if err := json.Unmarshal(raw, &docs); err != nil {
			return domentry.Entry{}, fmt.Errorf("unmarshal entry: %w", err)
		}
		if len(docs) == 0 {
			return domentry.Entry{}, fmt.Errorf("unmarshal entry: empty document array")
		}
		return fromDoc(docs[0]), nil
	}

	var doc entryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domentry.Entry{}, fmt.Errorf("unmarshal entry: %w", err)
	}
	return fromDoc(doc), nil
}

func entryKey(id string) string {
	return keyPrefix + strings.TrimSpace(id)
}

// storeErr wraps storage failures so callers can map them to 503 via
// domain.ErrStoreUnavailable while keeping the underlying cause.
func storeErr(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", domain.ErrStoreUnavailable, op, key, err)
}
