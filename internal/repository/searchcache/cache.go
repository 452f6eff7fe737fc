// Package searchcache stores ranked search results in Redis under a TTL.
package searchcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Baterdene23/yellbook/internal/db"
	"github.com/Baterdene23/yellbook/internal/domain"
	"github.com/Baterdene23/yellbook/internal/domain/search/result"
)

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Cache is the search result cache. A connectivity failure surfaces as
// domain.ErrCacheUnavailable, distinct from a miss, so the orchestrator can
// degrade instead of failing the request.
type Cache struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New creates a result cache. prefix namespaces the keys (e.g. "ai-search:").
func New(s store, prefix string, ttl time.Duration) *Cache {
	return &Cache{store: s, prefix: prefix, ttl: ttl}
}

// Key derives the deterministic cache key for a query: the namespace prefix
// plus the trimmed, lower-cased query text. Search, Invalidate and Clear all
// go through here so one query always maps to one key.
func (c *Cache) Key(query string) string {
	return c.prefix + strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached results for a query. The second return reports a
// hit; a miss is (nil, false, nil).
func (c *Cache) Get(ctx context.Context, query string) ([]result.Result, bool, error) {
	key := c.Key(query)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, cacheErr("get", key, err)
	}

	results, err := decodeResults(data)
	if err != nil {
		// Corrupt payload counts as a miss; the next write-through replaces it.
		return nil, false, nil
	}
	return results, true, nil
}

// Set stores the results for a query, resetting the TTL window.
func (c *Cache) Set(ctx context.Context, query string, results []result.Result) error {
	key := c.Key(query)

	data, err := json.Marshal(encodeResults(results))
	if err != nil {
		return fmt.Errorf("marshal cached results: %w", err)
	}

	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		return cacheErr("set", key, err)
	}
	return nil
}

// Invalidate removes the cached results for one query. Absent keys are a no-op.
func (c *Cache) Invalidate(ctx context.Context, query string) error {
	key := c.Key(query)
	if err := c.store.Del(ctx, key); err != nil {
		return cacheErr("del", key, err)
	}
	return nil
}

// Clear removes every key under the namespace and returns the count. An
// empty namespace clears zero keys without error.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	pattern := c.prefix + "*"

	keys, err := c.store.Scan(ctx, pattern)
	if err != nil {
		return 0, cacheErr("scan", pattern, err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	if err := c.store.Del(ctx, keys...); err != nil {
		return 0, cacheErr("del", pattern, err)
	}
	return len(keys), nil
}

// cachedResult is the JSON storage shape of one ranked hit.
type cachedResult struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Summary    string  `json:"summary"`
	Similarity float64 `json:"similarity"`
	Rank       int     `json:"rank"`
}

func encodeResults(results []result.Result) []cachedResult {
	docs := make([]cachedResult, len(results))
	for i, r := range results {
		docs[i] = cachedResult{
			ID:         r.ID(),
			Name:       r.Name(),
			Summary:    r.Summary(),
			Similarity: r.Similarity(),
			Rank:       r.Rank(),
		}
	}
	return docs
}

func decodeResults(data []byte) ([]result.Result, error) {
	var docs []cachedResult
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("unmarshal cached results: %w", err)
	}

	results := make([]result.Result, len(docs))
	for i, d := range docs {
		results[i] = result.New(d.ID, d.Name, d.Summary, d.Similarity, d.Rank)
	}
	return results, nil
}

func cacheErr(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", domain.ErrCacheUnavailable, op, key, err)
}
