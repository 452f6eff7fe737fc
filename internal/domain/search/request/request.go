// Package request holds the validated semantic search request.
package request

import (
	"fmt"
	"strings"

	"github.com/Baterdene23/yellbook/internal/domain"
)

const (
	// DefaultLimit is the result count when neither the caller nor the
	// configuration asks for one.
	DefaultLimit = 5
	// DefaultMaxQueryLen bounds the raw (pre-trim) query length in
	// characters when the configuration does not override it.
	DefaultMaxQueryLen = 500
)

// Limits carries the configured validation bounds. The zero value falls
// back to the package defaults, so tests and callers without config keep
// the documented behavior.
type Limits struct {
	DefaultLimit int
	MaxQueryLen  int
}

func (l Limits) withDefaults() Limits {
	if l.DefaultLimit <= 0 {
		l.DefaultLimit = DefaultLimit
	}
	if l.MaxQueryLen <= 0 {
		l.MaxQueryLen = DefaultMaxQueryLen
	}
	return l
}

// Request is a validated search request. The query is trimmed at
// construction; an invalid request cannot be represented.
type Request struct {
	query    string
	limit    int
	useCache bool
}

// New validates and normalizes a search request against the given limits.
// limit <= 0 falls back to limits.DefaultLimit. Validation failures wrap
// domain.ErrInvalidQuery.
func New(query string, limit int, useCache bool, limits Limits) (Request, error) {
	limits = limits.withDefaults()

	if len([]rune(query)) > limits.MaxQueryLen {
		return Request{}, fmt.Errorf("%w: query too long (max %d characters)", domain.ErrInvalidQuery, limits.MaxQueryLen)
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidQuery)
	}
	if limit <= 0 {
		limit = limits.DefaultLimit
	}
	return Request{query: trimmed, limit: limit, useCache: useCache}, nil
}

// Query returns the trimmed query text.
func (r Request) Query() string { return r.query }

// Limit returns the maximum number of results.
func (r Request) Limit() int { return r.limit }

// UseCache reports whether the cache-first path applies.
func (r Request) UseCache() bool { return r.useCache }
