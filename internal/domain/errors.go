package domain

import "errors"

var (
	// ErrInvalidQuery signals an empty or over-length search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrEntryNotFound signals a missing directory entry.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrAlreadyExists signals a duplicate directory entry.
	ErrAlreadyExists = errors.New("entry already exists")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	// The search fails loudly: without a query vector there is no ranking.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrStoreUnavailable signals that the entry store could not be read.
	ErrStoreUnavailable = errors.New("entry store unavailable")
	// ErrCacheUnavailable signals that the result cache could not be reached.
	// The cache is an optimization: readers degrade to a miss, writers log only.
	ErrCacheUnavailable = errors.New("result cache unavailable")
)
