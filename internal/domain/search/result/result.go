// Package result holds the ranked semantic search result.
package result

// Result is one ranked search hit. Constructed per search call, serialized
// into the cache, never mutated after creation.
type Result struct {
	id         string
	name       string
	summary    string
	similarity float64
	rank       int
}

// New creates a result.
func New(id, name, summary string, similarity float64, rank int) Result {
	return Result{id: id, name: name, summary: summary, similarity: similarity, rank: rank}
}

func (r Result) ID() string          { return r.id }
func (r Result) Name() string        { return r.name }
func (r Result) Summary() string     { return r.summary }
func (r Result) Similarity() float64 { return r.similarity }

// Rank is the zero-based position in the returned ordering. Derived from the
// sorted, truncated sequence; never stored on the entry.
func (r Result) Rank() int { return r.rank }
