// Package entry holds the yellow-book directory entry aggregate.
package entry

import (
	"fmt"
	"strings"
	"time"
)

// Params groups the caller-editable fields of an entry.
type Params struct {
	Name        string
	ShortName   string
	Summary     string
	Description string
	Category    string
	District    string
	Province    string
	Phone       string
	Email       string
	Address     string
	Website     string
}

// Entry is a business-directory entry. The embedding, when present, is the
// vector of EmbeddingText computed by the indexer; EmbeddedAt records when.
type Entry struct {
	id         string
	params     Params
	embedding  []float32
	embeddedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// New creates an entry without an embedding.
func New(id string, p Params, now time.Time) (Entry, error) {
	if id == "" {
		return Entry{}, fmt.Errorf("entry id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return Entry{}, fmt.Errorf("entry name is required")
	}
	return Entry{id: id, params: p, createdAt: now, updatedAt: now}, nil
}

// Reconstruct rebuilds an entry from storage without validation.
func Reconstruct(
	id string, p Params,
	embedding []float32, embeddedAt *time.Time,
	createdAt, updatedAt time.Time,
) Entry {
	return Entry{
		id:         id,
		params:     p,
		embedding:  embedding,
		embeddedAt: embeddedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (e Entry) ID() string             { return e.id }
func (e Entry) Name() string           { return e.params.Name }
func (e Entry) ShortName() string      { return e.params.ShortName }
func (e Entry) Summary() string        { return e.params.Summary }
func (e Entry) Description() string    { return e.params.Description }
func (e Entry) Category() string       { return e.params.Category }
func (e Entry) District() string       { return e.params.District }
func (e Entry) Province() string       { return e.params.Province }
func (e Entry) Phone() string          { return e.params.Phone }
func (e Entry) Email() string          { return e.params.Email }
func (e Entry) Address() string        { return e.params.Address }
func (e Entry) Website() string        { return e.params.Website }
func (e Entry) Params() Params         { return e.params }
func (e Entry) Embedding() []float32   { return e.embedding }
func (e Entry) EmbeddedAt() *time.Time { return e.embeddedAt }
func (e Entry) CreatedAt() time.Time   { return e.createdAt }
func (e Entry) UpdatedAt() time.Time   { return e.updatedAt }

// IsEmbedded reports search eligibility: a non-empty vector AND a recorded
// embedding timestamp. Entries failing either never enter the candidate set.
func (e Entry) IsEmbedded() bool {
	return len(e.embedding) > 0 && e.embeddedAt != nil
}

// EmbeddingText joins the salient fields into the text sent to the embedding
// provider. Empty fields are skipped so the text stays dense.
func (e Entry) EmbeddingText() string {
	fields := []string{
		e.params.Name,
		e.params.ShortName,
		e.params.Summary,
		e.params.Description,
		e.params.Category,
		e.params.District,
		e.params.Province,
	}
	parts := fields[:0]
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// WithEmbedding returns a copy carrying the vector and its timestamp.
func (e Entry) WithEmbedding(vec []float32, at time.Time) Entry {
	e.embedding = vec
	e.embeddedAt = &at
	return e
}

// WithParams returns a copy with updated fields. When the embedding text
// changes the stored vector is stale, so it is dropped and the entry becomes
// a backfill candidate again.
func (e Entry) WithParams(p Params, now time.Time) Entry {
	before := e.EmbeddingText()
	e.params = p
	e.updatedAt = now
	if e.EmbeddingText() != before {
		e.embedding = nil
		e.embeddedAt = nil
	}
	return e
}
