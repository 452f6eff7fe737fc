package entry

import (
	"time"

	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
)

// entryDoc is the JSON storage shape of a directory entry.
type entryDoc struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ShortName   string     `json:"short_name,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	District    string     `json:"district,omitempty"`
	Province    string     `json:"province,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	Website     string     `json:"website,omitempty"`
	Embedding   []float32  `json:"embedding,omitempty"`
	EmbeddedAt  *time.Time `json:"embedded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toDoc(e domentry.Entry) entryDoc {
	return entryDoc{
		ID:          e.ID(),
		Name:        e.Name(),
		ShortName:   e.ShortName(),
		Summary:     e.Summary(),
		Description: e.Description(),
		Category:    e.Category(),
		District:    e.District(),
		Province:    e.Province(),
		Phone:       e.Phone(),
		Email:       e.Email(),
		Address:     e.Address(),
		Website:     e.Website(),
		Embedding:   e.Embedding(),
		EmbeddedAt:  e.EmbeddedAt(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

// candidatePaths is the projection fetched on the search hot path: only
// what scoring and display need, plus the eligibility timestamp.
var candidatePaths = []string{"$.id", "$.name", "$.summary", "$.embedding", "$.embedded_at"}

// candidateDoc is the shape of a multi-path JSON.GET reply: an object keyed
// by path, each value the array of matches (empty when the field is absent).
type candidateDoc struct {
	ID         []string     `json:"$.id"`
	Name       []string     `json:"$.name"`
	Summary    []string     `json:"$.summary"`
	Embedding  [][]float32  `json:"$.embedding"`
	EmbeddedAt []*time.Time `json:"$.embedded_at"`
}

func fromCandidateDoc(d candidateDoc) domentry.Entry {
	var id string
	if len(d.ID) > 0 {
		id = d.ID[0]
	}
	var p domentry.Params
	if len(d.Name) > 0 {
		p.Name = d.Name[0]
	}
	if len(d.Summary) > 0 {
		p.Summary = d.Summary[0]
	}
	var vec []float32
	if len(d.Embedding) > 0 {
		vec = d.Embedding[0]
	}
	var at *time.Time
	if len(d.EmbeddedAt) > 0 {
		at = d.EmbeddedAt[0]
	}
	return domentry.Reconstruct(id, p, vec, at, time.Time{}, time.Time{})
}

func fromDoc(d entryDoc) domentry.Entry {
	return domentry.Reconstruct(
		d.ID,
		domentry.Params{
			Name:        d.Name,
			ShortName:   d.ShortName,
			Summary:     d.Summary,
			Description: d.Description,
			Category:    d.Category,
			District:    d.District,
			Province:    d.Province,
			Phone:       d.Phone,
			Email:       d.Email,
			Address:     d.Address,
			Website:     d.Website,
		},
		d.Embedding, d.EmbeddedAt,
		d.CreatedAt, d.UpdatedAt,
	)
}
