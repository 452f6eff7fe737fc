package entry

import (
	"testing"
	"time"
)

func testParams() Params {
	return Params{
		Name:        "Green Leaf Restaurant",
		Summary:     "Organic dining",
		Description: "Seasonal menu",
		Category:    "Food & Dining",
		District:    "Хан-Уул",
		Province:    "Улаанбаатар",
		Phone:       "+976-7010-0102",
	}
}

func TestNew_RequiresName(t *testing.T) {
	now := time.Now()

	if _, err := New("id-1", Params{Name: "   "}, now); err == nil {
		t.Error("expected error for blank name")
	}
	if _, err := New("", testParams(), now); err == nil {
		t.Error("expected error for empty id")
	}
	if _, err := New("id-1", testParams(), now); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEmbeddingText_SkipsEmptyFields(t *testing.T) {
	e, err := New("id-1", Params{Name: "Номын дэлгүүр", Category: "Retail"}, time.Now())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := e.EmbeddingText(), "Номын дэлгүүр Retail"; got != want {
		t.Errorf("EmbeddingText() = %q, want %q", got, want)
	}
}

func TestEmbeddingText_FieldOrder(t *testing.T) {
	e, err := New("id-1", testParams(), time.Now())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := "Green Leaf Restaurant Organic dining Seasonal menu Food & Dining Хан-Уул Улаанбаатар"
	if got := e.EmbeddingText(); got != want {
		t.Errorf("EmbeddingText() = %q, want %q", got, want)
	}
}

func TestIsEmbedded(t *testing.T) {
	now := time.Now()
	e, err := New("id-1", testParams(), now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if e.IsEmbedded() {
		t.Error("fresh entry should not be embedded")
	}

	embedded := e.WithEmbedding([]float32{0.1, 0.2}, now)
	if !embedded.IsEmbedded() {
		t.Error("entry with vector and timestamp should be embedded")
	}

	// Vector without timestamp is not eligible.
	if Reconstruct("id-1", testParams(), []float32{0.1}, nil, now, now).IsEmbedded() {
		t.Error("entry without embedded-at should not be eligible")
	}
	// Timestamp without vector is not eligible either.
	if Reconstruct("id-1", testParams(), nil, &now, now, now).IsEmbedded() {
		t.Error("entry without vector should not be eligible")
	}
}

func TestWithParams_DropsStaleEmbedding(t *testing.T) {
	now := time.Now()
	e, err := New("id-1", testParams(), now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e = e.WithEmbedding([]float32{0.1, 0.2}, now)

	p := e.Params()
	p.Summary = "Fully reworked menu"
	updated := e.WithParams(p, now.Add(time.Minute))

	if updated.IsEmbedded() {
		t.Error("embedding should be dropped when embedding text changes")
	}
}

func TestWithParams_KeepsEmbeddingOnNonSalientChange(t *testing.T) {
	now := time.Now()
	e, err := New("id-1", testParams(), now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e = e.WithEmbedding([]float32{0.1, 0.2}, now)

	p := e.Params()
	p.Phone = "+976-7010-9999" // not part of the embedding text
	updated := e.WithParams(p, now.Add(time.Minute))

	if !updated.IsEmbedded() {
		t.Error("embedding should survive a non-salient field change")
	}
	if updated.Phone() != "+976-7010-9999" {
		t.Errorf("phone not updated: %q", updated.Phone())
	}
}
