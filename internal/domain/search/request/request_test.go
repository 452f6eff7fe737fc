package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/Baterdene23/yellbook/internal/domain"
)

func TestNew_TrimsQuery(t *testing.T) {
	r, err := New("  ресторан  ", 10, true, Limits{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "ресторан" {
		t.Errorf("expected trimmed query, got %q", r.Query())
	}
	if r.Limit() != 10 {
		t.Errorf("expected limit 10, got %d", r.Limit())
	}
	if !r.UseCache() {
		t.Error("expected useCache true")
	}
}

func TestNew_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := New(q, 5, true, Limits{}); !errors.Is(err, domain.ErrInvalidQuery) {
			t.Errorf("New(%q): expected ErrInvalidQuery, got %v", q, err)
		}
	}
}

func TestNew_TooLong(t *testing.T) {
	q := strings.Repeat("x", DefaultMaxQueryLen+1)
	if _, err := New(q, 5, true, Limits{}); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestNew_ExactMaxLength(t *testing.T) {
	q := strings.Repeat("x", DefaultMaxQueryLen)
	if _, err := New(q, 5, true, Limits{}); err != nil {
		t.Fatalf("query of exactly %d chars should pass: %v", DefaultMaxQueryLen, err)
	}
}

func TestNew_MaxLengthCountsRunes(t *testing.T) {
	// Multibyte characters count as one character, not one byte.
	q := strings.Repeat("ё", DefaultMaxQueryLen)
	if _, err := New(q, 5, true, Limits{}); err != nil {
		t.Fatalf("multibyte query of %d runes should pass: %v", DefaultMaxQueryLen, err)
	}
}

func TestNew_DefaultLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		r, err := New("query", limit, false, Limits{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Limit() != DefaultLimit {
			t.Errorf("New(limit=%d): expected default limit %d, got %d", limit, DefaultLimit, r.Limit())
		}
	}
}

func TestNew_ConfiguredLimits(t *testing.T) {
	limits := Limits{DefaultLimit: 3, MaxQueryLen: 10}

	r, err := New("query", 0, true, limits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != 3 {
		t.Errorf("expected configured default limit 3, got %d", r.Limit())
	}

	if _, err := New(strings.Repeat("x", 11), 5, true, limits); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("11-char query over a 10-char bound: expected ErrInvalidQuery, got %v", err)
	}
	if _, err := New(strings.Repeat("x", 10), 5, true, limits); err != nil {
		t.Fatalf("10-char query at the bound should pass: %v", err)
	}
}

func TestNew_ZeroLimitsFallBackToDefaults(t *testing.T) {
	q := strings.Repeat("x", DefaultMaxQueryLen)
	r, err := New(q, 0, true, Limits{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("expected package default limit %d, got %d", DefaultLimit, r.Limit())
	}
}
