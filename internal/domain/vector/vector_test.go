package vector

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestCosine_Identical(t *testing.T) {
	vecs := [][]float32{
		{1, 0, 0},
		{0.5, 0.25, 0.125},
		{3, -4, 12, 0.5},
	}
	for _, v := range vecs {
		if got := Cosine(v, v); math.Abs(got-1) > tolerance {
			t.Errorf("Cosine(v, v) = %v, want 1 for %v", got, v)
		}
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	v := []float32{1, 2, 3}
	z := []float32{0, 0, 0}

	if got := Cosine(v, z); got != 0 {
		t.Errorf("Cosine(v, zero) = %v, want 0", got)
	}
	if got := Cosine(z, v); got != 0 {
		t.Errorf("Cosine(zero, v) = %v, want 0", got)
	}
	if got := Cosine(z, z); got != 0 {
		t.Errorf("Cosine(zero, zero) = %v, want 0", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	if got := Cosine(a, b); math.Abs(got) > tolerance {
		t.Errorf("Cosine(orthogonal) = %v, want 0", got)
	}
}

func TestCosine_Symmetric(t *testing.T) {
	a := []float32{0.3, 0.1, 0.9, 0.2}
	b := []float32{0.8, 0.4, 0.1, 0.6}

	if ab, ba := Cosine(a, b), Cosine(b, a); ab != ba {
		t.Errorf("Cosine not symmetric: %v != %v", ab, ba)
	}
}

func TestCosine_Opposite(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-1, -2, -3}

	if got := Cosine(a, b); math.Abs(got+1) > tolerance {
		t.Errorf("Cosine(v, -v) = %v, want -1", got)
	}
}

func TestCosine_ScaleInvariant(t *testing.T) {
	a := []float32{1, 2, 3}
	scaled := []float32{10, 20, 30}

	if got := Cosine(a, scaled); math.Abs(got-1) > tolerance {
		t.Errorf("Cosine(v, 10v) = %v, want 1", got)
	}
}
