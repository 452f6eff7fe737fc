// Package vector holds the similarity kernel used for in-process ranking.
package vector

import "math"

// Cosine computes the cosine similarity dot(a,b) / (|a|*|b|) of two
// equal-length vectors. If either magnitude is zero the result is 0; this is
// a defined edge case, not an error. Symmetric and deterministic.
func Cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
