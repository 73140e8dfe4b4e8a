package core

import "math"

// NormalizeVector scales v to unit length and returns the result as a new
// slice. A zero vector has no direction and comes back as a zero vector of
// the same length.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}

	out := make([]float32, len(v))
	if sum == 0 {
		return out
	}
	inv := float32(1.0 / math.Sqrt(sum))
	for i, x := range v {
		out[i] = x * inv
	}
	return out
}
