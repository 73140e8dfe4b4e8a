// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package index

import (
	"fmt"
	"slices"

	"github.com/poiesic/coursevec/core"
)

// Flat is an exact inner-product index over fixed-dimension vectors.
// Vectors are stored in insertion order; the position of a vector is its
// ordinal. Flat is not safe for concurrent mutation.
type Flat struct {
	dim     int
	vectors [][]float32
}

// Hit is one search match: the ordinal of a stored vector and its inner
// product with the query.
type Hit struct {
	Ordinal int
	Score   float32
}

// NewFlat creates an empty index for vectors of the given dimension.
func NewFlat(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", core.ErrInvalidDimension, dim)
	}
	return &Flat{dim: dim}, nil
}

// Dim returns the vector dimension the index accepts.
func (f *Flat) Dim() int {
	return f.dim
}

// Len returns the number of stored vectors.
func (f *Flat) Len() int {
	return len(f.vectors)
}

// Add appends a vector to the index. Its ordinal is the Len before the call.
func (f *Flat) Add(vector []float32) error {
	if len(vector) != f.dim {
		return fmt.Errorf("%w: got %d, index holds %d", core.ErrDimensionMismatch, len(vector), f.dim)
	}
	f.vectors = append(f.vectors, vector)
	return nil
}

// Vector returns the stored vector at the given ordinal.
func (f *Flat) Vector(ordinal int) []float32 {
	return f.vectors[ordinal]
}

// Search scans every stored vector and returns the k highest inner products,
// best first. k is clamped to Len; ties keep ascending ordinal order.
func (f *Flat) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != f.dim {
		return nil, fmt.Errorf("%w: query has %d, index holds %d", core.ErrDimensionMismatch, len(query), f.dim)
	}
	if k <= 0 || f.Len() == 0 {
		return nil, nil
	}
	if k > f.Len() {
		k = f.Len()
	}

	hits := make([]Hit, len(f.vectors))
	for i, vec := range f.vectors {
		hits[i] = Hit{Ordinal: i, Score: dotProduct(query, vec)}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Ordinal - b.Ordinal
	})
	return hits[:k], nil
}

// dotProduct computes the inner product of two equal-length vectors.
// For unit vectors this is the cosine similarity.
func dotProduct(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
