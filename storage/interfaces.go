package storage

import "context"

// EmbeddingCache memoizes embedding vectors keyed by model and input text.
// Implementations must be thread-safe.
type EmbeddingCache interface {
	// Get returns the cached vector for (model, text).
	// Returns ErrNotFound when the pair has never been stored.
	Get(ctx context.Context, model, text string) ([]float32, error)

	// Put stores the vector for (model, text), overwriting any previous value.
	Put(ctx context.Context, model, text string, vector []float32) error

	// Close releases resources held by the cache.
	Close() error
}
