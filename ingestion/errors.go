package ingestion

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmbeddingCountMismatch is returned when the embedding service
	// answers a batch with a different number of vectors than requested.
	ErrEmbeddingCountMismatch = errors.New("embedding service returned wrong number of vectors")
)
