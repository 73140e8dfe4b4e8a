// Package mock provides a deterministic test double for ai.Embedder.
//
// The mock generates pseudo-random unit vectors seeded by the input text, so
// the same text always embeds to the same vector and tests run without an
// embedding service.
//
// # Usage in Tests
//
//	embedder := mock.NewEmbedder()
//	vec, err := embedder.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
//	    return nil, errors.New("service down")
//	}
//
//	// Check call counts
//	count := embedder.CallCount()
package mock
