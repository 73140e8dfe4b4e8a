package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/coursevec/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder talks to an OpenAI-compatible embeddings endpoint (Ollama, vLLM,
// OpenAI itself) through langchaingo.
type Embedder struct {
	client embeddings.Embedder
	logger *slog.Logger
}

// NewEmbedder creates an embedder from the configuration. It returns the
// ai.Embedder interface rather than the concrete type.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Local services such as Ollama accept any token.
	llm, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}

	client, err := embeddings.NewEmbedder(llm, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	return &Embedder{
		client: client,
		logger: slog.Default().With("component", "openai-embedder"),
	}, nil
}

// EmbedText embeds a single text.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		e.logger.Warn("embedding endpoint returned no vectors")
		return []float32{}, nil
	}
	return vectors[0], nil
}

// EmbedTexts embeds texts in a single batch request.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("embedding batch", "count", len(texts))

	vectors, err := e.client.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("embedding batch failed", "count", len(texts), "err", err)
		return nil, err
	}
	return vectors, nil
}
