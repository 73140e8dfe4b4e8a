package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed.example:9100/v1"),
			WithEmbeddingModel("text-embedding-3-small"),
		)
		assert.Equal(t, "http://embed.example:9100/v1", cfg.EmbeddingHost)
		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	})

	t.Run("default has no model", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Empty(t, cfg.EmbeddingModel)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("appends v1 suffix", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash before appending", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434/"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves canonical host untouched", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434/v1"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingModel("embeddinggemma"))
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing model fails", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing host fails", func(t *testing.T) {
		cfg := &Config{EmbeddingModel: "embeddinggemma"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes the host", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434", EmbeddingModel: "embeddinggemma"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})
}
