package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/poiesic/coursevec/ai/mock"
	"github.com/poiesic/coursevec/core"
	"github.com/poiesic/coursevec/index"
	"github.com/poiesic/coursevec/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtStore(t *testing.T) *index.Store {
	t.Helper()
	docs := []core.Document{
		{
			ID:    "101",
			Title: "Técnico em Informática",
			Fields: map[string]string{
				core.FieldObjective: "Formar profissionais de desenvolvimento de sistemas.",
			},
		},
		{
			ID:    "102",
			Title: "Gastronomia",
			Fields: map[string]string{
				core.FieldObjective: "Formar cozinheiros para restaurantes profissionais.",
			},
		},
	}
	builder, err := ingestion.NewBuilder(mock.NewEmbedder())
	require.NoError(t, err)
	store, err := builder.Build(context.Background(), docs)
	require.NoError(t, err)
	return store
}

func TestSearcherSearch(t *testing.T) {
	ctx := context.Background()
	searcher, err := NewSearcher(builtStore(t), mock.NewEmbedder())
	require.NoError(t, err)

	t.Run("identical text ranks first with full score", func(t *testing.T) {
		results, err := searcher.Search(ctx, "Formar cozinheiros para restaurantes profissionais.", 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "102", results[0].Snippet.ArticleID)
		assert.InDelta(t, 1.0, results[0].Score, 1e-5)
		assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	})

	t.Run("k beyond the stored count returns everything", func(t *testing.T) {
		results, err := searcher.Search(ctx, "culinária", 50)
		require.NoError(t, err)
		assert.Len(t, results, searcher.Len())
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		_, err := searcher.Search(ctx, "   ", 5)
		assert.ErrorIs(t, err, core.ErrEmptyText)
	})

	t.Run("mismatched embedding dimension fails", func(t *testing.T) {
		narrow := mock.NewEmbedder()
		narrow.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{1, 0}, nil
		}
		s, err := NewSearcher(builtStore(t), narrow)
		require.NoError(t, err)
		_, err = s.Search(ctx, "qualquer consulta", 3)
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})
}

func TestSearcherConstruction(t *testing.T) {
	t.Run("nil store is rejected", func(t *testing.T) {
		_, err := NewSearcher(nil, mock.NewEmbedder())
		assert.ErrorIs(t, err, ErrStoreRequired)
	})

	t.Run("nil embedder is rejected", func(t *testing.T) {
		_, err := NewSearcher(builtStore(t), nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})
}

func TestOpen(t *testing.T) {
	t.Run("loads a saved index", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "rag_index")
		require.NoError(t, builtStore(t).Save(dir))

		searcher, err := Open(dir, mock.NewEmbedder())
		require.NoError(t, err)
		assert.Equal(t, 2, searcher.Len())
	})

	t.Run("missing index maps to not found", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "nope"), mock.NewEmbedder())
		assert.ErrorIs(t, err, core.ErrIndexNotFound)
	})
}
