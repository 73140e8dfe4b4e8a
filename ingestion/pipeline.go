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


package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/poiesic/coursevec/ai"
	"github.com/poiesic/coursevec/core"
	"github.com/poiesic/coursevec/index"
	"github.com/poiesic/coursevec/segment"
	"github.com/poiesic/coursevec/storage"
)

// Builder runs the index build pass over a loaded corpus. The pass walks
// documents in input order and fields in core.FieldNames order, so a given
// corpus always produces the same snippet sequence.
type Builder struct {
	embedder   ai.Embedder
	cfg        segment.Config
	bullets    bool
	category   string
	cache      storage.EmbeddingCache
	cacheModel string
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithChunking overrides the segmentation bounds.
func WithChunking(cfg segment.Config) Option {
	return func(b *Builder) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		b.cfg = cfg
		return nil
	}
}

// WithBulletChunks switches the prose fields from the sliding window to the
// bullet chunker, producing short self-contained items instead of windows.
// Curriculum text keeps its semester-aware treatment either way.
func WithBulletChunks() Option {
	return func(b *Builder) error {
		b.bullets = true
		return nil
	}
}

// WithCategory forces the campo metadata value on every snippet, replacing
// whatever category the catalog carries per course.
func WithCategory(campo string) Option {
	return func(b *Builder) error {
		b.category = campo
		return nil
	}
}

// WithEmbeddingCache attaches an embedding cache. Cached vectors are only
// valid for the model that produced them, so the model name is part of the
// cache key.
func WithEmbeddingCache(cache storage.EmbeddingCache, model string) Option {
	return func(b *Builder) error {
		b.cache = cache
		b.cacheModel = model
		return nil
	}
}

// NewBuilder creates a builder around the given embedder.
func NewBuilder(embedder ai.Embedder, opts ...Option) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	b := &Builder{
		embedder: embedder,
		cfg:      segment.DefaultConfig(),
		logger:   slog.Default().With("component", "ingestion"),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Build chunks and embeds every document and returns the populated store.
// An empty corpus fails with core.ErrNoCourses; a corpus whose fields
// normalize to nothing fails with core.ErrNoContent. Nothing is written to
// disk; persisting the store is the caller's decision.
func (b *Builder) Build(ctx context.Context, docs []core.Document) (*index.Store, error) {
	if len(docs) == 0 {
		return nil, core.ErrNoCourses
	}

	snippets := b.chunkDocuments(docs)
	if len(snippets) == 0 {
		return nil, core.ErrNoContent
	}
	b.logger.Info("corpus chunked", "courses", len(docs), "snippets", len(snippets))

	texts := make([]string, len(snippets))
	for i := range snippets {
		texts[i] = snippets[i].Text
	}
	vectors, err := b.embedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(snippets) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrEmbeddingCountMismatch, len(snippets), len(vectors))
	}

	store, err := index.NewStore(len(vectors[0]))
	if err != nil {
		return nil, err
	}
	for i := range snippets {
		if err := store.Append(core.NormalizeVector(vectors[i]), snippets[i]); err != nil {
			return nil, fmt.Errorf("snippet %d (%s): %w", i, snippets[i].ID, err)
		}
	}
	return store, nil
}

// chunkDocuments produces the snippet sequence for the corpus. Courses with
// empty or unusable fields contribute nothing; they are skipped, not fatal.
func (b *Builder) chunkDocuments(docs []core.Document) []core.Snippet {
	window := segment.WindowChunker{MaxChars: b.cfg.WindowMax, Overlap: b.cfg.WindowOverlap}
	bullet := segment.BulletChunker{MinLen: b.cfg.BulletMin, MaxLen: b.cfg.BulletMax}
	semester := segment.SemesterSplitter{MinChars: b.cfg.SectionMin, MaxChars: b.cfg.SectionMax}

	var snippets []core.Snippet
	for _, doc := range docs {
		campo := doc.Category
		if b.category != "" {
			campo = b.category
		}
		for _, field := range core.FieldNames {
			raw := doc.Field(field)
			if raw == "" {
				continue
			}

			var chunks []string
			if field == core.FieldCurriculum {
				chunks = semester.Chunks(raw)
			} else {
				text := segment.Normalize(raw)
				if text == "" {
					continue
				}
				if b.bullets {
					chunks = bullet.Chunks(text)
				} else {
					chunks = window.Chunks(text)
				}
			}

			for _, chunk := range chunks {
				snippets = append(snippets, core.Snippet{
					ID:        uuid.NewString(),
					ArticleID: doc.ID,
					Title:     doc.Title,
					Category:  campo,
					Field:     field,
					Text:      chunk,
				})
			}
		}
	}
	return snippets
}

// embedTexts embeds the chunk texts, going through the cache when one is
// attached. Cache failures degrade to cache misses; only the embedding
// service itself can fail the build.
func (b *Builder) embedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if b.cache == nil {
		return b.embedder.EmbedTexts(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	var missing []string
	var missingAt []int
	for i, text := range texts {
		vec, err := b.cache.Get(ctx, b.cacheModel, text)
		if err == nil {
			vectors[i] = vec
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			b.logger.Warn("embedding cache read failed", "err", err)
		}
		missing = append(missing, text)
		missingAt = append(missingAt, i)
	}
	b.logger.Info("embedding cache consulted", "hits", len(texts)-len(missing), "misses", len(missing))

	if len(missing) > 0 {
		fresh, err := b.embedder.EmbedTexts(ctx, missing)
		if err != nil {
			return nil, err
		}
		if len(fresh) != len(missing) {
			return nil, fmt.Errorf("%w: want %d, got %d", ErrEmbeddingCountMismatch, len(missing), len(fresh))
		}
		for j, at := range missingAt {
			vectors[at] = fresh[j]
			if err := b.cache.Put(ctx, b.cacheModel, texts[at], fresh[j]); err != nil {
				b.logger.Warn("embedding cache write failed", "err", err)
			}
		}
	}
	return vectors, nil
}
