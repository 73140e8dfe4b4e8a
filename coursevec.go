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


// Package coursevec builds and queries semantic indexes over course catalog
// JSON files. It is the composition root: the sub-packages do the work and
// this package wires them together for embedding into other programs and for
// the coursevec command.
package coursevec

import (
	"context"
	"log/slog"

	"github.com/poiesic/coursevec/ai"
	"github.com/poiesic/coursevec/core"
	"github.com/poiesic/coursevec/ingestion"
	"github.com/poiesic/coursevec/search"
	"github.com/poiesic/coursevec/segment"
	"github.com/poiesic/coursevec/storage/badger"
)

// BuildConfig names the inputs and outputs of one index build.
type BuildConfig struct {
	// CorpusPath is the catalog JSON file to index.
	CorpusPath string

	// IndexDir is the directory the index is written to. It is replaced
	// atomically; a previous index stays intact until the new one is complete.
	IndexDir string

	// Model is the embedding model identifier, used to key the embedding
	// cache. It must match the model the embedder was built with.
	Model string

	// Campo, when set, overrides the campo metadata value on every snippet.
	Campo string

	// Bullets switches the prose fields to bullet chunking.
	Bullets bool

	// CachePath, when set, enables the on-disk embedding cache at that path.
	CachePath string

	// Chunking overrides the segmentation bounds when non-nil.
	Chunking *segment.Config
}

// QueryConfig names the parameters of one query.
type QueryConfig struct {
	// IndexDir is the directory holding a previously built index.
	IndexDir string

	// TopK is the maximum number of results to return.
	TopK int
}

// BuildIndex loads the corpus, builds the index and saves it to
// cfg.IndexDir. Returns the number of indexed snippets.
func BuildIndex(ctx context.Context, embedder ai.Embedder, cfg BuildConfig) (int, error) {
	docs, err := ingestion.LoadCorpus(cfg.CorpusPath)
	if err != nil {
		return 0, err
	}

	opts := []ingestion.Option{}
	if cfg.Campo != "" {
		opts = append(opts, ingestion.WithCategory(cfg.Campo))
	}
	if cfg.Bullets {
		opts = append(opts, ingestion.WithBulletChunks())
	}
	if cfg.Chunking != nil {
		opts = append(opts, ingestion.WithChunking(*cfg.Chunking))
	}
	if cfg.CachePath != "" {
		cache, err := badger.OpenCache(cfg.CachePath, false)
		if err != nil {
			return 0, err
		}
		defer func() {
			if err := cache.Close(); err != nil {
				slog.Default().Error("error closing embedding cache", "err", err)
			}
		}()
		opts = append(opts, ingestion.WithEmbeddingCache(cache, cfg.Model))
	}

	builder, err := ingestion.NewBuilder(embedder, opts...)
	if err != nil {
		return 0, err
	}
	store, err := builder.Build(ctx, docs)
	if err != nil {
		return 0, err
	}
	if err := store.Save(cfg.IndexDir); err != nil {
		return 0, err
	}
	return store.Len(), nil
}

// Query loads the index at cfg.IndexDir and returns the TopK snippets most
// similar to the query text, best first.
func Query(ctx context.Context, embedder ai.Embedder, query string, cfg QueryConfig) ([]*core.SearchResult, error) {
	searcher, err := search.Open(cfg.IndexDir, embedder)
	if err != nil {
		return nil, err
	}
	return searcher.Search(ctx, query, cfg.TopK)
}
