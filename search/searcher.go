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


package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/coursevec/ai"
	"github.com/poiesic/coursevec/core"
	"github.com/poiesic/coursevec/index"
)

// Searcher answers free-text queries against one loaded index store.
type Searcher struct {
	store    *index.Store
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a searcher over an already loaded store.
func NewSearcher(store *index.Store, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		store:    store,
		embedder: embedder,
		logger:   slog.Default().With("component", "searcher"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Open loads the index stored at dir and returns a searcher over it.
// A directory without index files maps to core.ErrIndexNotFound.
func Open(dir string, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	store, err := index.Load(dir)
	if err != nil {
		return nil, err
	}
	return NewSearcher(store, embedder, opts...)
}

// Len returns the number of indexed snippets.
func (s *Searcher) Len() int {
	return s.store.Len()
}

// Search returns the k snippets most similar to the query, best first.
// k is clamped to the number of indexed snippets. A query that embeds to a
// different dimension than the index fails with core.ErrDimensionMismatch.
func (s *Searcher) Search(ctx context.Context, query string, k int) ([]*core.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query", core.ErrEmptyText)
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	results, err := s.store.Search(core.NormalizeVector(vector), k)
	if err != nil {
		s.logger.Error("error scanning index", "err", err)
		return nil, err
	}
	s.logger.Debug("query answered", "query", query, "hits", len(results))
	return results, nil
}
