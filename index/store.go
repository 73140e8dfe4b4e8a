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
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/coursevec/core"
)

const (
	// VectorsFile is the name of the vector block inside a store directory.
	VectorsFile = "vectors.bin"
	// MetadataFile is the name of the snippet block inside a store directory.
	MetadataFile = "metadata.jsonl"
)

// Store pairs a Flat index with the snippets it indexes. The vector at
// ordinal i always describes the snippet at ordinal i: both sides grow only
// through Append, which adds them together or not at all.
type Store struct {
	flat     *Flat
	snippets []core.Snippet
	logger   *slog.Logger
}

// NewStore creates an empty store for vectors of the given dimension.
func NewStore(dim int) (*Store, error) {
	flat, err := NewFlat(dim)
	if err != nil {
		return nil, err
	}
	return &Store{
		flat:   flat,
		logger: slog.Default().With("component", "index-store"),
	}, nil
}

// Dim returns the vector dimension the store accepts.
func (s *Store) Dim() int {
	return s.flat.Dim()
}

// Len returns the number of snippet/vector pairs.
func (s *Store) Len() int {
	return s.flat.Len()
}

// Snippet returns the snippet at the given ordinal.
func (s *Store) Snippet(ordinal int) *core.Snippet {
	return &s.snippets[ordinal]
}

// Append adds one vector/snippet pair. The snippet is validated and the
// vector dimension checked before either side is touched.
func (s *Store) Append(vector []float32, snippet core.Snippet) error {
	if err := core.ValidateSnippet(&snippet); err != nil {
		return err
	}
	if err := s.flat.Add(vector); err != nil {
		return err
	}
	s.snippets = append(s.snippets, snippet)
	return nil
}

// Search returns the k snippets most similar to the query vector, best
// first, with their scores. k is clamped to Len.
func (s *Store) Search(query []float32, k int) ([]*core.SearchResult, error) {
	hits, err := s.flat.Search(query, k)
	if err != nil {
		return nil, err
	}
	results := make([]*core.SearchResult, len(hits))
	for i, hit := range hits {
		results[i] = &core.SearchResult{
			Snippet: &s.snippets[hit.Ordinal],
			Score:   hit.Score,
		}
	}
	return results, nil
}

// Save writes the store to dir, replacing any previous contents atomically:
// both files are written to a scratch directory first, which is then renamed
// over dir. A crash mid-save leaves either the old index or the new one,
// never a torn mix.
func (s *Store) Save(dir string) error {
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return err
	}
	scratch, err := os.MkdirTemp(parent, filepath.Base(dir)+".tmp-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	if err := os.WriteFile(filepath.Join(scratch, VectorsFile), marshalVectors(s.Dim(), s.flat.vectors), 0644); err != nil {
		return err
	}
	if err := s.writeMetadata(filepath.Join(scratch, MetadataFile)); err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	if err := os.Rename(scratch, dir); err != nil {
		return err
	}
	s.logger.Info("index saved", "dir", dir, "snippets", s.Len(), "dim", s.Dim())
	return nil
}

func (s *Store) writeMetadata(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i := range s.snippets {
		if err := enc.Encode(&s.snippets[i]); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a store previously written by Save. A missing directory or
// missing file maps to core.ErrIndexNotFound; a count disagreement between
// the two files is corruption and fails with ErrCountMismatch.
func Load(dir string) (*Store, error) {
	raw, err := os.ReadFile(filepath.Join(dir, VectorsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrIndexNotFound, dir)
		}
		return nil, err
	}
	dim, vectors, err := unmarshalVectors(raw)
	if err != nil {
		return nil, err
	}

	snippets, err := readMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrIndexNotFound, dir)
		}
		return nil, err
	}
	if len(snippets) != len(vectors) {
		return nil, fmt.Errorf("%w: %d vectors, %d snippets", ErrCountMismatch, len(vectors), len(snippets))
	}

	store, err := NewStore(dim)
	if err != nil {
		return nil, err
	}
	store.flat.vectors = vectors
	store.snippets = snippets
	store.logger.Debug("index loaded", "dir", dir, "snippets", store.Len(), "dim", dim)
	return store, nil
}

func readMetadata(path string) ([]core.Snippet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var snippets []core.Snippet
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var snippet core.Snippet
		if err := json.Unmarshal(line, &snippet); err != nil {
			return nil, err
		}
		snippets = append(snippets, snippet)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return snippets, nil
}
