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


// Package storage provides the embedding cache abstraction for coursevec.
//
// Rebuilding an index re-embeds every chunk; the embedding service is by far
// the slowest part of that loop. EmbeddingCache memoizes embeddings keyed by
// (model, text) so unchanged chunks are served locally on the next build.
// The cache is strictly an accelerator: a build with no cache, a cold cache
// or a broken cache produces the same index.
//
// Public constructors return the EmbeddingCache interface to keep callers
// decoupled from the backing store; the only production implementation lives
// in storage/badger.
//
// # Usage
//
//	cache, err := badger.OpenCache("/path/to/cache", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
// Use in tests with in-memory storage:
//
//	cache, err := badger.OpenCache("", true)
package storage
