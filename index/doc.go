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


// Package index implements the exact vector index and its on-disk form.
//
// Flat is a brute-force inner-product index: with unit vectors the inner
// product equals cosine similarity, so search is an exhaustive scan followed
// by a sort. Exactness is the point; catalog corpora are small enough that
// approximate structures would only add moving parts.
//
// Store pairs a Flat with the snippet metadata it indexes. Vectors and
// snippets are appended together through a single operation, so the ordinal
// of a vector is always the ordinal of its snippet. On disk a store is a
// directory holding vectors.bin (binary, MUS-encoded) and metadata.jsonl
// (one snippet per line, in ordinal order); Save replaces that directory
// atomically.
package index
