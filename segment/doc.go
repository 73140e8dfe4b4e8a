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


// Package segment turns raw course text into retrievable chunks.
//
// The pipeline is: Normalize (entity decoding, tag stripping, whitespace
// collapsing) -> Sentences -> one of two Chunker strategies:
//   - BulletChunker merges and wraps sentences into short bullet-sized items
//   - WindowChunker walks a character window with trailing-context overlap
//
// Curriculum text gets special treatment via SemesterSplitter, which groups
// lines under semester headers and repeats the header on every sub-chunk so a
// retrieved chunk always says which curriculum period it describes.
//
// All length bounds are measured in runes, not bytes; the catalog text is
// Portuguese and accented characters must count as one.
package segment
