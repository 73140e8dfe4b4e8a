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


// Package search answers free-text queries against a built index.
//
// A Searcher embeds the query with the same model family that built the
// index, normalizes the vector and runs it through the store's exact scan.
// The embedding dimension is checked before scoring, so an index queried
// with the wrong model fails loudly instead of returning garbage rankings.
package search
