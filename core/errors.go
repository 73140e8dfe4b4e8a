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


package core

import "errors"

// Domain errors
var (
	// ErrNoCourses indicates the corpus JSON has no "cursos" key or it is empty.
	ErrNoCourses = errors.New(`corpus does not contain key "cursos" or it is empty`)

	// ErrNoContent indicates an otherwise valid corpus produced zero chunks.
	ErrNoContent = errors.New("no textual content found to index")

	// ErrIndexNotFound indicates the index artifacts are missing at query time.
	ErrIndexNotFound = errors.New("index not found, build it first")

	// ErrDimensionMismatch indicates a vector's dimension does not match the index.
	ErrDimensionMismatch = errors.New("vector dimension does not match index")

	// ErrInvalidDimension indicates a non-positive embedding dimension.
	ErrInvalidDimension = errors.New("embedding dimension must be positive")

	// ErrInvalidSnippet indicates a Snippet failed validation.
	ErrInvalidSnippet = errors.New("invalid snippet")

	// ErrEmptyText indicates text input that is empty or all whitespace.
	ErrEmptyText = errors.New("text cannot be empty")
)
