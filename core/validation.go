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

import "fmt"

// ValidateSnippet validates a Snippet before it is appended to the store.
//
// Validation rules:
//   - ID must not be empty
//   - Text must not be empty
//
// NOT validated:
//   - ArticleID, Title, Category (the catalog omits them for some records;
//     the degrade-not-abort policy keeps such records indexable)
func ValidateSnippet(s *Snippet) error {
	if s == nil {
		return fmt.Errorf("%w: snippet is nil", ErrInvalidSnippet)
	}
	if s.ID == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidSnippet)
	}
	if s.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSnippet, ErrEmptyText)
	}
	return nil
}
