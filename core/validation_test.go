package core

import (
	"errors"
	"testing"
)

func TestValidateSnippet(t *testing.T) {
	tests := []struct {
		name    string
		snippet *Snippet
		wantErr error
	}{
		{
			name: "valid snippet",
			snippet: &Snippet{
				ID:        "a1",
				ArticleID: "101",
				Title:     "Design Digital",
				Category:  "graduacao",
				Field:     FieldObjective,
				Text:      "Formar designers.",
			},
			wantErr: nil,
		},
		{
			name: "valid snippet without catalog metadata",
			snippet: &Snippet{
				ID:   "a2",
				Text: "Trecho sem origem conhecida.",
			},
			wantErr: nil,
		},
		{
			name:    "nil snippet",
			snippet: nil,
			wantErr: ErrInvalidSnippet,
		},
		{
			name:    "missing id",
			snippet: &Snippet{Text: "texto"},
			wantErr: ErrInvalidSnippet,
		},
		{
			name:    "missing text",
			snippet: &Snippet{ID: "a3"},
			wantErr: ErrInvalidSnippet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnippet(tt.snippet)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSnippet() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSnippet() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSnippetEmptyTextError(t *testing.T) {
	err := ValidateSnippet(&Snippet{ID: "a"})
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("ValidateSnippet() = %v, want ErrEmptyText in chain", err)
	}
}
