package core

import (
	"encoding/json"
	"testing"
)

func TestSnippetJSONKeys(t *testing.T) {
	// The JSON key names are the on-disk metadata contract; renaming a Go
	// field must not rename a key.
	s := Snippet{
		ID:        "a1",
		ArticleID: "101",
		Title:     "Design Digital",
		Category:  "graduacao",
		Field:     FieldObjective,
		Text:      "Formar designers.",
	}
	data, err := json.Marshal(&s)
	if err != nil {
		t.Fatal(err)
	}

	var keys map[string]string
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "articleId", "nomeCurso", "campo", "field", "text"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("marshaled snippet missing key %q", key)
		}
	}
	if keys["nomeCurso"] != "Design Digital" {
		t.Errorf("nomeCurso = %q, want course title", keys["nomeCurso"])
	}
	if keys["campo"] != "graduacao" {
		t.Errorf("campo = %q, want category", keys["campo"])
	}
}

func TestDocumentField(t *testing.T) {
	doc := Document{Fields: map[string]string{FieldObjective: "texto"}}
	if got := doc.Field(FieldObjective); got != "texto" {
		t.Errorf("Field() = %q, want %q", got, "texto")
	}
	if got := doc.Field(FieldCurriculum); got != "" {
		t.Errorf("Field() on absent field = %q, want empty", got)
	}

	var empty Document
	if got := empty.Field(FieldObjective); got != "" {
		t.Errorf("Field() on nil map = %q, want empty", got)
	}
}
