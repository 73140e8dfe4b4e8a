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


package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/coursevec/core"
)

// rawDisplay mirrors the nested presentation block of a catalog course.
type rawDisplay struct {
	Title    string `json:"title"`
	TipoName string `json:"tipoName"`
}

// rawCourse mirrors one course entry of the catalog JSON. ArticleID is kept
// raw because the catalog emits it both as a number and as a string.
type rawCourse struct {
	ArticleID           json.RawMessage `json:"articleId"`
	Title               string          `json:"title"`
	ToDisplay           rawDisplay      `json:"toDisplay"`
	ObjetivoComercial   string          `json:"objetivoComercial"`
	ComoVouAprender     string          `json:"comoVouAprender"`
	PossoFazerEsseCurso string          `json:"possoFazerEsseCurso"`
	OqueVouAprender     string          `json:"oqueVouAprender"`
}

type corpusFile struct {
	Cursos []rawCourse `json:"cursos"`
}

// LoadCorpus reads a catalog JSON file and maps each course to a Document.
// An absent or empty "cursos" key fails with core.ErrNoCourses.
func LoadCorpus(path string) ([]core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCorpus(data)
}

// ParseCorpus decodes catalog JSON bytes into documents.
func ParseCorpus(data []byte) ([]core.Document, error) {
	var file corpusFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	if len(file.Cursos) == 0 {
		return nil, core.ErrNoCourses
	}

	docs := make([]core.Document, len(file.Cursos))
	for i := range file.Cursos {
		docs[i] = file.Cursos[i].toDocument()
	}
	return docs, nil
}

func (c *rawCourse) toDocument() core.Document {
	title := c.Title
	if title == "" {
		title = c.ToDisplay.Title
	}
	return core.Document{
		ID:       articleIDString(c.ArticleID),
		Title:    title,
		Category: c.ToDisplay.TipoName,
		Fields: map[string]string{
			core.FieldObjective:   c.ObjetivoComercial,
			core.FieldMethodology: c.ComoVouAprender,
			core.FieldEligibility: c.PossoFazerEsseCurso,
			core.FieldCurriculum:  c.OqueVouAprender,
		},
	}
}

// articleIDString renders the raw articleId as a string whether the catalog
// stored it as a JSON string or a number.
func articleIDString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
