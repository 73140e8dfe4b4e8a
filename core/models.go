package core

// Field names under which course text is indexed. They match the metadata
// vocabulary of the source catalog, so persisted artifacts stay queryable by
// the same names the catalog uses.
const (
	FieldObjective   = "objetivo"
	FieldMethodology = "metodologia"
	FieldEligibility = "requisitos"
	FieldCurriculum  = "conteudo"
)

// FieldNames lists the indexable fields in the order they are processed
// during a build. The order is part of the ordinal contract: changing it
// changes which vector ordinal a given snippet receives.
var FieldNames = []string{
	FieldObjective,
	FieldMethodology,
	FieldEligibility,
	FieldCurriculum,
}

// Document is one course record read from the catalog JSON.
// Absent fields are represented as empty strings, never as missing keys.
type Document struct {
	ID       string            // catalog articleId
	Title    string            // course name
	Category string            // catalog tipoName, possibly overridden at build time
	Fields   map[string]string // raw field text keyed by Field* names
}

// Field returns the raw text of the named field, or "" if absent.
func (d *Document) Field(name string) string {
	if d.Fields == nil {
		return ""
	}
	return d.Fields[name]
}

// Chunk is a bounded span of normalized text produced by the segmentation
// pass. Chunks are transient: they exist only while a build is running.
type Chunk struct {
	Field  string // source field name
	Seq    int    // position within that field's chunk sequence
	Header string // semester header for curriculum chunks, "" otherwise
	Text   string
}

// Snippet is the metadata record persisted for each indexed chunk.
// Records are written to the metadata log in the exact order their vectors
// are added to the index; the line number is the only join key.
type Snippet struct {
	ID        string `json:"id"`
	ArticleID string `json:"articleId"`
	Title     string `json:"nomeCurso"`
	Category  string `json:"campo"`
	Field     string `json:"field"`
	Text      string `json:"text"`
}

// SearchResult pairs a snippet with its similarity score for a query.
// Scores are inner products of unit vectors, i.e. cosine similarities.
type SearchResult struct {
	Snippet *Snippet
	Score   float32
}
