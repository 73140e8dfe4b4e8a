// Package ingestion turns a course catalog JSON file into a searchable index.
//
// LoadCorpus reads the catalog and maps each course to a core.Document.
// Builder then runs the build pass: every document field is normalized,
// chunked by the segmenter appropriate for it, embedded, and appended to an
// index.Store as a vector/snippet pair. The pass is synchronous and
// single-writer; ordinal alignment between vectors and snippets is kept by
// construction, not by coordination.
//
// An optional embedding cache short-circuits the embedding service for
// chunks whose text has been embedded before under the same model.
package ingestion
