package segment

import "strings"

// Section is one curriculum chunk together with the header it belongs to.
// Text always starts with Header: a retrieved curriculum chunk must be
// self-sufficient, so the header is repeated on every sub-chunk of a period
// that had to be split.
type Section struct {
	Header string
	Text   string
}

// SemesterSplitter chunks curriculum text one semester at a time. Lines are
// grouped into blocks, one per semester header; a block that fits within
// MaxChars is emitted whole, otherwise its body is re-chunked through a
// boundary-preferring character window of [MinChars, MaxChars] and the
// header is prepended to every resulting piece.
type SemesterSplitter struct {
	MinChars int
	MaxChars int
}

// Sections splits raw curriculum text into header-tagged chunks.
//
// The first block may have no semester header; its first line then acts as
// the header so the self-sufficiency rule still holds (typically an intro
// line such as "Disciplinas").
func (s SemesterSplitter) Sections(raw string) []Section {
	formatted := NormalizeLines(raw)
	if formatted == "" {
		return nil
	}

	classifier := NewLineClassifier()
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(formatted, "\n") {
		line = strings.TrimSpace(line)
		switch classifier.Classify(line) {
		case LineSeparator:
			continue
		case LineSemesterHeader:
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = []string{line}
		default:
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	window := WindowChunker{MinChars: s.MinChars, MaxChars: s.MaxChars}
	var sections []Section
	for _, block := range blocks {
		header := collapseWhitespace(block[0])
		if header == "" {
			continue
		}
		if len(block) == 1 {
			// Header with no disciplines still stands alone.
			sections = append(sections, Section{Header: header, Text: header})
			continue
		}
		body := collapseWhitespace(strings.Join(block[1:], " "))
		if body == "" {
			sections = append(sections, Section{Header: header, Text: header})
			continue
		}
		full := collapseWhitespace(header + " " + body)
		if runeLen(full) <= s.MaxChars {
			sections = append(sections, Section{Header: header, Text: full})
			continue
		}
		for _, sub := range window.Chunks(body) {
			composed := collapseWhitespace(header + " " + sub)
			sections = append(sections, Section{Header: header, Text: composed})
		}
	}
	return sections
}

// Chunks implements Chunker, discarding the header tags.
func (s SemesterSplitter) Chunks(text string) []string {
	sections := s.Sections(text)
	chunks := make([]string, 0, len(sections))
	for _, sec := range sections {
		chunks = append(chunks, sec.Text)
	}
	return chunks
}
