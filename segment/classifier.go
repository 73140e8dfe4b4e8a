package segment

import (
	"regexp"
	"strings"
)

// LineKind classifies one line of curriculum text.
type LineKind int

const (
	// LineSemesterHeader marks the start of a curriculum period,
	// e.g. "4º semestre".
	LineSemesterHeader LineKind = iota + 1
	// LineDisciplineTitle is the name of a discipline within a semester.
	LineDisciplineTitle
	// LineDescription is ordinary descriptive text.
	LineDescription
	// LineSeparator is catalog markup noise ("|" column separators, blanks).
	LineSeparator
)

// classifier states
type classifierState int

const (
	stateAwaitingHeader classifierState = iota
	stateInSemester
	stateInDescription
)

var semesterHeaderPattern = regexp.MustCompile(`(?i)^\d+º\s+semestre`)

var (
	titleWithColonPattern = regexp.MustCompile(`^[A-Z][^:]*:`)
	titlePlainPattern     = regexp.MustCompile(`^[A-Z][^:]+$`)
)

// descriptionPrefixes are sentence openers the catalog uses for descriptive
// prose; a line starting with one of them is never a discipline title even
// when it is capitalized.
var descriptionPrefixes = []string{
	"Você ",
	"Esta disciplina",
	"Aqui, você",
	"Um dos diferenciais",
	"Disciplinas",
}

// LineClassifier is a finite-state classifier over curriculum lines. It
// walks the text top to bottom through three states: awaiting-header (before
// the first semester header), in-semester (after a header or title) and
// in-description (inside descriptive prose). A semester header is recognized
// in any state.
type LineClassifier struct {
	state classifierState
}

// NewLineClassifier returns a classifier in the awaiting-header state.
func NewLineClassifier() *LineClassifier {
	return &LineClassifier{state: stateAwaitingHeader}
}

// Classify tags one line and advances the classifier state.
func (c *LineClassifier) Classify(line string) LineKind {
	line = strings.TrimSpace(line)
	if line == "" || line == "|" || line == "||" {
		return LineSeparator
	}

	if semesterHeaderPattern.MatchString(line) {
		c.state = stateInSemester
		return LineSemesterHeader
	}

	if c.isTitle(line) {
		c.state = stateInSemester
		return LineDisciplineTitle
	}

	c.state = stateInDescription
	return LineDescription
}

func (c *LineClassifier) isTitle(line string) bool {
	if runeLen(line) <= 5 {
		return false
	}
	for _, prefix := range descriptionPrefixes {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return titleWithColonPattern.MatchString(line) || titlePlainPattern.MatchString(line)
}
