package segment

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	spaceRunPattern   = regexp.MustCompile(` +`)
	blankLinePattern  = regexp.MustCompile(`\n\s*\n+`)
)

// Normalize decodes HTML entities, strips tags, replaces non-breaking spaces
// and collapses all whitespace runs into single spaces. It is idempotent on
// already-clean input and returns "" for empty input, never an error.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := html.UnescapeString(raw)
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// NormalizeLines is the line-preserving variant used for curriculum text.
// Entities and tags are removed and horizontal whitespace is collapsed, but
// line breaks survive so the semester splitter can classify individual lines.
// Runs of blank lines collapse into a single line break.
func NormalizeLines(raw string) string {
	if raw == "" {
		return ""
	}
	s := html.UnescapeString(raw)
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = spaceRunPattern.ReplaceAllString(s, " ")
	s = blankLinePattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// collapseWhitespace flattens any whitespace run to a single space and trims.
func collapseWhitespace(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
