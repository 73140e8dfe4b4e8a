package segment

import (
	"regexp"
	"strings"
	"unicode"
)

var linebreakPattern = regexp.MustCompile(`\s*\n\s*`)

// Sentences splits normalized text into sentence units. Embedded line breaks
// become spaces, then the text is cut after every '.', '!' or '?' that is
// immediately followed by whitespace. Returned sentences are trimmed and
// non-empty; empty input yields an empty list.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSpace(linebreakPattern.ReplaceAllString(text, " "))
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isSentenceEnd(runes[i]) {
			continue
		}
		if i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		// Skip the whitespace run that terminated the sentence.
		i++
		for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			i++
		}
		start = i + 1
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
