package segment

import "strings"

// WindowChunker accumulates text into character windows of up to MaxChars
// runes. Each window prefers to end at a sentence boundary (". ") located in
// its back half; when none exists the window is cut at its edge and the next
// window starts Overlap runes earlier, so consecutive chunks share trailing
// context. The start position strictly increases every iteration.
//
// When MinChars > 0, a final remainder shorter than MinChars is merged into
// the previous chunk if the combination stays within 2*MaxChars. A closing
// pass hard-splits any chunk still over MaxChars by character offset; that is
// the only lossy path and it only triggers after such a merge or on text with
// no usable boundaries.
type WindowChunker struct {
	MinChars int
	MaxChars int
	Overlap  int
}

// Chunks implements Chunker.
func (c WindowChunker) Chunks(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= c.MaxChars {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + c.MaxChars
		if end > len(runes) {
			end = len(runes)
		}
		cut := end
		if b := lastBoundary(runes, start, end); b > start+c.MaxChars/2 {
			cut = b + 1 // keep the period with its sentence
		}
		if chunk := strings.TrimSpace(string(runes[start:cut])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		next := cut - c.Overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	chunks = c.mergeTail(chunks)
	return c.hardSplit(chunks)
}

// lastBoundary returns the index of the last ". " whose period lies in
// [start, end), or -1.
func lastBoundary(runes []rune, start, end int) int {
	for i := end - 2; i >= start; i-- {
		if runes[i] == '.' && runes[i+1] == ' ' {
			return i
		}
	}
	return -1
}

// mergeTail folds an undersized final remainder into the previous chunk.
func (c WindowChunker) mergeTail(chunks []string) []string {
	if c.MinChars <= 0 || len(chunks) < 2 {
		return chunks
	}
	last := chunks[len(chunks)-1]
	if runeLen(last) >= c.MinChars {
		return chunks
	}
	merged := chunks[len(chunks)-2] + " " + last
	if runeLen(merged) <= c.MaxChars*2 {
		chunks = chunks[:len(chunks)-1]
		chunks[len(chunks)-1] = merged
	}
	return chunks
}

// hardSplit cuts any remaining oversized chunk at raw character offsets.
func (c WindowChunker) hardSplit(chunks []string) []string {
	fixed := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		runes := []rune(chunk)
		if len(runes) <= c.MaxChars {
			fixed = append(fixed, chunk)
			continue
		}
		for start := 0; start < len(runes); start += c.MaxChars {
			end := start + c.MaxChars
			if end > len(runes) {
				end = len(runes)
			}
			if piece := strings.TrimSpace(string(runes[start:end])); piece != "" {
				fixed = append(fixed, piece)
			}
		}
	}
	return fixed
}
