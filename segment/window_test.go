package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numberedText builds n unique sentences so every chunk occurs exactly once
// in the input and its position can be recovered.
func numberedText(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "Sentença única de número %03d.", i)
	}
	return b.String()
}

// chunkPositions locates each chunk in the input and fails if any chunk is
// not a verbatim substring. Positions are byte offsets.
func chunkPositions(t *testing.T, text string, chunks []string) []int {
	t.Helper()
	positions := make([]int, len(chunks))
	from := 0
	for i, chunk := range chunks {
		searchFrom := from - 2*len(chunk)
		if searchFrom < 0 {
			searchFrom = 0
		}
		idx := strings.Index(text[searchFrom:], chunk)
		require.GreaterOrEqual(t, idx, 0, "chunk %q not found in input", chunk)
		positions[i] = searchFrom + idx
		from = positions[i] + len(chunk)
	}
	return positions
}

// assertCovers checks that every non-space position of text falls inside at
// least one chunk, i.e. no content was silently dropped.
func assertCovers(t *testing.T, text string, chunks []string) {
	t.Helper()
	covered := make([]bool, len(text))
	for i, pos := range chunkPositions(t, text, chunks) {
		for j := pos; j < pos+len(chunks[i]); j++ {
			covered[j] = true
		}
	}
	for i, ok := range covered {
		if !ok && text[i] != ' ' {
			t.Fatalf("position %d (%q) not covered by any chunk", i, text[i])
		}
	}
}

func TestWindowChunker(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		c := WindowChunker{MaxChars: 900, Overlap: 150}
		assert.Equal(t, []string{"texto curto"}, c.Chunks("  texto curto "))
		assert.Empty(t, c.Chunks("   "))
	})

	t.Run("cuts at sentence boundaries within bounds", func(t *testing.T) {
		c := WindowChunker{MaxChars: 200, Overlap: 30}
		text := numberedText(40)
		chunks := c.Chunks(text)
		require.Greater(t, len(chunks), 1)
		for i, chunk := range chunks {
			assert.LessOrEqual(t, runeLen(chunk), c.MaxChars, "chunk %d over max", i)
		}
		assertCovers(t, text, chunks)
	})

	t.Run("consecutive chunks share trailing context", func(t *testing.T) {
		c := WindowChunker{MaxChars: 200, Overlap: 60}
		text := numberedText(40)
		chunks := c.Chunks(text)
		require.Greater(t, len(chunks), 1)
		positions := chunkPositions(t, text, chunks)
		for i := 1; i < len(positions); i++ {
			prevEnd := positions[i-1] + len(chunks[i-1])
			assert.Less(t, positions[i], prevEnd,
				"chunk %d starts after its predecessor ends, no shared context", i)
		}
	})

	t.Run("text without boundaries cuts at window edge", func(t *testing.T) {
		c := WindowChunker{MaxChars: 200, Overlap: 30}
		var b strings.Builder
		for i := 0; i < 80; i++ { // unique words, no ". " anywhere
			fmt.Fprintf(&b, "palavra%04d ", i)
		}
		text := strings.TrimSpace(b.String())
		chunks := c.Chunks(text)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, runeLen(chunk), c.MaxChars)
		}
		assertCovers(t, text, chunks)
	})

	t.Run("undersized remainder merges into previous chunk", func(t *testing.T) {
		c := WindowChunker{MinChars: 400, MaxChars: 900}
		// 18 sentences of exactly 99 runes: the window cuts after sentences
		// 8 and 16, leaving a 99-rune tail that folds into the second chunk.
		var sentences []string
		for i := 0; i < 18; i++ {
			sentences = append(sentences,
				fmt.Sprintf("Ementa número %02d %s.", i, strings.Repeat("x", 81)))
		}
		text := strings.Join(sentences, " ")
		chunks := c.Chunks(text)
		require.Len(t, chunks, 2)
		for _, chunk := range chunks {
			assert.GreaterOrEqual(t, runeLen(chunk), c.MinChars)
			assert.LessOrEqual(t, runeLen(chunk), c.MaxChars)
		}
		assert.Contains(t, chunks[1], "Ementa número 17")
	})

	t.Run("hard split is the last resort for boundary-free oversized text", func(t *testing.T) {
		c := WindowChunker{MinChars: 400, MaxChars: 900}
		text := strings.Repeat("x", 2000)
		chunks := c.Chunks(text)
		require.Len(t, chunks, 3)
		assert.Equal(t, 900, runeLen(chunks[0]))
		assert.Equal(t, 900, runeLen(chunks[1]))
		assert.Equal(t, 200, runeLen(chunks[2]))
	})

	t.Run("progress on pathological overlap", func(t *testing.T) {
		c := WindowChunker{MaxChars: 40, Overlap: 35}
		text := numberedText(20)
		chunks := c.Chunks(text)
		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, runeLen(chunk), c.MaxChars)
		}
	})
}
