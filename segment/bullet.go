package segment

import "strings"

// BulletChunker produces short, bullet-sized items from sentence lists.
// Sentences longer than MaxLen are word-wrapped into pieces within the
// bounds; sentences shorter than MinLen are merged into the previous item
// when the combination still fits MaxLen. Words are never truncated, so a
// single word longer than MaxLen becomes an oversized item of its own.
type BulletChunker struct {
	MinLen int
	MaxLen int
}

// Chunks implements Chunker.
func (c BulletChunker) Chunks(text string) []string {
	var items []string
	for _, sent := range Sentences(text) {
		sent = collapseWhitespace(sent)
		if sent == "" {
			continue
		}
		switch n := runeLen(sent); {
		case n > c.MaxLen:
			items = append(items, c.wrap(sent)...)
		case n < c.MinLen && len(items) > 0:
			combined := items[len(items)-1] + " " + sent
			if runeLen(combined) <= c.MaxLen {
				items[len(items)-1] = combined
			} else {
				items = append(items, sent)
			}
		default:
			items = append(items, sent)
		}
	}
	return items
}

// wrap splits an oversized sentence at word boundaries into pieces of at
// most MaxLen runes, then merges undersized pieces with their successor as
// long as the pair stays within twice MaxLen.
func (c BulletChunker) wrap(sent string) []string {
	var pieces []string
	var current strings.Builder
	currentLen := 0
	for _, word := range strings.Fields(sent) {
		wordLen := runeLen(word)
		tentative := currentLen + wordLen
		if currentLen > 0 {
			tentative++ // joining space
		}
		if tentative <= c.MaxLen {
			if currentLen > 0 {
				current.WriteByte(' ')
			}
			current.WriteString(word)
			currentLen = tentative
			continue
		}
		if currentLen > 0 {
			pieces = append(pieces, current.String())
		}
		current.Reset()
		current.WriteString(word)
		currentLen = wordLen
	}
	if currentLen > 0 {
		pieces = append(pieces, current.String())
	}

	var merged []string
	for i := 0; i < len(pieces); {
		cur := pieces[i]
		if runeLen(cur) < c.MinLen && i+1 < len(pieces) {
			combo := cur + " " + pieces[i+1]
			if runeLen(combo) <= c.MaxLen*2 {
				merged = append(merged, combo)
				i += 2
				continue
			}
		}
		merged = append(merged, cur)
		i++
	}
	return merged
}
