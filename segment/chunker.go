package segment

import "unicode/utf8"

// Chunker splits normalized text into retrievable units. Implementations
// must not lose content: concatenating the returned chunks reconstructs the
// input modulo declared overlaps, except for WindowChunker's explicit
// hard-split fallback.
type Chunker interface {
	Chunks(text string) []string
}

// Config carries the chunking thresholds for a build. The values are
// empirically tuned per corpus, so they are configuration rather than
// constants baked into the chunkers.
type Config struct {
	BulletMin     int // minimum bullet item length, runes
	BulletMax     int // maximum bullet item length, runes
	WindowMax     int // character window size for free-text fields, runes
	WindowOverlap int // trailing context shared between consecutive windows, runes
	SectionMin    int // lower bound for curriculum section chunks, runes
	SectionMax    int // upper bound for curriculum section chunks, runes
}

// DefaultConfig returns the thresholds tuned for the SENAC course catalog.
func DefaultConfig() Config {
	return Config{
		BulletMin:     80,
		BulletMax:     140,
		WindowMax:     900,
		WindowOverlap: 150,
		SectionMin:    400,
		SectionMax:    900,
	}
}

// Validate checks the thresholds are usable.
func (c Config) Validate() error {
	if c.BulletMin < 1 || c.BulletMax < c.BulletMin {
		return ErrBadBulletBounds
	}
	if c.WindowMax < 2 {
		return ErrBadWindowBounds
	}
	if c.WindowOverlap < 0 || c.WindowOverlap >= c.WindowMax {
		return ErrBadOverlap
	}
	if c.SectionMin < 1 || c.SectionMax < c.SectionMin {
		return ErrBadSectionBounds
	}
	return nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
