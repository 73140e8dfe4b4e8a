package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("strips tags and decodes entities", func(t *testing.T) {
		in := "<p>Forma&ccedil;&atilde;o em <b>Design</b>&nbsp;Digital</p>"
		assert.Equal(t, "Formação em Design Digital", Normalize(in))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		in := "  curso \t de \n\n  tecnologia  "
		assert.Equal(t, "curso de tecnologia", Normalize(in))
	})

	t.Run("replaces non-breaking spaces", func(t *testing.T) {
		assert.Equal(t, "a b", Normalize("a\u00a0b"))
	})

	t.Run("idempotent on clean input", func(t *testing.T) {
		clean := "Aprenda a desenvolver sistemas web."
		assert.Equal(t, clean, Normalize(clean))
		assert.Equal(t, clean, Normalize(Normalize(clean)))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   \n  "))
	})
}

func TestNormalizeLines(t *testing.T) {
	t.Run("preserves line breaks", func(t *testing.T) {
		in := "<p>1º semestre</p>\nLógica de Programação:\nintrodução   aos algoritmos"
		want := "1º semestre\nLógica de Programação:\nintrodução aos algoritmos"
		assert.Equal(t, want, NormalizeLines(in))
	})

	t.Run("collapses blank line runs", func(t *testing.T) {
		in := "primeira\n\n\n  \nsegunda"
		assert.Equal(t, "primeira\nsegunda", NormalizeLines(in))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", NormalizeLines(""))
	})
}
