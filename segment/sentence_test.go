package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		in := "Primeira frase. Segunda frase! Terceira frase? Quarta"
		want := []string{"Primeira frase.", "Segunda frase!", "Terceira frase?", "Quarta"}
		assert.Equal(t, want, Sentences(in))
	})

	t.Run("line breaks become spaces", func(t *testing.T) {
		in := "Uma frase\nque continua. Outra\nfrase."
		want := []string{"Uma frase que continua.", "Outra frase."}
		assert.Equal(t, want, Sentences(in))
	})

	t.Run("punctuation without following space does not split", func(t *testing.T) {
		in := "Versão 2.0 do curso. Fim."
		want := []string{"Versão 2.0 do curso.", "Fim."}
		assert.Equal(t, want, Sentences(in))
	})

	t.Run("consecutive separators collapse", func(t *testing.T) {
		in := "Alpha.   Beta.  "
		want := []string{"Alpha.", "Beta."}
		assert.Equal(t, want, Sentences(in))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Sentences(""))
		assert.Empty(t, Sentences("   \n "))
	})
}
