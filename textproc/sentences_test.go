package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		got := Sentences("First sentence. Second one! Third one? Fourth.")
		assert.Equal(t, []string{
			"First sentence.",
			"Second one!",
			"Third one?",
			"Fourth.",
		}, got)
	})

	t.Run("terminator stays attached", func(t *testing.T) {
		got := Sentences("Really?! Yes.")
		assert.Equal(t, []string{"Really?!", "Yes."}, got)
	})

	t.Run("no terminal punctuation returns whole text", func(t *testing.T) {
		got := Sentences("just a fragment with no ending")
		assert.Equal(t, []string{"just a fragment with no ending"}, got)
	})

	t.Run("trailing fragment without terminator is kept", func(t *testing.T) {
		got := Sentences("Done. and then some")
		assert.Equal(t, []string{"Done.", "and then some"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Sentences(""))
	})

	t.Run("whitespace-only input", func(t *testing.T) {
		assert.Nil(t, Sentences("   \n\t "))
	})

	t.Run("abbreviation-free ellipsis", func(t *testing.T) {
		got := Sentences("Wait... okay.")
		assert.Equal(t, []string{"Wait...", "okay."}, got)
	})

	t.Run("newlines count as whitespace", func(t *testing.T) {
		got := Sentences("Line one.\nLine two.")
		assert.Equal(t, []string{"Line one.", "Line two."}, got)
	})
}
