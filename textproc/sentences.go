package textproc

import (
	"regexp"
	"strings"
)

// sentenceEnd matches a run of sentence-terminal punctuation followed by
// whitespace or end of input. The terminator stays attached to its sentence.
var sentenceEnd = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// Sentences segments text into an ordered sequence of sentences. Text with
// no terminal punctuation comes back as a single sentence; empty or
// whitespace-only input comes back as nil. Whitespace-only fragments between
// terminators are dropped. There are no error conditions; the worst case is
// one degenerate long sentence.
func Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		fragment := strings.TrimSpace(text[start:loc[1]])
		if fragment != "" {
			sentences = append(sentences, fragment)
		}
		start = loc[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
