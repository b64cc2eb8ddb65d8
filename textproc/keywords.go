package textproc

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultKeywordTopN caps the extracted keyword set when no explicit limit
// is given.
const DefaultKeywordTopN = 15

// keywordPattern matches the alphabetic runs considered as keyword
// candidates. The minimum length filters out most function-word noise.
var keywordPattern = regexp.MustCompile(`[a-z]{4,}`)

// stopWords is the single definition of the function words excluded from
// keyword sets and lexical matching. Checked case-insensitively (input is
// lowercased first).
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "were": true, "to": true, "of": true, "and": true, "in": true,
	"that": true, "have": true, "has": true, "it": true, "for": true,
	"not": true, "on": true, "with": true, "as": true, "you": true,
	"your": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "they": true, "their": true, "will": true,
	"would": true, "there": true, "been": true, "which": true, "when": true,
	"where": true, "while": true, "about": true, "into": true, "over": true,
	"than": true, "then": true, "them": true, "these": true, "those": true,
	"such": true, "also": true, "more": true, "most": true, "other": true,
	"each": true, "both": true, "very": true, "must": true, "should": true,
	"could": true, "what": true, "some": true, "able": true, "well": true,
	"work": true, "years": true, "experience": true,
}

// Keywords extracts up to topN distinct lowercase keywords from text, ranked
// by frequency descending. Ties are broken by first occurrence in the text,
// so the result is deterministic for identical input. Candidates are
// alphabetic runs of at least four characters that are not stop words.
// Non-positive topN means DefaultKeywordTopN. Empty input yields nil.
func Keywords(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultKeywordTopN
	}

	tokens := keywordPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if stopWords[tok] {
			continue
		}
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
		}
		counts[tok]++
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := make([]string, 0, len(counts))
	for tok := range counts {
		ranked = append(ranked, tok)
	}
	// Frequency map iteration order is undefined; the explicit
	// (count desc, first occurrence asc) key makes tie order stable.
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return firstSeen[a] < firstSeen[b]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Overlap returns the elements of a that also occur in b, in a's order.
func Overlap(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inB := make(map[string]bool, len(b))
	for _, tok := range b {
		inB[tok] = true
	}
	var out []string
	for _, tok := range a {
		if inB[tok] {
			out = append(out, tok)
		}
	}
	return out
}

// ContainsAny reports whether any of the required terms occurs in keywords.
// Both sides are compared lowercase.
func ContainsAny(keywords, required []string) bool {
	if len(required) == 0 {
		return false
	}
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		set[strings.ToLower(kw)] = true
	}
	for _, req := range required {
		if set[strings.ToLower(req)] {
			return true
		}
	}
	return false
}

// ContentWords splits text into lowercase words with surrounding punctuation
// trimmed and stop words removed. This is the shared tokenizer for the
// lexical overlap signal.
func ContentWords(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}
