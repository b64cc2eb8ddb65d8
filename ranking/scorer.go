package ranking

import (
	"context"
	"math"
	"strings"

	"github.com/talentsift/screener/ai"
	"github.com/talentsift/screener/textproc"
)

// Scorer computes composite match scores between document text and the
// query. A composite score is a percentage in [0,100]: the clamped cosine
// similarity of the two embeddings, optionally averaged with a lexical
// overlap signal, rounded to two decimals exactly once at the end.
type Scorer struct {
	embedder ai.Embedder
	lexical  bool
}

// Breakdown carries the composite score together with its components.
type Breakdown struct {
	// Composite is the final percentage in [0,100], rounded to two decimals.
	Composite float64
	// Semantic is the clamped cosine similarity in [0,1], unrounded.
	Semantic float64
	// Lexical is the lexical overlap ratio in [0,1]. Meaningful only when
	// Blended is true.
	Lexical float64
	Blended bool
}

// NewScorer creates a scorer. With lexical enabled the composite blends the
// semantic and lexical signals; otherwise it is purely semantic.
func NewScorer(embedder ai.Embedder, lexical bool) (*Scorer, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	return &Scorer{embedder: embedder, lexical: lexical}, nil
}

// Score computes the composite score of documentText against queryText.
// Empty or whitespace-only document text short-circuits to 0.0 with no
// embedding call. An embedding failure is returned as an error, never as a
// silent zero.
func (s *Scorer) Score(ctx context.Context, documentText, queryText string) (float64, error) {
	if strings.TrimSpace(documentText) == "" {
		return 0, nil
	}
	queryVec, err := s.embedder.EmbedText(ctx, queryText)
	if err != nil {
		return 0, err
	}
	breakdown, err := s.ScoreEmbedded(ctx, documentText, queryVec, queryText)
	if err != nil {
		return 0, err
	}
	return breakdown.Composite, nil
}

// ScoreEmbedded scores documentText against an already-computed query
// embedding. The ranking engine embeds the query once per run and reuses the
// vector for every candidate.
func (s *Scorer) ScoreEmbedded(ctx context.Context, documentText string, queryVec []float32, queryText string) (Breakdown, error) {
	if strings.TrimSpace(documentText) == "" {
		return Breakdown{}, nil
	}

	docVec, err := s.embedder.EmbedText(ctx, documentText)
	if err != nil {
		return Breakdown{}, err
	}

	semantic := CosineSimilarity(docVec, queryVec)
	final := semantic
	b := Breakdown{Semantic: semantic}
	if s.lexical {
		b.Lexical = LexicalOverlap(documentText, queryText)
		b.Blended = true
		final = (semantic + b.Lexical) / 2
	}
	b.Composite = roundScore(final * 100)
	return b, nil
}

// CosineSimilarity computes the cosine similarity of two vectors, clamped to
// [0,1]. The embedding families in use produce non-negative similarities;
// the clamp absorbs numeric artifacts. Mismatched or zero vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// LexicalOverlap computes the share of the query's distinct content words
// that occur in the document, in [0,1]. Stop words are excluded on both
// sides.
func LexicalOverlap(documentText, queryText string) float64 {
	queryWords := textproc.ContentWords(queryText)
	if len(queryWords) == 0 {
		return 0
	}

	docSet := make(map[string]bool)
	for _, word := range textproc.ContentWords(documentText) {
		docSet[word] = true
	}

	distinct := make(map[string]bool, len(queryWords))
	matched := 0
	for _, word := range queryWords {
		if distinct[word] {
			continue
		}
		distinct[word] = true
		if docSet[word] {
			matched++
		}
	}
	return float64(matched) / float64(len(distinct))
}

// roundScore rounds a percentage to two decimals. Applied once, to the final
// composite only, so intermediate components never accumulate rounding error.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
