package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is a candidate submitted for screening: an opaque name plus the
// plain text extracted from it. The text may be empty when extraction
// produced nothing; that is a valid, scoreable state, not an error.
type Document struct {
	Name string
	Text string
}

// RecordState distinguishes how a document's score came to be.
type RecordState int

const (
	// StateScored means the document was embedded and scored normally.
	StateScored RecordState = iota + 1
	// StateEmptyText means the document had no text; its score is the 0.0
	// floor and no embedding call was made.
	StateEmptyText
	// StateFailed means embedding or scoring failed for this document.
	StateFailed
)

// String returns a human-readable state name.
func (s RecordState) String() string {
	switch s {
	case StateScored:
		return "scored"
	case StateEmptyText:
		return "empty-text"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SentenceMatch is one supporting sentence with its individual similarity
// to the query, as a 0-100 percentage.
type SentenceMatch struct {
	Sentence string
	Score    float64
}

// ScoreRecord is the outcome of scoring one document against the query.
// Immutable once computed.
type ScoreRecord struct {
	Document Document

	// Score is the composite match percentage in [0,100], rounded to two
	// decimals. Zero for empty-text and failed records.
	Score float64

	// Semantic is the clamped cosine similarity component in [0,1].
	Semantic float64

	// Lexical is the lexical overlap component in [0,1]. Only meaningful
	// when LexicalBlended is true.
	Lexical        float64
	LexicalBlended bool

	// Keywords is the document's extracted keyword set, frequency-ranked.
	Keywords []string

	// KeywordOverlap is the intersection of the query's and the document's
	// keyword sets, in document keyword order.
	KeywordOverlap []string

	// Sentences holds up to the configured number of supporting sentences,
	// ranked by their individual similarity to the query.
	Sentences []SentenceMatch

	State RecordState

	// Err is the scoring failure, non-nil iff State is StateFailed.
	Err error

	// Shortlisted reports whether the record passed both the threshold and
	// the required-keyword constraint.
	Shortlisted bool

	// Position is the document's index in the original input sequence.
	// Ties in Score preserve Position order.
	Position int
}

// DocumentError pairs a document name with its scoring failure.
type DocumentError struct {
	Name string
	Err  error
}

// ResultSet is the ordered outcome of one ranking run: all records sorted by
// composite score descending (input order on ties), plus the accumulated
// per-document failures.
type ResultSet struct {
	Records  []*ScoreRecord
	Failures []DocumentError
}

// Shortlisted returns the records that passed the threshold and keyword
// constraints, in ranked order.
func (rs *ResultSet) Shortlisted() []*ScoreRecord {
	out := make([]*ScoreRecord, 0, len(rs.Records))
	for _, r := range rs.Records {
		if r.Shortlisted {
			out = append(out, r)
		}
	}
	return out
}

// Rejected returns the records that did not make the shortlist, in ranked
// order. Together with Shortlisted it reconstructs Records exactly.
func (rs *ResultSet) Rejected() []*ScoreRecord {
	out := make([]*ScoreRecord, 0, len(rs.Records))
	for _, r := range rs.Records {
		if !r.Shortlisted {
			out = append(out, r)
		}
	}
	return out
}

// Best returns the top shortlisted record. The second return value is false
// when the shortlist is empty; callers must not assume a best record exists.
func (rs *ResultSet) Best() (*ScoreRecord, bool) {
	for _, r := range rs.Records {
		if r.Shortlisted {
			return r, true
		}
	}
	return nil, false
}
