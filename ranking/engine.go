package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/talentsift/screener/ai"
	"github.com/talentsift/screener/core"
	"github.com/talentsift/screener/textproc"
)

// Engine ranks candidate documents against a single query and partitions
// the result into shortlisted and rejected sets.
//
// Documents are scored independently on a bounded worker pool; the query
// embedding and keyword set are computed once per run and shared read-only
// across workers. Sorting waits for the whole batch (a barrier, not a
// pipeline).
type Engine struct {
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithPoolSize sets the worker pool size for concurrent scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a ranking engine. The embedder must be safe for
// concurrent use.
func NewEngine(embedder ai.Embedder, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		embedder: embedder,
		pool:     pool,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}

	return e, nil
}

// Release releases the worker pool.
// The engine should not be used after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Rank scores every document against queryText, sorts by composite score
// descending (input order on ties), and partitions by threshold and
// required keywords. See RankWithMonitor.
func (e *Engine) Rank(ctx context.Context, queryText string, docs []core.Document, cfg core.RankConfig) (*core.ResultSet, error) {
	return e.RankWithMonitor(ctx, queryText, docs, cfg, nil)
}

// RankWithMonitor ranks with observation hooks.
//
// Configuration problems (empty query, no documents, invalid config) are
// reported before any embedding work starts. A per-document scoring failure
// marks that record failed and is accumulated into the result's Failures;
// it never aborts the batch. Cancellation aborts the run with the context
// error and no partial results.
func (e *Engine) RankWithMonitor(ctx context.Context, queryText string, docs []core.Document, cfg core.RankConfig, monitor Monitor) (*core.ResultSet, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	// Pre-flight checks: fail before the first embedding call.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(queryText) == "" {
		return nil, core.ErrEmptyQuery
	}
	if len(docs) == 0 {
		return nil, core.ErrNoDocuments
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	monitor.Start(queryText, len(docs))

	scorer, err := NewScorer(e.embedder, cfg.Lexical)
	if err != nil {
		return nil, err
	}

	// Query keyword set and embedding are computed once and shared.
	queryKeywords := textproc.Keywords(queryText, cfg.KeywordTopN)
	queryVec, err := e.embedder.EmbedText(ctx, queryText)
	if err != nil {
		e.logger.Error("error generating embedding for query", "err", err)
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	monitor.QueryPrepared(queryKeywords)

	records := make([]*core.ScoreRecord, len(docs))
	var wg sync.WaitGroup
	for i, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			records[i] = e.scoreDocument(ctx, scorer, doc, i, queryVec, queryText, queryKeywords, cfg, monitor)
		}
		if submitErr := e.pool.Submit(task); submitErr != nil {
			// Pool unavailable (released); degrade to inline scoring.
			task()
		}
	}
	wg.Wait()

	// All-or-nothing on cancellation: no partial results.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := &core.ResultSet{Records: records}
	for _, r := range records {
		if r.State == core.StateFailed {
			set.Failures = append(set.Failures, core.DocumentError{Name: r.Document.Name, Err: r.Err})
		}
	}

	// Stable sort: records are in input order here, so equal scores keep
	// their original relative order.
	sort.SliceStable(set.Records, func(i, j int) bool {
		return set.Records[i].Score > set.Records[j].Score
	})

	threshold := float64(cfg.Threshold)
	for _, r := range set.Records {
		r.Shortlisted = r.State != core.StateFailed &&
			r.Score >= threshold &&
			(len(cfg.RequiredKeywords) == 0 || textproc.ContainsAny(r.Keywords, cfg.RequiredKeywords))
	}

	monitor.Finish(set)
	return set, nil
}

// scoreDocument assembles one ScoreRecord. Failures are captured in the
// record, never returned.
func (e *Engine) scoreDocument(ctx context.Context, scorer *Scorer, doc core.Document, position int, queryVec []float32, queryText string, queryKeywords []string, cfg core.RankConfig, monitor Monitor) *core.ScoreRecord {
	record := &core.ScoreRecord{Document: doc, Position: position}

	if strings.TrimSpace(doc.Text) == "" {
		// Empty extraction scores the 0.0 floor without touching the
		// embedder, and stays diagnostically distinct from a genuine
		// zero-similarity match.
		record.State = core.StateEmptyText
		monitor.DocumentScored(record)
		return record
	}

	breakdown, err := scorer.ScoreEmbedded(ctx, doc.Text, queryVec, queryText)
	if err != nil {
		e.logger.Warn("scoring failed", "document", doc.Name, "err", err)
		record.State = core.StateFailed
		record.Err = fmt.Errorf("scoring %q: %w", doc.Name, err)
		monitor.DocumentFailed(doc.Name, record.Err)
		return record
	}
	record.Score = breakdown.Composite
	record.Semantic = breakdown.Semantic
	record.Lexical = breakdown.Lexical
	record.LexicalBlended = breakdown.Blended

	record.Keywords = textproc.Keywords(doc.Text, cfg.KeywordTopN)
	record.KeywordOverlap = textproc.Overlap(record.Keywords, queryKeywords)

	sentences, err := e.topSentences(ctx, doc.Text, queryVec, cfg.TopSentences)
	if err != nil {
		e.logger.Warn("sentence scoring failed", "document", doc.Name, "err", err)
		record.State = core.StateFailed
		record.Err = fmt.Errorf("scoring sentences of %q: %w", doc.Name, err)
		monitor.DocumentFailed(doc.Name, record.Err)
		return record
	}
	record.Sentences = sentences

	record.State = core.StateScored
	monitor.DocumentScored(record)
	return record
}

// topSentences embeds each sentence of the document and returns the topK
// with the highest individual similarity to the query, ties broken by
// sentence position.
func (e *Engine) topSentences(ctx context.Context, text string, queryVec []float32, topK int) ([]core.SentenceMatch, error) {
	if topK <= 0 {
		return nil, nil
	}
	sentences := textproc.Sentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	vectors, err := e.embedder.EmbedTexts(ctx, sentences)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(sentences) {
		return nil, fmt.Errorf("embedding result mismatch. expected %d, received %d", len(sentences), len(vectors))
	}

	idx := make([]int, len(sentences))
	scores := make([]float64, len(sentences))
	for i := range sentences {
		idx[i] = i
		scores[i] = CosineSimilarity(vectors[i], queryVec)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	if topK > len(idx) {
		topK = len(idx)
	}
	matches := make([]core.SentenceMatch, 0, topK)
	for _, i := range idx[:topK] {
		matches = append(matches, core.SentenceMatch{
			Sentence: sentences[i],
			Score:    roundScore(scores[i] * 100),
		})
	}
	return matches, nil
}
