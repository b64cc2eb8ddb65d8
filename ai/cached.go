package ai

import (
	"context"
	"log/slog"
	"sync"

	"github.com/talentsift/screener/core"
	"github.com/talentsift/screener/storage"
)

// CachedEmbedder decorates an Embedder with an in-process memory cache and an
// optional persistent vector cache. Keys are derived from (model ID, text),
// so identical text embedded with the same model is computed exactly once and
// read back bit-identical thereafter.
type CachedEmbedder struct {
	inner   Embedder
	modelID string
	store   storage.VectorCache

	mu     sync.RWMutex
	mem    map[core.ID][]float32
	logger *slog.Logger
}

var _ Embedder = (*CachedEmbedder)(nil)

// CachedOption configures a CachedEmbedder.
type CachedOption func(*CachedEmbedder)

// WithPersistentCache backs the memory cache with a persistent vector store.
// Persistence failures are logged and degrade to compute-through; they never
// fail an embedding call.
func WithPersistentCache(store storage.VectorCache) CachedOption {
	return func(c *CachedEmbedder) {
		c.store = store
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CachedOption {
	return func(c *CachedEmbedder) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewCachedEmbedder wraps inner with caching. The modelID must identify the
// embedding model; vectors from different models share nothing.
func NewCachedEmbedder(inner Embedder, modelID string, opts ...CachedOption) *CachedEmbedder {
	c := &CachedEmbedder{
		inner:   inner,
		modelID: modelID,
		mem:     make(map[core.ID][]float32),
		logger:  slog.Default().With("component", "cached-embedder"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EmbedText returns the cached vector for text, computing and caching it on
// a miss.
func (c *CachedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	id := c.cacheKey(text)

	if vec := c.lookup(ctx, id); vec != nil {
		return vec, nil
	}

	vec, err := c.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	c.remember(ctx, id, vec)
	return cloneVector(vec), nil
}

// EmbedTexts resolves each text against the cache and batches only the
// misses through the inner embedder. Results keep input order.
func (c *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	missIdx := make([]int, 0, len(texts))
	missTexts := make([]string, 0, len(texts))

	for i, text := range texts {
		id := c.cacheKey(text)
		if vec := c.lookup(ctx, id); vec != nil {
			result[i] = vec
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, text)
	}

	if len(missTexts) == 0 {
		return result, nil
	}

	computed, err := c.inner.EmbedTexts(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(computed) != len(missTexts) {
		c.logger.Warn("embedder returned unexpected batch size",
			"expected", len(missTexts), "received", len(computed))
	}

	for j, i := range missIdx {
		if j >= len(computed) {
			break
		}
		c.remember(ctx, c.cacheKey(texts[i]), computed[j])
		result[i] = cloneVector(computed[j])
	}
	return result, nil
}

func (c *CachedEmbedder) cacheKey(text string) core.ID {
	return core.IDFromContent(c.modelID + "\x00" + text)
}

// lookup checks memory first, then the persistent store. A persistent hit is
// promoted into memory.
func (c *CachedEmbedder) lookup(ctx context.Context, id core.ID) []float32 {
	c.mu.RLock()
	vec, ok := c.mem[id]
	c.mu.RUnlock()
	if ok {
		return cloneVector(vec)
	}

	if c.store == nil {
		return nil
	}
	vec, err := c.store.GetVector(ctx, id)
	if err != nil {
		c.logger.Warn("vector cache read failed", "id", uint64(id), "err", err)
		return nil
	}
	if vec == nil {
		return nil
	}

	c.mu.Lock()
	c.mem[id] = vec
	c.mu.Unlock()
	return cloneVector(vec)
}

func (c *CachedEmbedder) remember(ctx context.Context, id core.ID, vec []float32) {
	stored := cloneVector(vec)

	c.mu.Lock()
	c.mem[id] = stored
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.PutVector(ctx, id, stored); err != nil {
		c.logger.Warn("vector cache write failed", "id", uint64(id), "err", err)
	}
}

func cloneVector(v []float32) []float32 {
	if v == nil {
		return nil
	}
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
