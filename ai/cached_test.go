package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/screener/ai"
	"github.com/talentsift/screener/ai/mock"
	badgercache "github.com/talentsift/screener/storage/badger"
)

func TestCachedEmbedder_MemoryHit(t *testing.T) {
	inner := mock.NewMockEmbedder()
	cached := ai.NewCachedEmbedder(inner, "test-model")
	ctx := context.Background()

	first, err := cached.EmbedText(ctx, "golang engineer")
	require.NoError(t, err)
	require.Equal(t, 1, inner.CallCount())

	second, err := cached.EmbedText(ctx, "golang engineer")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.CallCount(), "second call must be served from memory")
}

func TestCachedEmbedder_ErrorNotCached(t *testing.T) {
	backendErr := errors.New("backend down")
	inner := mock.NewMockEmbedder()
	inner.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, backendErr
	}
	cached := ai.NewCachedEmbedder(inner, "test-model")
	ctx := context.Background()

	_, err := cached.EmbedText(ctx, "text")
	require.ErrorIs(t, err, backendErr)

	// A later successful call computes fresh instead of serving a stale error.
	inner.Reset()
	vec, err := cached.EmbedText(ctx, "text")
	require.NoError(t, err)
	assert.NotEmpty(t, vec)
	assert.Equal(t, 1, inner.CallCount())
}

func TestCachedEmbedder_CallerCannotMutateCache(t *testing.T) {
	inner := mock.NewMockEmbedder()
	cached := ai.NewCachedEmbedder(inner, "test-model")
	ctx := context.Background()

	first, err := cached.EmbedText(ctx, "text")
	require.NoError(t, err)
	first[0] = 999

	second, err := cached.EmbedText(ctx, "text")
	require.NoError(t, err)
	assert.NotEqual(t, float32(999), second[0])
}

func TestCachedEmbedder_BatchesOnlyMisses(t *testing.T) {
	inner := mock.NewMockEmbedder()
	var batched []string
	inner.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		batched = texts
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i] = mock.DeterministicVector(text, 8)
		}
		return out, nil
	}
	cached := ai.NewCachedEmbedder(inner, "test-model")
	ctx := context.Background()

	// Warm one entry.
	warm, err := cached.EmbedText(ctx, "alpha")
	require.NoError(t, err)

	vectors, err := cached.EmbedTexts(ctx, []string{"alpha", "bravo", "charlie"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	assert.Equal(t, []string{"bravo", "charlie"}, batched, "only misses reach the inner embedder")
	assert.Equal(t, warm, vectors[0])
	assert.Equal(t, mock.DeterministicVector("bravo", 8), vectors[1])
	assert.Equal(t, mock.DeterministicVector("charlie", 8), vectors[2])
}

func TestCachedEmbedder_AllHitsSkipInner(t *testing.T) {
	inner := mock.NewMockEmbedder()
	cached := ai.NewCachedEmbedder(inner, "test-model")
	ctx := context.Background()

	_, err := cached.EmbedTexts(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, 1, inner.CallCount())

	_, err = cached.EmbedTexts(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.CallCount())
}

func TestCachedEmbedder_PersistentCacheSharedAcrossInstances(t *testing.T) {
	store, err := badgercache.NewMemoryCache()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	first := mock.NewMockEmbedder()
	cached := ai.NewCachedEmbedder(first, "test-model", ai.WithPersistentCache(store))
	vec, err := cached.EmbedText(ctx, "golang engineer")
	require.NoError(t, err)
	require.Equal(t, 1, first.CallCount())

	// A fresh instance with an empty memory cache reads through the store.
	second := mock.NewMockEmbedder()
	reopened := ai.NewCachedEmbedder(second, "test-model", ai.WithPersistentCache(store))
	got, err := reopened.EmbedText(ctx, "golang engineer")
	require.NoError(t, err)
	assert.Equal(t, vec, got)
	assert.Equal(t, 0, second.CallCount(), "persistent hit must not recompute")
}

func TestCachedEmbedder_ModelIDPartitionsKeys(t *testing.T) {
	store, err := badgercache.NewMemoryCache()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	a := mock.NewMockEmbedder()
	cachedA := ai.NewCachedEmbedder(a, "model-a", ai.WithPersistentCache(store))
	_, err = cachedA.EmbedText(ctx, "same text")
	require.NoError(t, err)

	// Same text under a different model must compute its own vector.
	b := mock.NewMockEmbedder()
	cachedB := ai.NewCachedEmbedder(b, "model-b", ai.WithPersistentCache(store))
	_, err = cachedB.EmbedText(ctx, "same text")
	require.NoError(t, err)
	assert.Equal(t, 1, b.CallCount())
}

func TestCachedEmbedder_StoreFailureDegradesToCompute(t *testing.T) {
	store, err := badgercache.NewMemoryCache()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	inner := mock.NewMockEmbedder()
	cached := ai.NewCachedEmbedder(inner, "test-model", ai.WithPersistentCache(store))

	vec, err := cached.EmbedText(context.Background(), "text")
	require.NoError(t, err, "a broken store must not fail embedding")
	assert.NotEmpty(t, vec)
	assert.Equal(t, 1, inner.CallCount())
}
