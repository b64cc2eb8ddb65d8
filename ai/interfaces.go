package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// scoring. Implementations must be thread-safe for concurrent use: the
// ranking engine scores documents in parallel against a single shared
// embedder instance.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbedderProvider manages the lifecycle of an embedding backend. Providers
// are constructed once per process; the model behind them is expensive to
// initialize and read-only afterwards.
type EmbedderProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// ModelID identifies the embedding model. Vectors from different models
	// are not comparable, so the ID participates in cache keys.
	ModelID() string

	// Close releases resources held by the provider and its embedder.
	// After Close is called, the provider should not be used.
	Close() error
}
