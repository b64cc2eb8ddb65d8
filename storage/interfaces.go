package storage

import (
	"context"

	"github.com/talentsift/screener/core"
)

// VectorCache persists computed embedding vectors keyed by content ID.
// Implementations must be thread-safe and support concurrent access: the
// ranking engine reads and writes the cache from its worker pool.
type VectorCache interface {
	// GetVector retrieves the cached vector for the given ID.
	// Returns nil (and no error) when the ID is absent.
	GetVector(ctx context.Context, id core.ID) ([]float32, error)

	// PutVector stores a vector under the given ID, overwriting any
	// existing entry.
	PutVector(ctx context.Context, id core.ID, vector []float32) error

	// Close closes the storage backend and releases resources.
	Close() error
}
