package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/talentsift/screener/core"
	"github.com/talentsift/screener/storage"
)

// vectorPrefix namespaces cache entries so the keyspace can grow later.
var vectorPrefix = []byte("v/")

// Cache is a BadgerDB-backed implementation of storage.VectorCache.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.VectorCache = (*Cache)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenCache opens a vector cache at the specified path.
// Creates the directory if it doesn't exist.
// With inMemory set, the path is ignored and nothing is persisted.
func OpenCache(filePath string, inMemory bool) (*Cache, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Cache{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// NewMemoryCache opens an in-memory cache for tests.
func NewMemoryCache() (*Cache, error) {
	return OpenCache("", true)
}

// GetVector retrieves the cached vector for the given ID.
// Returns nil when the ID is absent.
func (c *Cache) GetVector(_ context.Context, id core.ID) ([]float32, error) {
	if c.db.IsClosed() {
		return nil, storage.ErrClosed
	}

	var vector []float32
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(vectorKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			v, err := storage.UnmarshalVector(val)
			if err != nil {
				return fmt.Errorf("%w: id %d: %w", storage.ErrCorruptEntry, id, err)
			}
			vector = v
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// PutVector stores a vector under the given ID, overwriting any existing entry.
func (c *Cache) PutVector(_ context.Context, id core.ID, vector []float32) error {
	if c.db.IsClosed() {
		return storage.ErrClosed
	}

	return c.db.Update(func(tx *badger.Txn) error {
		return tx.Set(vectorKey(id), storage.MarshalVector(vector))
	})
}

// Close closes the underlying BadgerDB database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func vectorKey(id core.ID) []byte {
	return append(append([]byte{}, vectorPrefix...), storage.MarshalID(id)...)
}
