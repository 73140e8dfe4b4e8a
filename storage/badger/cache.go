// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package badger implements the embedding cache on BadgerDB.
package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/coursevec/storage"
)

// Cache is an EmbeddingCache backed by a BadgerDB instance.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.EmbeddingCache = (*Cache)(nil)

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

// OpenCache opens an embedding cache at the specified path.
// Creates the directory if it doesn't exist. With inMemory set the cache
// lives in process memory only, which is what tests use.
func OpenCache(filePath string, inMemory bool) (storage.EmbeddingCache, error) {
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
		logger: slog.Default().With("component", "embedding-cache"),
	}, nil
}

// Get returns the cached vector for (model, text).
func (c *Cache) Get(ctx context.Context, model, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.db.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var vector []float32
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(model, text))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			vector, err = storage.UnmarshalVector(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// Put stores the vector for (model, text).
func (c *Cache) Put(ctx context.Context, model, text string, vector []float32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.db.IsClosed() {
		return storage.ErrStorageClosed
	}

	return c.db.Update(func(tx *badger.Txn) error {
		return tx.Set(makeEmbeddingKey(model, text), storage.MarshalVector(vector))
	})
}

// Close closes the underlying BadgerDB database.
func (c *Cache) Close() error {
	return c.db.Close()
}
