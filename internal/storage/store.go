package storage

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a string-keyed store of JSON-serialized values with
// whole-value overwrite semantics. Writers replace the entire value
// under a key; there is no partial update.
//
// The file-backed driver assumes a single writing process per data
// directory. Concurrent writers in separate processes can lose
// updates through the read-modify-write pattern the repositories use;
// Watch exists so readers can at least observe external changes.
type Store interface {
	// Get returns the value under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// Delete is a no-op if the key is absent.
	Delete(ctx context.Context, key string) error
	// Watch returns a channel that receives a signal whenever the key
	// is modified outside this process. The channel is closed when ctx
	// is done.
	Watch(ctx context.Context, key string) (<-chan struct{}, error)
	Close() error
}
