package localstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no value in the store.
var ErrKeyNotFound = errors.New("key not found")

// KV defines the interface for the durable key-value store backing the
// mock ledger and session persistence. Values are opaque byte blobs;
// callers own serialization. A corrupted value is the caller's problem to
// detect on decode — the store never inspects payloads.
type KV interface {
	// Get retrieves the value for a key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores the value for a key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
