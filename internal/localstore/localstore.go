// Package localstore provides the durable key-value facility backing the
// persistence layer: a small set of fixed string keys, each holding one
// structured-text blob. Implementations are a local SQLite database for real
// use and an in-memory map for tests.
package localstore

import "context"

// KV is the storage surface the persistence adapter writes through.
type KV interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any prior contents.
	Set(ctx context.Context, key, value string) error
}
