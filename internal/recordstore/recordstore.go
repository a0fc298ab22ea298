// Package recordstore persists whole collections as single opaque blobs.
// There is deliberately no per-record primitive: every mutation upstream is a
// read of the full collection, an in-memory change, and a write of the full
// collection. Each Save is individually atomic, but nothing serializes
// concurrent read-modify-write cycles; the last writer wins.
package recordstore

import "context"

type Store interface {
	// Load returns the blob stored under key. found is false when the key
	// has never been written.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
