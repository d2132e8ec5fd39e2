// Package cache stores byte blobs with an expiry. tableaxis uses it to keep
// a snapshot of each document before a switch so the switch can be undone.
//
// [FileCache] is the CLI backend, [NullCache] disables snapshots, and
// [SnapshotStore] layers document snapshots on top of either.
package cache

import (
	"context"
	"time"
)

// TTLSnapshot is how long a document snapshot is kept by default.
const TTLSnapshot = 7 * 24 * time.Hour

// Cache is a key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// SnapshotKey returns the key of the snapshot taken before the last
	// switch of the document at path.
	SnapshotKey(path string) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates a default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SnapshotKey hashes path so keys have a fixed length whatever the path.
func (DefaultKeyer) SnapshotKey(path string) string {
	return hashKey("snapshot", path)
}
