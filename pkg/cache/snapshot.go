package cache

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/matzehuels/tableaxis/pkg/observability"
)

const snapshotKeyType = "snapshot"

// SnapshotStore keeps the encoded state of a document from before its last
// switch. Only one snapshot is kept per document path.
type SnapshotStore struct {
	Cache Cache
	Keyer Keyer
	TTL   time.Duration
}

// NewSnapshotStore creates a snapshot store.
// If c is nil, a NullCache is used (snapshots disabled).
// If keyer is nil, a DefaultKeyer is used. A zero ttl means [TTLSnapshot].
func NewSnapshotStore(c Cache, keyer Keyer, ttl time.Duration) *SnapshotStore {
	if c == nil {
		c = NewNullCache()
	}
	if keyer == nil {
		keyer = NewDefaultKeyer()
	}
	if ttl == 0 {
		ttl = TTLSnapshot
	}
	return &SnapshotStore{Cache: c, Keyer: keyer, TTL: ttl}
}

// Save records data as the snapshot of the document at path, replacing any
// earlier one.
func (s *SnapshotStore) Save(ctx context.Context, path string, data []byte) error {
	if err := s.Cache.Set(ctx, s.key(path), data, s.TTL); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	observability.Cache().OnCacheSet(ctx, snapshotKeyType, len(data))
	return nil
}

// Load returns the snapshot of the document at path. It returns an error
// wrapping [ErrNotFound] when there is none.
func (s *SnapshotStore) Load(ctx context.Context, path string) ([]byte, error) {
	data, hit, err := s.Cache.Get(ctx, s.key(path))
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, snapshotKeyType)
		return nil, fmt.Errorf("snapshot of %s: %w", path, ErrNotFound)
	}
	observability.Cache().OnCacheHit(ctx, snapshotKeyType)
	return data, nil
}

// Drop removes the snapshot of the document at path.
func (s *SnapshotStore) Drop(ctx context.Context, path string) error {
	return s.Cache.Delete(ctx, s.key(path))
}

// Close closes the underlying cache.
func (s *SnapshotStore) Close() error {
	return s.Cache.Close()
}

// key resolves path so the same file reached through different relative
// paths shares one snapshot.
func (s *SnapshotStore) key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return s.Keyer.SnapshotKey(path)
}
