package cache

// ScopedKeyer wraps a Keyer with a prefix so several front ends can share
// one cache directory without seeing each other's snapshots.
//
// Example usage:
//
//	// Snapshots taken by the HTTP server
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
//
//	// Snapshots taken by the CLI
//	cliKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SnapshotKey generates a prefixed snapshot key.
func (k *ScopedKeyer) SnapshotKey(path string) string {
	return k.prefix + k.inner.SnapshotKey(path)
}
