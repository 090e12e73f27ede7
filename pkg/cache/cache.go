// Package cache stores rendered artifacts between runs.
//
// Rendering the citation graph through Graphviz is by far the slowest step of
// an analysis, and its input (the DOT source) only changes when the dataset
// does. The analyze command therefore keys rendered images by a hash of their
// input and reuses them on later runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory.
//   - [BoltCache]: a single bbolt database file.
//   - [NullCache]: stores nothing; used by --no-cache.
//
// [Instrument] wraps any backend so hits, misses and writes reach the
// observability cache hooks.
//
// # Keys
//
// [Keyer] builds keys from artifact inputs. Keys are opaque strings; backends
// hash them again as needed for their storage layout.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and true, or nil and false on a miss.
	// Expired and unreadable entries are misses, not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}
