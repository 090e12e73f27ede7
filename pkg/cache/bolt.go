package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// boltBucket holds all entries of a BoltCache.
var boltBucket = []byte("artifacts")

// BoltCache stores entries in a single bbolt database file. Entries use the
// same JSON envelope as [FileCache], so expiry behaves identically.
//
// bbolt takes an exclusive file lock. A second process opening the same
// file waits up to the lock timeout and then fails with [ErrLocked].
type BoltCache struct {
	db   *bolt.DB
	path string
}

// BoltOptions configures [OpenBoltCache].
type BoltOptions struct {
	// LockTimeout bounds each attempt to acquire the file lock. Zero means
	// one second.
	LockTimeout time.Duration
}

// OpenBoltCache opens or creates the database at path. Lock contention is
// retried with backoff before giving up.
func OpenBoltCache(ctx context.Context, path string, opts BoltOptions) (*BoltCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = time.Second
	}

	var db *bolt.DB
	err := RetryWithBackoff(ctx, func() error {
		var err error
		db, err = bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
		if errors.Is(err, bolt.ErrTimeout) {
			return Retryable(fmt.Errorf("%w: %s", ErrLocked, path))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}
	return &BoltCache{db: db, path: path}, nil
}

// Path returns the database file path.
func (c *BoltCache) Path() string { return c.path }

// Get retrieves a value from the cache. Expired entries are removed lazily.
func (c *BoltCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(boltBucket).Get([]byte(key)); v != nil {
			// v is only valid inside the transaction.
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return nil, false, ErrClosed
	}
	if err != nil || raw == nil {
		return nil, false, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.expired(time.Now()) {
		return nil, false, c.Delete(ctx, key)
	}
	return entry.Data, true, nil
}

// Set stores a value in the cache.
func (c *BoltCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	raw, err := json.Marshal(newEntry(data, ttl))
	if err != nil {
		return err
	}
	return c.update(func(b *bolt.Bucket) error {
		return b.Put([]byte(key), raw)
	})
}

// Delete removes a value from the cache.
func (c *BoltCache) Delete(ctx context.Context, key string) error {
	return c.update(func(b *bolt.Bucket) error {
		return b.Delete([]byte(key))
	})
}

// Clear drops every entry.
func (c *BoltCache) Clear(ctx context.Context) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(boltBucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(boltBucket)
		return err
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}

// Len returns the number of stored entries, expired ones included.
func (c *BoltCache) Len() (int, error) {
	n := 0
	err := c.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(boltBucket).Stats().KeyN
		return nil
	})
	return n, err
}

// Close releases the file lock.
func (c *BoltCache) Close() error {
	return c.db.Close()
}

func (c *BoltCache) update(fn func(*bolt.Bucket) error) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(boltBucket))
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}

var (
	_ Cache   = (*BoltCache)(nil)
	_ Clearer = (*BoltCache)(nil)
)
