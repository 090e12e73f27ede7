package cache

import (
	"context"
	"time"

	"github.com/matzehuels/citeorder/pkg/observability"
)

// Instrumented forwards to an inner Cache and reports every lookup and write
// to [observability.Cache].
type Instrumented struct {
	inner Cache
}

// Instrument wraps c. Wrapping an already instrumented cache returns it as is.
func Instrument(c Cache) Cache {
	if _, ok := c.(*Instrumented); ok {
		return c
	}
	return &Instrumented{inner: c}
}

// Unwrap returns the wrapped cache.
func (c *Instrumented) Unwrap() Cache { return c.inner }

// Get looks up key and reports a hit or miss.
func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.inner.Get(ctx, key)
	if err != nil {
		return data, hit, err
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, KeyType(key))
	} else {
		observability.Cache().OnCacheMiss(ctx, KeyType(key))
	}
	return data, hit, nil
}

// Set stores data and reports the write size.
func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}

// Delete forwards to the inner cache.
func (c *Instrumented) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

// Clear forwards to the inner cache when it supports clearing.
func (c *Instrumented) Clear(ctx context.Context) error {
	if cl, ok := c.inner.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}

// Close forwards to the inner cache.
func (c *Instrumented) Close() error {
	return c.inner.Close()
}

// GetOrCompute returns the cached value for key, or calls compute, stores its
// result with ttl, and returns it. Store failures are ignored; a cache that
// cannot be written must not fail the caller.
func GetOrCompute(ctx context.Context, c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, error) {
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, nil
	}
	data, err := compute()
	if err != nil {
		return nil, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, nil
}
