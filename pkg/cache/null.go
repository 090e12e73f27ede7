package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. Every Get is a miss, so wrapping computations
// with [GetOrCompute] over a NullCache always recomputes. The CLI uses it for
// --no-cache and whenever the cache directory cannot be opened.
type NullCache struct{}

// NewNullCache returns a NullCache.
func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Clear(context.Context) error { return nil }

func (*NullCache) Close() error { return nil }

var (
	_ Cache   = (*NullCache)(nil)
	_ Clearer = (*NullCache)(nil)
)
