package cache

import "strings"

// Key types reported to the cache hooks.
const (
	KeyTypeRender = "render"
	KeyTypeChart  = "chart"
)

// RenderKeyOpts are the inputs besides the DOT source that change a render.
type RenderKeyOpts struct {
	Format string `json:"format"`
	Engine string `json:"engine,omitempty"`
}

// ChartKeyOpts are the inputs besides the data that change a chart.
type ChartKeyOpts struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title,omitempty"`
}

// Keyer generates cache keys for artifacts.
type Keyer interface {
	RenderKey(dot []byte, opts RenderKeyOpts) string
	ChartKey(data []byte, opts ChartKeyOpts) string
}

// DefaultKeyer hashes the artifact input together with its options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey generates a key for a Graphviz render of dot.
func (DefaultKeyer) RenderKey(dot []byte, opts RenderKeyOpts) string {
	return artifactKey(KeyTypeRender, dot, opts)
}

// ChartKey generates a key for a chart drawn from data.
func (DefaultKeyer) ChartKey(data []byte, opts ChartKeyOpts) string {
	return artifactKey(KeyTypeChart, data, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so different builds do not share
// entries. The CLI scopes keys by version, since renderer upgrades can
// change output for the same input.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
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

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(dot []byte, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(dot, opts)
}

// ChartKey generates a prefixed chart key.
func (k *ScopedKeyer) ChartKey(data []byte, opts ChartKeyOpts) string {
	return k.prefix + k.inner.ChartKey(data, opts)
}

// KeyType returns the artifact type encoded in key, ignoring any scope
// prefix, or "unknown".
func KeyType(key string) string {
	for _, kt := range []string{KeyTypeRender, KeyTypeChart} {
		if strings.Contains(key, kt+":") {
			return kt
		}
	}
	return "unknown"
}
