package render

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/matzehuels/citeorder/pkg/analysis"
	"github.com/matzehuels/citeorder/pkg/cache"
	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/observability"
	"github.com/matzehuels/citeorder/pkg/render/chart"
	"github.com/matzehuels/citeorder/pkg/render/nodelink"
)

// Image formats for [Renderer.Graph].
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Artifact names reported to [observability.AnalysisHooks].
const (
	ArtifactCitationGraph    = "citation_graph"
	ArtifactPerformanceChart = "performance_chart"
)

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour

// Renderer produces image artifacts, memoizing them in a cache. Renders are
// pure functions of their input, so the cache key is a hash of the input and
// the options.
//
// A Renderer is safe for concurrent use if its cache is.
type Renderer struct {
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// NewRenderer creates a renderer. A nil cache disables caching, a nil keyer
// uses [cache.NewDefaultKeyer] and a non-positive ttl uses [DefaultTTL]. The
// cache is wrapped with [cache.Instrument] so hits and misses reach the
// observability hooks.
func NewRenderer(c cache.Cache, keyer cache.Keyer, ttl time.Duration) *Renderer {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Renderer{cache: cache.Instrument(c), keyer: keyer, ttl: ttl}
}

// Graph renders DOT source to format (png or svg).
func (r *Renderer) Graph(ctx context.Context, dot, format string) ([]byte, error) {
	if err := errors.ValidateChoice(errors.ErrCodeInvalidFormat, "image format", format, FormatPNG, FormatSVG); err != nil {
		return nil, err
	}
	format = strings.ToLower(format)

	key := r.keyer.RenderKey([]byte(dot), cache.RenderKeyOpts{Format: format, Engine: "dot"})
	return r.produce(ctx, ArtifactCitationGraph, format, key, func() ([]byte, error) {
		if format == FormatSVG {
			return nodelink.RenderSVG(ctx, dot)
		}
		return nodelink.RenderPNG(ctx, dot)
	})
}

// Chart draws a bar chart as PNG.
func (r *Renderer) Chart(ctx context.Context, bars []chart.Bar, opts chart.Options) ([]byte, error) {
	data, err := json.Marshal(bars)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode chart data")
	}
	key := r.keyer.ChartKey(data, cache.ChartKeyOpts{Width: opts.Width, Height: opts.Height, Title: opts.Title})
	return r.produce(ctx, ArtifactPerformanceChart, FormatPNG, key, func() ([]byte, error) {
		return chart.PNG(bars, opts)
	})
}

func (r *Renderer) produce(ctx context.Context, artifact, format, key string, compute func() ([]byte, error)) ([]byte, error) {
	hooks := observability.Analysis()
	hooks.OnRenderStart(ctx, artifact, format)
	start := time.Now()
	data, err := cache.GetOrCompute(ctx, r.cache, key, r.ttl, compute)
	hooks.OnRenderComplete(ctx, artifact, format, time.Since(start), err)
	return data, err
}

// PerformanceBars turns the successful outcomes of a run into chart bars of
// execution time in milliseconds, in run order.
func PerformanceBars(rep *analysis.Report) []chart.Bar {
	ok := rep.Succeeded()
	bars := make([]chart.Bar, len(ok))
	for i, o := range ok {
		bars[i] = chart.Bar{Label: o.Name, Value: o.Result.Metrics.ExecutionTimeMS}
	}
	return bars
}
