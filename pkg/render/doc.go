// Package render produces the image artifacts of an analysis run.
//
// # Overview
//
// Two images are produced:
//
//   - The citation graph, generated as DOT by the [nodelink] subpackage and
//     rendered to PNG or SVG with an embedded Graphviz.
//   - The performance comparison, a bar chart of execution times drawn by
//     the [chart] subpackage.
//
// # Caching
//
// [Renderer] memoizes both artifacts in a [cache.Cache], keyed by a hash of
// the DOT source or chart data plus the options.
//
//	r := render.NewRenderer(c, keyer, 0)
//	dot := nodelink.ToDOT(g, levels, nodelink.Options{Years: years})
//	png, err := r.Graph(ctx, dot, render.FormatPNG)
//	bars, err := r.Chart(ctx, render.PerformanceBars(rep), chart.DefaultOptions())
//
// Every render fires OnRenderStart and OnRenderComplete on
// [observability.Analysis]; cache hits and misses go to
// [observability.Cache].
package render
