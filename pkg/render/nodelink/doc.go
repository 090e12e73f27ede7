// Package nodelink draws citation graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph and its BFS levels to DOT, then render it:
//
//	dot := nodelink.ToDOT(g, levels, nodelink.Options{Years: years})
//	png, err := nodelink.RenderPNG(ctx, dot)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Layout
//
// The DOT source lays the graph out bottom to top (rankdir=BT) with one
// rank=same row per BFS level, so the most cited foundational papers sit at
// the top and the newest citing papers at the bottom. Edges keep the
// citation direction: citing paper to cited paper.
//
// Nodes with a known publication year are labelled "id\nyear" and filled
// with a viridis color for that year; other nodes are grey.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly, so no system Graphviz installation is needed.
package nodelink
