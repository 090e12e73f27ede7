// Package pkg provides the libraries behind citeorder, a tool that finds
// reading orders for a set of research papers by topologically sorting
// their citation graph.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [dag] - The citation graph: ordered keys with ordered successor lists
//  2. [toposort] - Kahn's algorithm, DFS, BFS level batches and validation
//  3. [papers] - Paper metadata and the built-in dataset
//  4. [analysis] - Runs every sorter, validates, benchmarks
//  5. [report] - Text, CSV, JSON and YAML reports
//  6. [render] - Graphviz citation diagram and performance chart
//  7. [cache] - File, bolt and no-op caches for rendered images
//
// # Architecture
//
// The typical data flow:
//
//	papers.toml or graph.json
//	         ↓
//	    [papers] / [io] (load and validate)
//	         ↓
//	    [dag] package (citation graph)
//	         ↓
//	    [analysis] package (Kahn, DFS, BFS + validation)
//	         ↓
//	    [report] and [render] packages
//	         ↓
//	    TXT/CSV/JSON/YAML/PNG output
//
// # Quick Start
//
// Sort the built-in dataset and print the reading schedule:
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/matzehuels/citeorder/pkg/analysis"
//	    "github.com/matzehuels/citeorder/pkg/papers"
//	    "github.com/matzehuels/citeorder/pkg/report"
//	    "github.com/matzehuels/citeorder/pkg/toposort"
//	)
//
//	ds := papers.Default()
//	g := ds.Graph()
//
//	rep, err := analysis.NewRunner(analysis.Options{}, nil).Run(context.Background(), g)
//	if err != nil {
//	    return err
//	}
//	if kahn, ok := rep.Outcome(toposort.AlgorithmKahn); ok && kahn.OK() {
//	    fmt.Print(report.ReadingSchedule(g, ds, kahn.Result.Order))
//	}
//
// # Orientation
//
// An edge A → B means paper A cites paper B. Topological orders therefore
// list citing papers first; reports reverse them to read foundational work
// first.
//
// [dag]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/dag
// [toposort]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/toposort
// [papers]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/papers
// [io]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/io
// [analysis]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/analysis
// [report]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/report
// [render]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/citeorder/pkg/cache
package pkg
