// Package dag provides the ordered adjacency graph that citeorder sorts.
//
// # Overview
//
// A [Graph] maps each node ID to the ordered list of node IDs it points to.
// In the citation dataset an edge A→B means "paper A cites paper B", which is
// read as "A depends on B". Topological orderings produced by the
// [github.com/matzehuels/citeorder/pkg/toposort] package place A before B.
//
// # Basic Usage
//
//	g := dag.New()
//	_ = g.AddNode("review_2024", "study_2020", "study_2017")
//	_ = g.AddNode("study_2020", "study_2017")
//	_ = g.AddNode("study_2017")
//
// # Key Order
//
// Keys remember insertion order. Algorithms that have a choice between
// several ready nodes always pick in that order, so the same input produces
// the same output on every run and every platform.
//
// # Dangling Successors
//
// A successor that was never added as a key is tolerated and treated as a
// leaf dependency. [Graph.Universe] lists keys first and dangling successors
// after them in first-seen order; [Graph.Closed] turns them into explicit
// keys with empty lists.
//
// # Concurrency
//
// Building a graph is not safe for concurrent use. Once built, a graph is
// read-only for every consumer in this module and may be shared between
// goroutines.
package dag
