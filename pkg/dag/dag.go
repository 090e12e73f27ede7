package dag

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID or one
	// of its successor IDs is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID has already been added as a key.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by [FromAdjacency] when the key order names
	// a node that has no adjacency entry.
	ErrUnknownNode = errors.New("unknown node")
)

// Graph is an adjacency mapping from node ID to an ordered list of successor
// IDs. An edge A→B reads "A depends on B" (paper A cites paper B).
//
// Keys are kept in insertion order. Every traversal that has to pick among
// several candidates (in-degree seeding, DFS roots, report listings) follows
// that order, so results never depend on Go map iteration.
//
// Successors do not need to be keys themselves. Such dangling successors are
// leaf dependencies: they have no outgoing edges, and sorters include them in
// their output after the keys in first-seen order (see [Graph.Universe]).
//
// Graph does not reject cycles; detecting them is the job of the sorters.
// The zero value is not usable - use [New]. A Graph is safe for concurrent
// reads once it is fully built.
type Graph struct {
	keys []string
	adj  map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// AddNode appends id as a key with the given successors in listed order.
// Returns ErrInvalidNodeID if id or any successor is empty, and
// ErrDuplicateNodeID if id was already added.
//
// Repeated successors are kept as separate edges, matching how the in-degree
// bookkeeping counts them.
func (g *Graph) AddNode(id string, successors ...string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.adj[id]; exists {
		return ErrDuplicateNodeID
	}
	for _, s := range successors {
		if s == "" {
			return ErrInvalidNodeID
		}
	}
	g.keys = append(g.keys, id)
	g.adj[id] = slices.Clone(successors)
	if g.adj[id] == nil {
		g.adj[id] = []string{}
	}
	return nil
}

// FromAdjacency builds a graph from a plain map plus an explicit key order.
// Every entry of keys must exist in adj and every key of adj must be listed
// in keys; otherwise ErrUnknownNode is returned.
func FromAdjacency(keys []string, adj map[string][]string) (*Graph, error) {
	if len(keys) != len(adj) {
		return nil, ErrUnknownNode
	}
	g := New()
	for _, k := range keys {
		succ, ok := adj[k]
		if !ok {
			return nil, ErrUnknownNode
		}
		if err := g.AddNode(k, succ...); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Keys returns the node IDs that were added as keys, in insertion order.
// The returned slice is a copy.
func (g *Graph) Keys() []string { return slices.Clone(g.keys) }

// Successors returns the ordered successor list of id. Dangling successors
// and unknown IDs yield nil. The returned slice must not be modified.
func (g *Graph) Successors(id string) []string { return g.adj[id] }

// HasNode reports whether id was added as a key.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Len returns the number of keys.
func (g *Graph) Len() int { return len(g.keys) }

// EdgeCount returns the total number of successor entries across all keys.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, k := range g.keys {
		n += len(g.adj[k])
	}
	return n
}

// Universe returns every node ID the graph mentions: all keys in insertion
// order, followed by dangling successors in the order they are first seen
// while scanning the adjacency lists.
func (g *Graph) Universe() []string {
	out := slices.Clone(g.keys)
	return append(out, g.Dangling()...)
}

// Dangling returns successor IDs that are not keys, in first-seen order.
// Returns nil for a closed graph.
func (g *Graph) Dangling() []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range g.keys {
		for _, s := range g.adj[k] {
			if _, isKey := g.adj[s]; isKey || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Closed returns a copy of the graph in which every dangling successor has
// been appended as a key with an empty successor list.
func (g *Graph) Closed() *Graph {
	c := g.Clone()
	for _, d := range g.Dangling() {
		c.keys = append(c.keys, d)
		c.adj[d] = []string{}
	}
	return c
}

// InDegrees returns the number of incoming edges per node together with the
// node order used to build it (keys first, then dangling successors).
func (g *Graph) InDegrees() (order []string, degree map[string]int) {
	order = g.Universe()
	degree = make(map[string]int, len(order))
	for _, id := range order {
		degree[id] = 0
	}
	for _, k := range g.keys {
		for _, s := range g.adj[k] {
			degree[s]++
		}
	}
	return order, degree
}

// Sources returns nodes with no incoming edges, in universe order.
// In a citation graph these are the papers nobody in the set cites.
func (g *Graph) Sources() []string {
	order, degree := g.InDegrees()
	var out []string
	for _, id := range order {
		if degree[id] == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns nodes with no outgoing edges, in universe order.
// In a citation graph these are the foundational papers.
func (g *Graph) Sinks() []string {
	var out []string
	for _, id := range g.Universe() {
		if len(g.adj[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		keys: slices.Clone(g.keys),
		adj:  make(map[string][]string, len(g.adj)),
	}
	for k, v := range g.adj {
		c.adj[k] = slices.Clone(v)
	}
	return c
}
