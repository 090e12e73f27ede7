package toposort

import (
	"slices"
	"time"

	"github.com/matzehuels/citeorder/pkg/dag"
)

// DFS sorts g by depth-first post-order.
//
// A visit is launched from every key that has not been visited yet, in key
// order. Entering a node that is already on the active path is a cycle
// (self-loops included) and aborts the sort with a *CycleError naming that
// node. Entering a node that was finished earlier returns immediately, so
// shared sub-graphs are walked once.
//
// A node is appended to the post-order only after all of its successors are
// finished; the final order is that post-order reversed, which puts every
// node before the nodes it depends on.
//
// Metrics count successor edges as they are traversed, and two operations per
// distinct node (entry and exit). An empty or nil graph returns an empty
// order and zeroed metrics.
//
// Recursion depth equals the longest dependency chain. That is irrelevant at
// the scale of a citation set but means pathological inputs with very long
// chains grow the goroutine stack accordingly.
func DFS(g *dag.Graph) (Result, error) {
	if g == nil || g.Len() == 0 {
		return emptyResult(AlgorithmDFS), nil
	}

	start := time.Now()
	w := newDFSWalker(g)
	for _, id := range g.Keys() {
		if w.visited[id] {
			continue
		}
		if err := w.visit(id); err != nil {
			return Result{}, err
		}
	}

	order := slices.Clone(w.postorder)
	slices.Reverse(order)

	m := baseMetrics(AlgorithmDFS, g.Len(), w.edges, start)
	m.ActualOperations = w.operations
	m.RecursionDepth = len(w.onPath)
	m.PeakRecursionDepth = w.peakDepth
	return Result{Order: order, Metrics: m}, nil
}

// dfsWalker owns all state of one DFS sort. It is created per call and never
// shared, so concurrent sorts of the same graph do not interfere.
type dfsWalker struct {
	graph     *dag.Graph
	visited   map[string]bool // entered at least once
	onPath    map[string]bool // on the active recursion path
	postorder []string

	operations int
	edges      int
	peakDepth  int
}

func newDFSWalker(g *dag.Graph) *dfsWalker {
	return &dfsWalker{
		graph:     g,
		visited:   make(map[string]bool, g.Len()),
		onPath:    make(map[string]bool),
		postorder: make([]string, 0, g.Len()),
	}
}

func (w *dfsWalker) visit(id string) error {
	if w.onPath[id] {
		return &CycleError{Algorithm: AlgorithmDFS, Node: id}
	}
	if w.visited[id] {
		return nil
	}

	w.onPath[id] = true
	w.visited[id] = true
	w.operations++
	w.peakDepth = max(w.peakDepth, len(w.onPath))

	for _, next := range w.graph.Successors(id) {
		w.edges++
		if err := w.visit(next); err != nil {
			return err
		}
	}

	delete(w.onPath, id)
	w.postorder = append(w.postorder, id)
	w.operations++
	return nil
}
