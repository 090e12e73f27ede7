package toposort

import (
	"time"

	"github.com/matzehuels/citeorder/pkg/dag"
)

// Kahn sorts g with Kahn's in-degree algorithm.
//
// # Algorithm
//
//  1. Count incoming edges for every node (keys first, then successor-only
//     nodes in first-seen order).
//  2. Seed a FIFO queue with every zero in-degree node, in that same order.
//  3. Dequeue a node, append it to the result, and decrement the in-degree
//     of each listed successor; enqueue those that reach zero.
//  4. If the queue empties before every tracked node was emitted, the
//     leftovers sit on a cycle and a *CycleError lists them.
//
// Among several ready nodes the earliest in table order wins, so the result
// is deterministic for a given key and list order but is only one of the
// valid orders of the DAG.
//
// An empty or nil graph returns an empty order and zeroed metrics.
//
// # Performance
//
// Every vertex is dequeued once and every edge inspected once: O(V + E) time
// and O(V) space for the in-degree table and queue.
func Kahn(g *dag.Graph) (Result, error) {
	if g == nil || g.Len() == 0 {
		return emptyResult(AlgorithmKahn), nil
	}

	start := time.Now()
	table := newInDegreeTable(g)
	queue := table.seeds()
	order := make([]string, 0, len(table.order))

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)
		queue = append(queue, table.release(g, curr)...)
	}

	if len(order) < len(table.order) {
		return Result{}, &CycleError{Algorithm: AlgorithmKahn, Nodes: table.remaining(order)}
	}

	m := baseMetrics(AlgorithmKahn, g.Len(), table.edges, start)
	m.ActualOperations = m.Vertices + m.Edges
	return Result{Order: order, Metrics: m}, nil
}
