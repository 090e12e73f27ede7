package toposort

import (
	"time"

	"github.com/matzehuels/citeorder/pkg/dag"
)

// BFS sorts g with the same in-degree bootstrap as [Kahn] but drains the
// queue in discrete batches and records the batch index of every node.
//
// # Batches
//
// Each batch processes exactly the nodes that were queued when the batch
// started. Every node popped in batch k gets level k. Successors released
// during batch k are queued for batch k+1 and never processed within batch k,
// which is what makes the level a per-node dependency depth rather than a
// plain dequeue counter.
//
// Sources are level 0. For the edge convention used here (A→B means A cites
// B), foundational papers end up at the highest level; reports that want
// "level 0 = foundational" use [InvertLevels].
//
// # Metrics
//
// Besides the common fields, MaxLevel is the last batch index and
// MaxQueueSize the largest batch observed, including the seed batch.
//
// A cycle leaves some nodes with positive in-degree forever; BFS reports them
// in a *CycleError. An empty or nil graph returns an empty order, empty levels
// and zeroed metrics.
func BFS(g *dag.Graph) (Result, error) {
	if g == nil || g.Len() == 0 {
		res := emptyResult(AlgorithmBFS)
		res.Levels = NewLevels(nil, nil)
		return res, nil
	}

	start := time.Now()
	table := newInDegreeTable(g)
	queue := table.seeds()
	order := make([]string, 0, len(table.order))
	assigned := make(map[string]int, len(table.order))

	level := 0
	maxQueue := len(queue)
	for len(queue) > 0 {
		batch := len(queue)
		maxQueue = max(maxQueue, batch)

		for range batch {
			curr := queue[0]
			queue = queue[1:]
			order = append(order, curr)
			assigned[curr] = level
			queue = append(queue, table.release(g, curr)...)
		}
		level++
	}

	if len(order) < len(table.order) {
		return Result{}, &CycleError{Algorithm: AlgorithmBFS, Nodes: table.remaining(order)}
	}

	m := baseMetrics(AlgorithmBFS, g.Len(), table.edges, start)
	m.ActualOperations = m.Vertices + m.Edges
	m.MaxLevel = level - 1
	m.MaxQueueSize = maxQueue
	return Result{
		Order:   order,
		Levels:  NewLevels(table.order, assigned),
		Metrics: m,
	}, nil
}
