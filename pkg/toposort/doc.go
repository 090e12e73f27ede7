// Package toposort implements three topological sorts over a [dag.Graph],
// an order validator, and BFS level analysis.
//
// # Edge Convention
//
// An edge A→B means "A depends on B" (paper A cites paper B). A valid order
// places A strictly before B. Read backwards, such an order is a reading
// schedule: foundations first.
//
// # Algorithms
//
//   - [Kahn]: in-degree counting with a single FIFO queue.
//   - [DFS]: recursive depth-first walk, reversed post-order.
//   - [BFS]: Kahn's bootstrap processed in batches; every node is tagged
//     with the batch that released it (see [Levels]).
//
// All three run in O(V + E) and allocate their state per call. None mutates
// the input graph, so the same graph may be sorted concurrently from several
// goroutines.
//
// # Tie-Breaking
//
// When several nodes are ready at once, the earliest in the in-degree table
// wins. That table lists graph keys in insertion order followed by
// successor-only nodes in first-seen order. DFS launches its walks in key
// order and visits successors in listed order. Output therefore depends only
// on the input's own ordering, never on map iteration.
//
// # Errors
//
// The only failure is a cycle. Every sorter returns a *[CycleError] that
// unwraps to [ErrCycleDetected]:
//
//	res, err := toposort.Kahn(g)
//	if errors.Is(err, toposort.ErrCycleDetected) {
//	    var ce *toposort.CycleError
//	    errors.As(err, &ce)
//	    log.Printf("skipping %s: %v", ce.Algorithm, ce)
//	}
//
// [Validate] never returns an error. It reports a boolean and a message and
// leaves severity to the caller.
//
// # Metrics
//
// Each sort returns a [Metrics] record alongside the order. Timing is wall
// clock and illustrative only.
package toposort
