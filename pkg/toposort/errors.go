package toposort

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycleDetected is the single failure kind reported by the sorters. Every
// *CycleError unwraps to it, so callers can test with errors.Is.
var ErrCycleDetected = errors.New("cycle detected")

// CycleError reports that the input graph is not acyclic.
//
// Kahn and BFS fill Nodes with every node that was never dequeued, in
// in-degree table order. DFS fills Node with the node that was found on the
// active recursion path, which for a self-loop is the looping node itself.
type CycleError struct {
	Algorithm string
	Node      string
	Nodes     []string
}

func (e *CycleError) Error() string {
	prefix := strings.ToLower(e.Algorithm)
	if e.Node != "" {
		return fmt.Sprintf("%s: cycle detected involving node: %s", prefix, e.Node)
	}
	return fmt.Sprintf("%s: graph contains cycle involving nodes: [%s]", prefix, strings.Join(e.Nodes, ", "))
}

// Unwrap returns ErrCycleDetected.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }
