package toposort

import (
	"fmt"

	"github.com/matzehuels/citeorder/pkg/dag"
)

// Validation messages returned by [Validate] on success.
const (
	MsgEmptyOrder = "Empty order is valid for empty graph"
	MsgValidOrder = "Valid topological order"
)

// Validate checks that order is consistent with every edge of g: for each
// edge node→neighbor, node must appear strictly before neighbor.
//
// An empty order is vacuously valid. Edges are checked in key order and list
// order, and the first violation is reported with both node IDs and their
// positions. If a node appears more than once in order, its last position
// counts.
//
// An edge endpoint that does not appear in order at all makes the order
// invalid; Validate never panics on incomplete orders. Nodes without outgoing
// edges are not required to appear.
//
// Validate is a pure function and never returns an error: the boolean and
// message let the caller decide how severe a failure is.
func Validate(g *dag.Graph, order []string) (bool, string) {
	if len(order) == 0 {
		return true, MsgEmptyOrder
	}
	if g == nil {
		return true, MsgValidOrder
	}

	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	for _, node := range g.Keys() {
		for _, neighbor := range g.Successors(node) {
			pn, ok := position[node]
			if !ok {
				return false, missingMessage(node)
			}
			pb, ok := position[neighbor]
			if !ok {
				return false, missingMessage(neighbor)
			}
			if pn >= pb {
				return false, fmt.Sprintf("Invalid order: %s (position %d) should come before %s (position %d)",
					node, pn, neighbor, pb)
			}
		}
	}
	return true, MsgValidOrder
}

func missingMessage(id string) string {
	return fmt.Sprintf("Invalid order: %s is missing from the order", id)
}
