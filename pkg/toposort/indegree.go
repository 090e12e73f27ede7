package toposort

import "github.com/matzehuels/citeorder/pkg/dag"

// inDegreeTable is the in-degree bookkeeping shared by Kahn and BFS.
//
// order is the iteration order of the table: every key of the graph in
// insertion order, then successor-only nodes in the order they are first
// seen. The zero-in-degree seed queue and the remaining set reported on a
// cycle both follow it.
type inDegreeTable struct {
	order  []string
	degree map[string]int
	edges  int
}

func newInDegreeTable(g *dag.Graph) *inDegreeTable {
	keys := g.Keys()
	t := &inDegreeTable{
		order:  keys,
		degree: make(map[string]int, len(keys)),
	}
	for _, k := range keys {
		t.degree[k] = 0
	}
	for _, k := range keys {
		for _, s := range g.Successors(k) {
			if _, seen := t.degree[s]; !seen {
				t.order = append(t.order, s)
			}
			t.degree[s]++
			t.edges++
		}
	}
	return t
}

// seeds returns the nodes whose in-degree is exactly zero, in table order.
func (t *inDegreeTable) seeds() []string {
	var queue []string
	for _, id := range t.order {
		if t.degree[id] == 0 {
			queue = append(queue, id)
		}
	}
	return queue
}

// release decrements the in-degree of every successor of id and returns the
// ones that just reached zero, in listed order.
func (t *inDegreeTable) release(g *dag.Graph, id string) []string {
	var ready []string
	for _, s := range g.Successors(id) {
		t.degree[s]--
		if t.degree[s] == 0 {
			ready = append(ready, s)
		}
	}
	return ready
}

// remaining returns the nodes of the table that are absent from done.
func (t *inDegreeTable) remaining(done []string) []string {
	seen := make(map[string]bool, len(done))
	for _, id := range done {
		seen[id] = true
	}
	var out []string
	for _, id := range t.order {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}
