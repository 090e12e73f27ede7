package toposort

import (
	"strings"

	"github.com/matzehuels/citeorder/pkg/dag"
)

// Algorithm names as they appear in metrics, reports and the CSV export.
const (
	AlgorithmKahn = "Kahn"
	AlgorithmDFS  = "DFS"
	AlgorithmBFS  = "BFS"
)

// Result is the outcome of one successful sort.
type Result struct {
	// Order lists every node before the nodes it points to.
	Order []string
	// Levels holds the batch index of every node. Only BFS sets it.
	Levels *Levels
	// Metrics describes the run.
	Metrics Metrics
}

func emptyResult(algorithm string) Result {
	return Result{
		Order:   []string{},
		Metrics: Metrics{Algorithm: algorithm},
	}
}

// Sorter is a named topological sort.
type Sorter interface {
	Name() string
	Sort(g *dag.Graph) (Result, error)
}

// SorterFunc adapts a plain sort function to [Sorter].
type SorterFunc struct {
	name string
	fn   func(*dag.Graph) (Result, error)
}

// NewSorter wraps fn under name.
func NewSorter(name string, fn func(*dag.Graph) (Result, error)) SorterFunc {
	return SorterFunc{name: name, fn: fn}
}

// Name returns the algorithm name.
func (s SorterFunc) Name() string { return s.name }

// Sort runs the wrapped function.
func (s SorterFunc) Sort(g *dag.Graph) (Result, error) { return s.fn(g) }

// Algorithms returns the built-in sorters in reporting order: Kahn, DFS, BFS.
func Algorithms() []Sorter {
	return []Sorter{
		NewSorter(AlgorithmKahn, Kahn),
		NewSorter(AlgorithmDFS, DFS),
		NewSorter(AlgorithmBFS, BFS),
	}
}

// Names returns the names of [Algorithms] in the same order.
func Names() []string {
	algos := Algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.Name()
	}
	return names
}

// Lookup finds a built-in sorter by name, ignoring case.
func Lookup(name string) (Sorter, bool) {
	for _, s := range Algorithms() {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}
	return nil, false
}
