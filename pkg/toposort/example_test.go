package toposort_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/citeorder/pkg/dag"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

func ExampleKahn() {
	g := dag.New()
	_ = g.AddNode("review", "study_b", "study_a")
	_ = g.AddNode("study_b", "study_a")
	_ = g.AddNode("study_a")

	res, err := toposort.Kahn(g)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Order)
	fmt.Println(toposort.Validate(g, res.Order))
	// Output:
	// [review study_b study_a]
	// true Valid topological order
}

func ExampleBFS() {
	g := dag.New()
	_ = g.AddNode("A", "B", "C")
	_ = g.AddNode("B", "D")
	_ = g.AddNode("C", "D")
	_ = g.AddNode("D")

	res, _ := toposort.BFS(g)
	for _, group := range toposort.AnalyzeLevels(res.Levels) {
		fmt.Println(group.Level, group.Nodes)
	}
	// Output:
	// 0 [A]
	// 1 [B C]
	// 2 [D]
}

func ExampleDFS_cycle() {
	g := dag.New()
	_ = g.AddNode("A", "B")
	_ = g.AddNode("B", "A")

	_, err := toposort.DFS(g)
	fmt.Println(err)
	fmt.Println(errors.Is(err, toposort.ErrCycleDetected))
	// Output:
	// dfs: cycle detected involving node: A
	// true
}
