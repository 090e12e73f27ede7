package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *Graph)
		id      string
		succ    []string
		wantErr error
	}{
		{name: "valid", id: "a", succ: []string{"b"}},
		{name: "no successors", id: "a"},
		{name: "empty id", id: "", wantErr: ErrInvalidNodeID},
		{name: "empty successor", id: "a", succ: []string{"b", ""}, wantErr: ErrInvalidNodeID},
		{
			name:    "duplicate",
			setup:   func(g *Graph) { _ = g.AddNode("a") },
			id:      "a",
			wantErr: ErrDuplicateNodeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			if tt.setup != nil {
				tt.setup(g)
			}
			err := g.AddNode(tt.id, tt.succ...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddNode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddNodeCopiesSuccessors(t *testing.T) {
	succ := []string{"b", "c"}
	g := New()
	if err := g.AddNode("a", succ...); err != nil {
		t.Fatal(err)
	}
	succ[0] = "mutated"

	if got := g.Successors("a"); got[0] != "b" {
		t.Errorf("Successors(a)[0] = %q, want %q", got[0], "b")
	}
}

func TestKeysPreserveInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"z", "a", "m", "b"} {
		_ = g.AddNode(id)
	}

	want := []string{"z", "a", "m", "b"}
	if got := g.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestFromAdjacency(t *testing.T) {
	adj := map[string][]string{"a": {"b"}, "b": {}}

	g, err := FromAdjacency([]string{"b", "a"}, adj)
	if err != nil {
		t.Fatalf("FromAdjacency() error = %v", err)
	}
	if got := g.Keys(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("Keys() = %v, want [b a]", got)
	}

	if _, err := FromAdjacency([]string{"a"}, adj); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("missing key error = %v, want %v", err, ErrUnknownNode)
	}
	if _, err := FromAdjacency([]string{"a", "x"}, adj); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown key error = %v, want %v", err, ErrUnknownNode)
	}
}

func TestEdgeCount(t *testing.T) {
	g := New()
	_ = g.AddNode("a", "b", "c")
	_ = g.AddNode("b", "c")
	_ = g.AddNode("c")

	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount() = %d, want 3", got)
	}
}

func TestDanglingAndUniverse(t *testing.T) {
	g := New()
	_ = g.AddNode("a", "x", "b", "x")
	_ = g.AddNode("b", "y")

	if got, want := g.Dangling(), []string{"x", "y"}; !slices.Equal(got, want) {
		t.Errorf("Dangling() = %v, want %v", got, want)
	}
	if got, want := g.Universe(), []string{"a", "b", "x", "y"}; !slices.Equal(got, want) {
		t.Errorf("Universe() = %v, want %v", got, want)
	}
}

func TestClosed(t *testing.T) {
	g := New()
	_ = g.AddNode("a", "x")

	c := g.Closed()
	if !c.HasNode("x") {
		t.Error("Closed() should add dangling successor as key")
	}
	if g.HasNode("x") {
		t.Error("Closed() must not modify the original graph")
	}
	if len(c.Dangling()) != 0 {
		t.Errorf("Closed().Dangling() = %v, want none", c.Dangling())
	}
}

func TestInDegrees(t *testing.T) {
	g := New()
	_ = g.AddNode("a", "b", "c")
	_ = g.AddNode("b", "c")
	_ = g.AddNode("c")

	order, degree := g.InDegrees()
	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want [a b c]", order)
	}
	want := map[string]int{"a": 0, "b": 1, "c": 2}
	for id, d := range want {
		if degree[id] != d {
			t.Errorf("degree[%s] = %d, want %d", id, degree[id], d)
		}
	}
}

func TestSourcesAndSinks(t *testing.T) {
	g := New()
	_ = g.AddNode("a", "c")
	_ = g.AddNode("b", "c")
	_ = g.AddNode("c")

	if got := g.Sources(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Sources() = %v, want [a b]", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"c"}) {
		t.Errorf("Sinks() = %v, want [c]", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	_ = g.AddNode("a", "b")

	c := g.Clone()
	_ = c.AddNode("z")

	if g.HasNode("z") {
		t.Error("Clone() shares state with original")
	}
}
