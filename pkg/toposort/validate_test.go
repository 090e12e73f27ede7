package toposort

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/citeorder/pkg/dag"
)

func TestValidate(t *testing.T) {
	ab := func(t *testing.T) *dag.Graph { return mustGraph(t, "A", []string{"B"}) }

	tests := []struct {
		name    string
		graph   func(*testing.T) *dag.Graph
		order   []string
		wantOK  bool
		wantMsg string
	}{
		{
			name:    "edge respected",
			graph:   ab,
			order:   []string{"A", "B"},
			wantOK:  true,
			wantMsg: MsgValidOrder,
		},
		{
			name:    "edge reversed",
			graph:   ab,
			order:   []string{"B", "A"},
			wantMsg: "Invalid order: A (position 1) should come before B (position 0)",
		},
		{
			name:    "empty order",
			graph:   ab,
			order:   nil,
			wantOK:  true,
			wantMsg: MsgEmptyOrder,
		},
		{
			name:    "missing successor",
			graph:   ab,
			order:   []string{"A"},
			wantMsg: "Invalid order: B is missing from the order",
		},
		{
			name:    "missing source",
			graph:   ab,
			order:   []string{"B"},
			wantMsg: "Invalid order: A is missing from the order",
		},
		{
			name:    "self loop",
			graph:   func(t *testing.T) *dag.Graph { return mustGraph(t, "A", []string{"A"}) },
			order:   []string{"A"},
			wantMsg: "Invalid order: A (position 0) should come before A (position 0)",
		},
		{
			name:    "first violation reported",
			graph:   diamond,
			order:   []string{"D", "C", "B", "A"},
			wantMsg: "Invalid order: A (position 3) should come before B (position 2)",
		},
		{
			name:    "isolated node may be absent",
			graph:   func(t *testing.T) *dag.Graph { return mustGraph(t, "A", []string{"B"}, "Z", []string{}) },
			order:   []string{"A", "B"},
			wantOK:  true,
			wantMsg: MsgValidOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := Validate(tt.graph(t), tt.order)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidateNilGraph(t *testing.T) {
	ok, msg := Validate(nil, []string{"A"})
	assert.True(t, ok)
	assert.Equal(t, MsgValidOrder, msg)
}
