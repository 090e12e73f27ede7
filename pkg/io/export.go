package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/citeorder/pkg/dag"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges,omitempty"`
}

type node struct {
	ID    string   `json:"id"`
	Cites []string `json:"cites,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes g as JSON and writes it to w. Every key becomes a node
// with its successors in "cites"; dangling successors are not written as
// nodes of their own. The output can be re-imported with [ReadJSON].
func WriteJSON(g *dag.Graph, w io.Writer) error {
	keys := g.Keys()
	out := graph{Nodes: make([]node, len(keys))}
	for i, k := range keys {
		out.Nodes[i] = node{ID: k, Cites: g.Successors(k)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *dag.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
