package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/matzehuels/citeorder/pkg/dag"
)

// ReadJSON decodes a JSON graph from r.
//
// The input must be a JSON object with a "nodes" array and an optional
// "edges" array:
//
//	{
//	  "nodes": [{"id": "a", "cites": ["b"]}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "c"}]
//	}
//
// Each node must have an "id" field. Nodes become graph keys in array order.
// A node's successor list is its "cites" array followed by the "to" of every
// edge whose "from" is that node, in edge order. Successors that are not
// declared as nodes are kept as dangling leaf dependencies.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A node has an empty or duplicate ID
//   - An edge starts at an undeclared node
//
// Cycles are not rejected here; detecting them is the sorters' job.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dag.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.build()
}

// ReadYAML decodes the same document shape as [ReadJSON] written as YAML.
func ReadYAML(r io.Reader) (*dag.Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var data graph
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.build()
}

// ImportJSON reads a graph file at path. Files ending in .yaml or .yml are
// decoded with [ReadYAML], everything else with [ReadJSON].
func ImportJSON(path string) (*dag.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return ReadJSON(f)
	}
}

func (data graph) build() (*dag.Graph, error) {
	keys := make([]string, 0, len(data.Nodes))
	adj := make(map[string][]string, len(data.Nodes))
	for _, n := range data.Nodes {
		if _, dup := adj[n.ID]; dup {
			return nil, fmt.Errorf("node %q: %w", n.ID, dag.ErrDuplicateNodeID)
		}
		keys = append(keys, n.ID)
		adj[n.ID] = append([]string{}, n.Cites...)
	}
	for _, e := range data.Edges {
		if _, ok := adj[e.From]; !ok {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, dag.ErrUnknownNode)
		}
		adj[e.From] = append(adj[e.From], e.To)
	}
	return dag.FromAdjacency(keys, adj)
}
