package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/dag"
	graphio "github.com/matzehuels/citeorder/pkg/io"
	"github.com/matzehuels/citeorder/pkg/papers"
)

// inputFlags selects the graph a command works on.
type inputFlags struct {
	dataset string // TOML dataset file; empty means the built-in one
	graph   string // JSON or YAML graph file; overrides the dataset graph
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataset, "dataset", "", "paper dataset file (TOML, default: built-in dataset)")
	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "citation graph file (JSON or YAML) to use instead of the dataset")
}

// load returns the graph to work on and the dataset used for paper
// metadata. With --graph and no --dataset, there is no metadata and the
// returned dataset is nil.
func (f inputFlags) load() (*dag.Graph, *papers.Dataset, error) {
	var ds *papers.Dataset
	switch {
	case f.dataset != "":
		var err error
		if ds, err = papers.Load(f.dataset); err != nil {
			return nil, nil, err
		}
	case f.graph == "":
		ds = papers.Default()
	}

	if f.graph == "" {
		return ds.Graph(), ds, nil
	}
	g, err := graphio.ImportJSON(f.graph)
	if err != nil {
		return nil, nil, fmt.Errorf("load graph %s: %w", f.graph, err)
	}
	return g, ds, nil
}

// describe names the input for log lines.
func (f inputFlags) describe() string {
	switch {
	case f.graph != "":
		return f.graph
	case f.dataset != "":
		return f.dataset
	default:
		return "built-in dataset"
	}
}
