package cli

import (
	"github.com/spf13/cobra"

	graphio "github.com/matzehuels/citeorder/pkg/io"
)

// exportCommand creates the export command, which writes the citation graph
// in the JSON interchange format read by --graph.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		input  inputFlags
		output string
		closed bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the citation graph as JSON",
		Long: `Write the citation graph as JSON, in the format accepted by --graph:

  {"nodes": [{"id": "b", "cites": ["a"]}, {"id": "a"}]}

Without --output the graph is printed to stdout. With --close, cited IDs
that have no node of their own are written as nodes without citations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := input.load()
			if err != nil {
				return err
			}
			if closed {
				g = g.Closed()
			}
			if output == "" {
				return graphio.WriteJSON(g, cmd.OutOrStdout())
			}
			if err := graphio.ExportJSON(g, output); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Exported %d papers, %d citations", g.Len(), g.EdgeCount())
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&closed, "close", false, "add dangling citations as nodes")
	return cmd
}
