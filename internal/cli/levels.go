package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/report"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// levelsCommand creates the levels command, which prints the dependency
// level report based on BFS.
func (c *CLI) levelsCommand() *cobra.Command {
	var (
		input inputFlags
		flow  bool
	)

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Group papers by dependency depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLevels(cmd.Context(), cmd.OutOrStdout(), input, flow)
		},
	}

	input.register(cmd)
	cmd.Flags().BoolVar(&flow, "flow", false, "also print the dependency flow diagram")
	return cmd
}

func (c *CLI) runLevels(ctx context.Context, out io.Writer, input inputFlags, flow bool) error {
	g, ds, err := input.load()
	if err != nil {
		return err
	}
	res, err := toposort.BFS(g)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("levels computed", "levels", res.Metrics.MaxLevel+1, "max_queue", res.Metrics.MaxQueueSize)

	fmt.Fprint(out, report.DependencyLevels(ds, res.Levels))
	if !flow {
		return nil
	}
	kahn, err := toposort.Kahn(g)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, report.DependencyFlow(g, ds, kahn.Order, res.Levels))
	return nil
}
