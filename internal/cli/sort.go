package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/analysis"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// sortResult is the JSON form of one sort printed by `sort --json`.
type sortResult struct {
	Algorithm string                `json:"algorithm"`
	Order     []string              `json:"order"`
	Levels    []toposort.LevelGroup `json:"levels,omitempty"`
	Valid     bool                  `json:"valid"`
	Message   string                `json:"message"`
	Metrics   toposort.Metrics      `json:"metrics"`
}

// sortCommand creates the sort command, which runs a single algorithm.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		input  inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sort <kahn|dfs|bfs>",
		Short: "Print the topological order found by one algorithm",
		Long: `Print the topological order found by one algorithm.

The order lists citing papers before the papers they cite. Read it from the
bottom up for a foundational-first reading order, or use 'analyze' for the
full reading schedule.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"kahn", "dfs", "bfs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSort(cmd.Context(), cmd.OutOrStdout(), input, args[0], asJSON)
		},
	}

	input.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the order, levels and metrics as JSON")

	return cmd
}

func (c *CLI) runSort(ctx context.Context, out io.Writer, input inputFlags, algorithm string, asJSON bool) error {
	runner, err := analysis.NewRunnerFor(analysis.Options{Algorithms: []string{algorithm}}, loggerFromContext(ctx))
	if err != nil {
		return err
	}
	g, ds, err := input.load()
	if err != nil {
		return err
	}

	rep, err := runner.Run(ctx, g)
	if err != nil {
		return err
	}
	o := rep.Outcomes[0]
	if o.Err != nil {
		return o.Err
	}

	if asJSON {
		res := sortResult{
			Algorithm: o.Name,
			Order:     o.Result.Order,
			Valid:     o.Valid,
			Message:   o.Message,
			Metrics:   o.Result.Metrics,
		}
		if o.Result.Levels != nil {
			res.Levels = toposort.AnalyzeLevels(o.Result.Levels)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for i, id := range o.Result.Order {
		line := fmt.Sprintf("%2d. %s", i+1, id)
		if lv, ok := o.Result.Levels.Get(id); ok {
			line += StyleDim.Render(fmt.Sprintf("  [level %d]", lv))
		}
		if ds != nil {
			if p, ok := ds.Paper(id); ok {
				line += StyleDim.Render(fmt.Sprintf("  %d · %s", p.Year, p.Title))
			}
		}
		fmt.Fprintln(out, line)
	}
	printNewline(out)

	m := o.Result.Metrics
	parts := []string{
		fmt.Sprintf("%.6f ms", m.ExecutionTimeMS),
		fmt.Sprintf("V=%d", m.Vertices),
		fmt.Sprintf("E=%d", m.Edges),
		fmt.Sprintf("ops=%d", m.ActualOperations),
	}
	switch o.Name {
	case toposort.AlgorithmBFS:
		parts = append(parts, fmt.Sprintf("max level=%d", m.MaxLevel), fmt.Sprintf("max queue=%d", m.MaxQueueSize))
	case toposort.AlgorithmDFS:
		parts = append(parts, fmt.Sprintf("peak depth=%d", m.PeakRecursionDepth))
	}
	printDetail(out, "%s", strings.Join(parts, " · "))

	if !o.Valid {
		printError(out, "%s", o.Message)
		return fmt.Errorf("%s produced an invalid order", o.Name)
	}
	printSuccess(out, "%s: %s", o.Name, o.Message)
	return nil
}
