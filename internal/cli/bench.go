package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/analysis"
	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/report"
)

// benchCommand creates the bench command, which times every algorithm over
// repeated runs.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		input      inputFlags
		iterations int
		warmup     int
		algorithms []string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm over repeated runs",
		Long: `Time every algorithm over repeated runs and print average, minimum and
maximum run time in microseconds. Timings on graphs this small are dominated
by noise; treat them as a rough comparison only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(cmd.Context(), cmd.OutOrStdout(), input, algorithms, iterations, warmup)
		},
	}

	input.register(cmd)
	cmd.Flags().IntVarP(&iterations, "iterations", "n", analysis.DefaultIterations, "timed runs per algorithm")
	cmd.Flags().IntVar(&warmup, "warmup", analysis.DefaultWarmup, "untimed runs before timing")
	cmd.Flags().StringSliceVarP(&algorithms, "algorithm", "a", nil, "algorithms to time (default: all)")
	return cmd
}

func (c *CLI) runBench(ctx context.Context, out io.Writer, input inputFlags, algorithms []string, iterations, warmup int) error {
	if iterations <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--iterations must be positive")
	}
	runner, err := analysis.NewRunnerFor(analysis.Options{Algorithms: algorithms}, loggerFromContext(ctx))
	if err != nil {
		return err
	}
	g, _, err := input.load()
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Benchmarking %d algorithm(s), %d runs each...", len(runner.Sorters), iterations)
	results, err := withSpinner(ctx, os.Stderr, msg, func() ([]analysis.BenchmarkResult, error) {
		return runner.Benchmark(ctx, g, iterations, warmup)
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, report.BenchmarkSummary(results))
	return nil
}
