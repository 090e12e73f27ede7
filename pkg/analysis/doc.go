// Package analysis runs every topological sort over a graph, validates the
// results, and collects them into a [Report].
//
// # Architecture
//
// A [Runner] holds the sorters to compare and a logger. [Runner.Run] feeds the
// same read-only graph to each sorter, checks each order with
// toposort.Validate, and records one [Outcome] per algorithm. A cycle makes
// that algorithm's outcome fail; the remaining algorithms still run.
//
// With [Options].Parallel the sorters run on separate goroutines through an
// errgroup. They share nothing but the input graph, which none of them
// mutates. Outcomes are always stored in sorter order, so reports do not
// depend on scheduling.
//
// # Usage
//
//	runner := analysis.NewRunner(analysis.Options{Parallel: true}, logger)
//	report, err := runner.Run(ctx, papers.Default().Graph())
//	if err != nil {
//	    return err // context cancelled
//	}
//	if err := report.Err(); err != nil {
//	    logger.Warn("some algorithms failed", "error", err)
//	}
//
// # Benchmarks
//
// [Runner.Benchmark] repeats every sort and reports average, minimum and
// maximum wall time. The numbers are illustrative: there is no CPU pinning,
// no outlier rejection and no statistical testing.
package analysis
