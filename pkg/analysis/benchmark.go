package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/citeorder/pkg/dag"
)

// BenchmarkResult holds the timing of one algorithm over many runs.
type BenchmarkResult struct {
	Algorithm  string
	Iterations int
	Avg        time.Duration
	Min        time.Duration
	Max        time.Duration
	// Err is the first sort error seen; timing fields are zero when set.
	Err error
}

// Micros converts d to fractional microseconds for display.
func Micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// Benchmark runs every sorter warmup times untimed and then iterations times
// timed, one algorithm after another. Zero or negative counts fall back to
// [DefaultIterations] and a warmup of zero respectively.
//
// ctx is checked between runs; a cancelled context aborts the benchmark with
// ctx.Err().
func (r *Runner) Benchmark(ctx context.Context, g *dag.Graph, iterations, warmup int) ([]BenchmarkResult, error) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	warmup = max(warmup, 0)

	results := make([]BenchmarkResult, 0, len(r.Sorters))
	for _, s := range r.Sorters {
		br := BenchmarkResult{Algorithm: s.Name(), Iterations: iterations}

		for range warmup {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, err := s.Sort(g); err != nil {
				br.Err = err
				break
			}
		}

		var total time.Duration
		for i := 0; i < iterations && br.Err == nil; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			start := time.Now()
			_, err := s.Sort(g)
			elapsed := time.Since(start)
			if err != nil {
				br.Err = err
				break
			}
			total += elapsed
			if i == 0 || elapsed < br.Min {
				br.Min = elapsed
			}
			br.Max = max(br.Max, elapsed)
		}

		if br.Err != nil {
			br.Min, br.Max = 0, 0
			r.Logger.Warn("benchmark failed", "algorithm", br.Algorithm, "error", br.Err)
		} else {
			br.Avg = total / time.Duration(iterations)
			r.Logger.Debug("benchmarked",
				"algorithm", br.Algorithm,
				"avg_us", fmt.Sprintf("%.2f", Micros(br.Avg)))
		}
		results = append(results, br)
	}
	return results, nil
}
