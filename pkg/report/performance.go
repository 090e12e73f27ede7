package report

import (
	"strings"

	"github.com/matzehuels/citeorder/pkg/analysis"
)

// PerformanceSummary lists the execution time of every successful algorithm
// in microseconds.
func PerformanceSummary(r *analysis.Report) string {
	var p page
	p.line("PERFORMANCE SUMMARY (Execution times in microseconds)")
	p.line("Algorithm | Avg Time (μs)")
	p.text(strings.Repeat("-", 40))
	for _, o := range r.Succeeded() {
		p.line("%-10s | %.2f", o.Name, o.Result.Metrics.ExecutionTimeMS*1000)
	}
	return p.String()
}

// BenchmarkSummary formats repeated-run timings. Failed algorithms show
// their error instead of numbers.
func BenchmarkSummary(results []analysis.BenchmarkResult) string {
	var p page
	p.line("BENCHMARK (microseconds)")
	p.line("%-10s | %10s | %10s | %10s | %s", "Algorithm", "Avg", "Min", "Max", "Runs")
	p.text(strings.Repeat("-", 60))
	for _, br := range results {
		if br.Err != nil {
			p.line("%-10s | error: %v", br.Algorithm, br.Err)
			continue
		}
		p.line("%-10s | %10.2f | %10.2f | %10.2f | %d",
			br.Algorithm, analysis.Micros(br.Avg), analysis.Micros(br.Min), analysis.Micros(br.Max), br.Iterations)
	}
	return p.String()
}
