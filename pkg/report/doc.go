// Package report turns analysis results into the human-readable artifacts
// citeorder writes to disk: the complexity table, the reading schedule, the
// dependency level and flow reports, the performance summaries, the CSV
// comparison and the machine-readable run summary.
//
// Every text report is a pure function of its inputs and returns a string;
// writing files is left to the caller. Reports that need paper metadata take
// a [papers.Dataset]. A nil dataset is accepted everywhere and falls back to
// bare node IDs, so graphs imported from JSON can be reported on too.
//
//	rep, _ := analysis.NewRunner(analysis.Options{}, nil).Run(ctx, g)
//	fmt.Print(report.ComplexityAnalysis(rep))
//
//	kahn, _ := rep.Outcome(toposort.AlgorithmKahn)
//	fmt.Print(report.ReadingSchedule(g, ds, kahn.Result.Order))
package report
