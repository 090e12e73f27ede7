package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/citeorder/pkg/analysis"
	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/papers"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// fixedReport returns a report with deterministic timings: Kahn 10µs,
// DFS 20µs and a BFS that hit a cycle.
func fixedReport() *analysis.Report {
	metrics := func(name string, ms float64) toposort.Metrics {
		return toposort.Metrics{
			Algorithm:             name,
			ExecutionTimeMS:       ms,
			Vertices:              4,
			Edges:                 4,
			TheoreticalOperations: 8,
			ActualOperations:      8,
			SpaceComplexity:       4,
		}
	}
	return &analysis.Report{
		RunID:     "test-run",
		StartedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:  2 * time.Millisecond,
		Vertices:  4,
		Edges:     4,
		Outcomes: []analysis.Outcome{
			{
				Name:    toposort.AlgorithmKahn,
				Result:  toposort.Result{Order: []string{"A", "B", "C", "D"}, Metrics: metrics("Kahn", 0.01)},
				Valid:   true,
				Message: toposort.MsgValidOrder,
			},
			{
				Name:    toposort.AlgorithmDFS,
				Result:  toposort.Result{Order: []string{"A", "C", "B", "D"}, Metrics: metrics("DFS", 0.02)},
				Valid:   true,
				Message: toposort.MsgValidOrder,
			},
			{
				Name: toposort.AlgorithmBFS,
				Err:  &toposort.CycleError{Algorithm: "BFS", Nodes: []string{"B", "C"}},
			},
		},
	}
}

// datasetReport runs every algorithm on the built-in dataset.
func datasetReport(t *testing.T) (*analysis.Report, *papers.Dataset) {
	t.Helper()
	ds := papers.Default()
	rep, err := analysis.NewRunner(analysis.Options{}, nil).Run(context.Background(), ds.Graph())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := rep.Err(); err != nil {
		t.Fatalf("Report.Err() = %v", err)
	}
	return rep, ds
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n---\n%s", w, out)
		}
	}
}

func TestPageText(t *testing.T) {
	var p page
	p.banner(5, "100% done")
	p.text("rate: %d ops")
	p.line("%d papers", 3)

	want := "=====\n100% done\n=====\nrate: %d ops\n3 papers\n"
	if got := p.String(); got != want {
		t.Errorf("page = %q, want %q", got, want)
	}
}

func TestComplexityAnalysis(t *testing.T) {
	out := ComplexityAnalysis(fixedReport())

	assertContains(t, out,
		strings.Repeat("=", 120),
		"COMPREHENSIVE ALGORITHM COMPLEXITY AND PERFORMANCE ANALYSIS",
		"ALGORITHM", "EFFICIENCY",
		"0.010000", "800.00",
		"0.020000", "400.00",
		"• Graph Size: V = 4, E = 4",
		"• Theoretical Time Complexity: O(V + E) = O(4 + 4) = O(8)",
		"• Space Complexity: O(V) = O(4) for all algorithms",
		"• KAHN'S ALGORITHM:",
		"  - Built-in cycle detection via recursion stack",
		"• BFS ALGORITHM:",
		"PERFORMANCE COMPARISON:",
		"• Fastest Algorithm: Kahn (0.010000 ms)",
		"• DFS: 0.020000 ms (2.00x slower than Kahn)",
	)

	// The failed BFS run has no table row.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "| BFS") {
			t.Errorf("failed algorithm in table: %q", line)
		}
	}
}

func TestComplexityAnalysisSingleResult(t *testing.T) {
	r := fixedReport()
	r.Outcomes = r.Outcomes[:1]
	out := ComplexityAnalysis(r)
	if strings.Contains(out, "PERFORMANCE COMPARISON") {
		t.Error("comparison needs at least two successful algorithms")
	}
	if strings.Contains(out, "DFS ALGORITHM") {
		t.Error("notes for algorithms that did not run should be omitted")
	}
}

func TestReadingSchedule(t *testing.T) {
	rep, ds := datasetReport(t)
	kahn, _ := rep.Outcome(toposort.AlgorithmKahn)

	out := ReadingSchedule(ds.Graph(), ds, kahn.Result.Order)
	assertContains(t, out,
		"OPTIMAL RESEARCH PAPER READING SCHEDULE",
		"Total Papers: 10 | Citation Relationships: 13",
		"Research Period: 8 years (2017-2024)",
		" 1. Combined pre-seed treatment",
		"    Year: 2017 | Publication: ",
		" 2. Nano-enabled strategies to enhance crop nutrition and protection",
		"    Prerequisites: Combined pre-seed treatment with microbial inoc...",
		"10. Advances in Nanotechnology for Sustainable Agriculture",
	)

	first := strings.Index(out, " 1. ")
	if first < 0 || strings.Contains(out[first:strings.Index(out, " 2. ")], "Prerequisites") {
		t.Error("foundational paper should have no prerequisites")
	}
}

func TestReadingScheduleWithoutDataset(t *testing.T) {
	ds := papers.Default()
	out := ReadingSchedule(ds.Graph(), nil, []string{"crop_protection_2019", "microbiome_study_2017"})
	assertContains(t, out, " 1. microbiome_study_2017", " 2. crop_protection_2019", "Year: n/a")
	if strings.Contains(out, "Research Period") {
		t.Error("research period needs a dataset")
	}
	if strings.Contains(out, "Prerequisites") {
		t.Error("prerequisites are limited to known papers")
	}
}

func TestDependencyLevels(t *testing.T) {
	rep, ds := datasetReport(t)

	out := DependencyLevels(ds, rep.Levels())
	assertContains(t, out,
		"RESEARCH DEPENDENCY LEVEL ANALYSIS",
		"LEVEL 0 – Foundational (no prerequisites) (1 paper):",
		"  • 2017: Combined pre-seed treatment with microbial inoculants and Mo nanopa...",
		"LEVEL 1 – Depends on 1 previous paper (1 paper):",
		"  • 2019: Nano-enabled strategies to enhance crop nutrition and protection",
		"LEVEL 3 – Depends on 3 previous papers (2 papers):",
		"LEVEL 6 – Depends on 6 previous papers (1 paper):",
	)
	if strings.Index(out, "LEVEL 2") > strings.Index(out, "LEVEL 3") {
		t.Error("levels should be listed in ascending order")
	}
}

func TestDependencyLevelsEmpty(t *testing.T) {
	if got := DependencyLevels(nil, nil); got != NoDependencyData+"\n" {
		t.Errorf("DependencyLevels(nil) = %q", got)
	}
}

func TestDependencyFlow(t *testing.T) {
	rep, ds := datasetReport(t)
	kahn, _ := rep.Outcome(toposort.AlgorithmKahn)

	out := DependencyFlow(ds.Graph(), ds, kahn.Result.Order, rep.Levels())
	assertContains(t, out,
		"DEPENDENCY VISUALIZATION - CITATION FLOW",
		"   • microbiome_study_2017: 2017 - Combined pre-seed treatment with microbi...",
		"   • climate_review_2024: 2024 - Needs: microbe_interactions_2024, bionano_fertilizers_2024",
		"● climate_review_2024: 2024 (Foundation) ← depends on: microbe_interactions_2024, bionano_fertilizers_2024",
		"    ├── microbe_interactions_2024: 2024 ← depends on: innovations_review_2023, precision_ag_2023",
		"    └── bionano_fertilizers_2024: 2024 ← depends on: nanofertilizers_2022",
		strings.Repeat("    ", 6)+"└── microbiome_study_2017: 2017 (no dependencies)",
		" WHAT THIS SHOWS:",
	)

	advanced := out[strings.Index(out, " ADVANCED (Integrates Multiple Works):"):strings.Index(out, " AUTOMATIC")]
	if strings.Contains(advanced, "•") {
		t.Errorf("no paper cites more than two others, got:\n%s", advanced)
	}
}

func TestPerformanceSummary(t *testing.T) {
	out := PerformanceSummary(fixedReport())
	want := "PERFORMANCE SUMMARY (Execution times in microseconds)\n" +
		"Algorithm | Avg Time (μs)\n" +
		strings.Repeat("-", 40) + "\n" +
		"Kahn       | 10.00\n" +
		"DFS        | 20.00\n"
	if out != want {
		t.Errorf("PerformanceSummary() =\n%s\nwant:\n%s", out, want)
	}
}

func TestBenchmarkSummary(t *testing.T) {
	out := BenchmarkSummary([]analysis.BenchmarkResult{
		{Algorithm: "Kahn", Iterations: 100, Avg: 1500 * time.Nanosecond, Min: time.Microsecond, Max: 3 * time.Microsecond},
		{Algorithm: "DFS", Iterations: 100, Err: fmt.Errorf("boom")},
	})
	assertContains(t, out,
		"Kahn       |       1.50 |       1.00 |       3.00 | 100",
		"DFS        | error: boom",
	)
}

func TestDatasetOverview(t *testing.T) {
	out := DatasetOverview(papers.Default())
	assertContains(t, out,
		"=== NANOTECHNOLOGY IN AGRICULTURE RESEARCH EVOLUTION ===",
		"Research Period: 8 years (2017-2024)",
		"Total Papers: 10",
		"Citation Relationships: 13",
		"  2017: 1 paper(s)",
		"    - Combined pre-seed treatment with microbial inoculants and Mo...",
		"  2024: 3 paper(s)",
		"Foundational Papers: 1",
		"Most Cited Paper: 2 citations",
		"Average Citations per Paper: 1.4",
		"  2 citations: Nano-enabled strategies to enhance crop nutrition ...",
	)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, fixedReport()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if got := strings.Join(records[0], ","); got != strings.Join(CSVHeader, ",") {
		t.Errorf("header = %s", got)
	}
	if got := strings.Join(records[1], ","); got != "Kahn,0.010000,4,4,8,8,4,800.00,YES" {
		t.Errorf("Kahn row = %s", got)
	}
	if got := strings.Join(records[3], ","); got != "BFS,0.000000,0,0,0,0,0,0.00,NO" {
		t.Errorf("BFS row = %s", got)
	}
}

func TestWriteSummary(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteSummary(&buf, fixedReport(), papers.Default(), FormatJSON); err != nil {
			t.Fatalf("WriteSummary() error = %v", err)
		}
		var s Summary
		if err := json.Unmarshal(buf.Bytes(), &s); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if s.RunID != "test-run" || s.Fastest != "Kahn" || len(s.Algorithms) != 3 {
			t.Errorf("summary = %+v", s)
		}
		if s.Dataset == nil || s.Dataset.TotalPapers != 10 {
			t.Errorf("Dataset = %+v", s.Dataset)
		}
		bfs := s.Algorithms[2]
		if bfs.Valid || !strings.Contains(bfs.Error, "cycle") || bfs.Metrics != nil {
			t.Errorf("BFS summary = %+v", bfs)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteSummary(&buf, fixedReport(), nil, "YAML"); err != nil {
			t.Fatalf("WriteSummary() error = %v", err)
		}
		assertContains(t, buf.String(), "run_id: test-run", "fastest: Kahn", "name: DFS")
		if strings.Contains(buf.String(), "dataset:") {
			t.Error("dataset stats without a dataset")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		err := WriteSummary(&bytes.Buffer{}, fixedReport(), nil, "xml")
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("WriteSummary(xml) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
		}
	})
}

func TestSummaryLevels(t *testing.T) {
	rep, ds := datasetReport(t)
	s := NewSummary(rep, ds)
	for _, a := range s.Algorithms {
		if a.Name == toposort.AlgorithmBFS && len(a.Levels) != 7 {
			t.Errorf("BFS levels = %d groups, want 7", len(a.Levels))
		}
		if a.Name != toposort.AlgorithmBFS && a.Levels != nil {
			t.Errorf("%s should carry no levels", a.Name)
		}
	}
}
