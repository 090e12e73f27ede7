package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citeorder/pkg/analysis"
	"github.com/matzehuels/citeorder/pkg/buildinfo"
	"github.com/matzehuels/citeorder/pkg/cache"
	"github.com/matzehuels/citeorder/pkg/dag"
	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/papers"
	"github.com/matzehuels/citeorder/pkg/render"
	"github.com/matzehuels/citeorder/pkg/render/chart"
	"github.com/matzehuels/citeorder/pkg/render/nodelink"
	"github.com/matzehuels/citeorder/pkg/report"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// Artifact file names written by analyze.
const (
	fileComplexity    = "complexity_analysis.txt"
	fileSchedule      = "reading_schedule.txt"
	fileDependency    = "dependency_analysis.txt"
	fileVisualization = "dependency_visualization.txt"
	fileComparison    = "algorithm_comparison.csv"
	filePerformance   = "performance_analysis.txt"
	fileBenchmark     = "benchmark.txt"
	fileCitationGraph = "citation_graph.png"
	filePerfChart     = "performance_comparison.png"
	fileSummaryBase   = "summary"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	input         inputFlags
	output        string // directory for all artifacts
	parallel      bool   // run the sorters concurrently
	noImages      bool   // skip the Graphviz and chart renders
	noCache       bool   // render without the artifact cache
	cacheBackend  string // file or bolt
	summaryFormat string // json or yaml
	bench         int    // benchmark iterations; 0 skips the benchmark
	print         bool   // echo the text reports to stdout
}

// analyzeCommand creates the analyze command, which runs the full pipeline.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := analyzeOpts{
		output:        defaultOutputDir,
		cacheBackend:  backendFile,
		summaryFormat: report.FormatJSON,
	}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run all algorithms and write reports, CSV and images",
		Long: `Run Kahn's algorithm, DFS and BFS on the citation graph, validate every
order, and write the results to the output directory:

  complexity_analysis.txt       metrics table and algorithm comparison
  reading_schedule.txt          papers from foundational to advanced (Kahn)
  dependency_analysis.txt       papers grouped by dependency depth (BFS)
  dependency_visualization.txt  dependency buckets and level tree
  algorithm_comparison.csv      per-algorithm metrics
  performance_analysis.txt      execution times in microseconds
  summary.json                  machine-readable run summary
  citation_graph.png            layered citation diagram
  performance_comparison.png    execution time bar chart

Rendered images are cached, so repeated runs on the same graph are fast.
The command fails if any algorithm fails, after writing everything it can.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	opts.input.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output directory")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "run the algorithms concurrently")
	cmd.Flags().BoolVar(&opts.noImages, "no-images", false, "skip image generation")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the image cache")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache-backend", opts.cacheBackend, "image cache backend: file, bolt")
	cmd.Flags().StringVar(&opts.summaryFormat, "summary-format", opts.summaryFormat, "summary format: json, yaml")
	cmd.Flags().IntVar(&opts.bench, "bench", 0, "also benchmark each algorithm over N runs")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the text reports to stdout")

	return cmd
}

// runAnalyze runs the analysis and writes every artifact.
func (c *CLI) runAnalyze(ctx context.Context, out io.Writer, opts analyzeOpts) error {
	if err := errors.ValidateOutputDir(opts.output); err != nil {
		return err
	}
	if err := errors.ValidateChoice(errors.ErrCodeInvalidFormat, "summary format", opts.summaryFormat, report.FormatJSON, report.FormatYAML); err != nil {
		return err
	}
	if err := errors.ValidateChoice(errors.ErrCodeInvalidInput, "cache backend", opts.cacheBackend, backendFile, backendBolt); err != nil {
		return err
	}
	if opts.bench < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--bench must not be negative")
	}

	g, ds, err := opts.input.load()
	if err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	logger.Info("Analyzing citation graph", "input", opts.input.describe(), "papers", g.Len(), "citations", g.EdgeCount())

	prog := newProgress(logger)
	runner := analysis.NewRunner(analysis.Options{Parallel: opts.parallel}, logger)
	rep, err := runner.Run(ctx, g)
	if err != nil {
		return err
	}
	printOutcomes(out, rep)

	w := &artifactWriter{dir: opts.output}
	w.text(fileComplexity, report.ComplexityAnalysis(rep))

	kahn, kahnOK := rep.Outcome(toposort.AlgorithmKahn)
	kahnOK = kahnOK && kahn.OK()
	levels := rep.Levels()
	if kahnOK {
		w.text(fileSchedule, report.ReadingSchedule(g, ds, kahn.Result.Order))
	}
	if levels != nil {
		w.text(fileDependency, report.DependencyLevels(ds, levels))
	}
	if kahnOK {
		w.text(fileVisualization, report.DependencyFlow(g, ds, kahn.Result.Order, levels))
	}

	w.write(fileComparison, func(b *bytes.Buffer) error { return report.WriteCSV(b, rep) })
	w.text(filePerformance, report.PerformanceSummary(rep))
	w.write(fileSummaryBase+"."+strings.ToLower(opts.summaryFormat), func(b *bytes.Buffer) error {
		return report.WriteSummary(b, rep, ds, opts.summaryFormat)
	})

	if opts.bench > 0 {
		results, err := runner.Benchmark(ctx, g, opts.bench, analysis.DefaultWarmup)
		if err != nil {
			return err
		}
		w.text(fileBenchmark, report.BenchmarkSummary(results))
	}

	if !opts.noImages {
		if err := c.renderImages(ctx, out, w, g, ds, rep, opts); err != nil {
			return err
		}
	}

	if w.err != nil {
		return w.err
	}
	prog.done(fmt.Sprintf("Wrote %d artifacts", len(w.written)))

	if opts.print {
		for _, name := range []string{fileComplexity, fileSchedule, fileDependency, fileVisualization} {
			if text, ok := w.texts[name]; ok {
				fmt.Fprintln(out, text)
			}
		}
	}

	printNewline(out)
	printSuccess(out, "Analysis complete")
	for _, path := range w.written {
		printFile(out, path)
	}
	if kahnOK {
		printNewline(out)
		printNextStep(out, "Read the schedule", "cat "+filepath.Join(opts.output, fileSchedule))
	}

	if err := rep.Err(); err != nil {
		return fmt.Errorf("analysis finished with failures: %w", err)
	}
	return nil
}

// renderImages draws the citation graph and the performance chart through
// the artifact cache.
func (c *CLI) renderImages(ctx context.Context, out io.Writer, w *artifactWriter, g *dag.Graph, ds *papers.Dataset, rep *analysis.Report, opts analyzeOpts) error {
	store, err := newCache(ctx, opts.cacheBackend, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	r := render.NewRenderer(store, keyer, 0)

	dot := nodelink.ToDOT(g, rep.Levels(), nodelink.Options{Years: paperYears(ds)})
	png, err := withSpinner(ctx, os.Stderr, "Rendering citation graph...", func() ([]byte, error) {
		return r.Graph(ctx, dot, render.FormatPNG)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		printWarning(out, "Citation graph skipped: %v", err)
	} else {
		w.bytes(fileCitationGraph, png)
	}

	bars := render.PerformanceBars(rep)
	if len(bars) == 0 {
		printWarning(out, "Performance chart skipped: no algorithm succeeded")
		return nil
	}
	img, err := r.Chart(ctx, bars, chart.DefaultOptions())
	if err != nil {
		printWarning(out, "Performance chart skipped: %v", err)
		return nil
	}
	w.bytes(filePerfChart, img)
	return nil
}

// printOutcomes prints one status line per algorithm.
func printOutcomes(out io.Writer, rep *analysis.Report) {
	for _, o := range rep.Outcomes {
		switch {
		case o.Err != nil:
			printError(out, "%s: ERROR - %v", o.Name, o.Err)
		case !o.Valid:
			printError(out, "%s: FAILED - %s", o.Name, o.Message)
		default:
			printSuccess(out, "%s: SUCCESS - %d papers sorted in %.6f ms",
				o.Name, len(o.Result.Order), o.Result.Metrics.ExecutionTimeMS)
		}
	}
}

func paperYears(ds *papers.Dataset) map[string]int {
	if ds == nil {
		return nil
	}
	years := make(map[string]int, ds.Len())
	for _, p := range ds.Papers() {
		if p.Year != 0 {
			years[p.ID] = p.Year
		}
	}
	return years
}

// artifactWriter writes files into dir and remembers what it wrote. The
// first error stops further writes and is kept in err.
type artifactWriter struct {
	dir     string
	written []string
	texts   map[string]string
	err     error
}

func (w *artifactWriter) text(name, content string) {
	if w.texts == nil {
		w.texts = make(map[string]string)
	}
	w.texts[name] = content
	w.bytes(name, []byte(content))
}

func (w *artifactWriter) write(name string, fn func(*bytes.Buffer) error) {
	if w.err != nil {
		return
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		w.err = fmt.Errorf("generate %s: %w", name, err)
		return
	}
	w.bytes(name, buf.Bytes())
}

func (w *artifactWriter) bytes(name string, data []byte) {
	if w.err != nil {
		return
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		w.err = fmt.Errorf("create output directory: %w", err)
		return
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		w.err = fmt.Errorf("write %s: %w", path, err)
		return
	}
	w.written = append(w.written, path)
}
