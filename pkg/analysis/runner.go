package analysis

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/citeorder/pkg/dag"
	"github.com/matzehuels/citeorder/pkg/observability"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// Runner compares a set of sorters on the same graph.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner.
type Runner struct {
	Sorters  []toposort.Sorter
	Parallel bool
	Logger   *log.Logger
}

// NewRunner creates a runner over every built-in algorithm. Unknown names in
// opts.Algorithms are ignored here; use [NewRunnerFor] to reject them.
// If logger is nil, opts.Logger is used, and if that is nil too, output is
// discarded.
func NewRunner(opts Options, logger *log.Logger) *Runner {
	sorters, err := opts.Sorters()
	if err != nil {
		sorters = toposort.Algorithms()
	}
	return newRunner(sorters, opts, logger)
}

// NewRunnerFor is like [NewRunner] but fails on unknown algorithm names.
func NewRunnerFor(opts Options, logger *log.Logger) (*Runner, error) {
	sorters, err := opts.Sorters()
	if err != nil {
		return nil, err
	}
	return newRunner(sorters, opts, logger), nil
}

func newRunner(sorters []toposort.Sorter, opts Options, logger *log.Logger) *Runner {
	if logger == nil {
		logger = opts.Logger
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{Sorters: sorters, Parallel: opts.Parallel, Logger: logger}
}

// Run sorts g with every sorter and validates each order.
//
// Sort failures are recorded in the report, not returned. The returned error
// is non-nil only when ctx is cancelled before all sorters ran.
func (r *Runner) Run(ctx context.Context, g *dag.Graph) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Outcomes:  make([]Outcome, len(r.Sorters)),
	}
	if g != nil {
		report.Vertices = g.Len()
		report.Edges = g.EdgeCount()
	}

	r.Logger.Debug("starting analysis",
		"run", report.RunID,
		"algorithms", len(r.Sorters),
		"parallel", r.Parallel)

	if r.Parallel {
		eg, egCtx := errgroup.WithContext(ctx)
		for i, s := range r.Sorters {
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				report.Outcomes[i] = r.runOne(egCtx, s, g)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, s := range r.Sorters {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report.Outcomes[i] = r.runOne(ctx, s, g)
		}
	}

	report.Duration = time.Since(report.StartedAt)
	r.Logger.Info("analysis complete",
		"vertices", report.Vertices,
		"edges", report.Edges,
		"failed", len(report.Failed()),
		"duration", report.Duration)
	return report, nil
}

func (r *Runner) runOne(ctx context.Context, s toposort.Sorter, g *dag.Graph) Outcome {
	hooks := observability.Analysis()
	name := s.Name()

	vertices := 0
	if g != nil {
		vertices = g.Len()
	}
	hooks.OnSortStart(ctx, name, vertices)
	start := time.Now()
	res, err := s.Sort(g)
	hooks.OnSortComplete(ctx, name, time.Since(start), err)

	out := Outcome{Name: name, Result: res, Err: err}
	if err != nil {
		r.Logger.Warn("sort failed", "algorithm", name, "error", err)
		return out
	}

	out.Valid, out.Message = toposort.Validate(g, res.Order)
	hooks.OnValidate(ctx, name, out.Valid, out.Message)
	r.Logger.Debug("sorted",
		"algorithm", name,
		"nodes", len(res.Order),
		"ms", res.Metrics.ExecutionTimeMS,
		"valid", out.Valid)
	return out
}
