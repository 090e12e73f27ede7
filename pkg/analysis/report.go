package analysis

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/citeorder/pkg/toposort"
)

// Outcome is the result of one algorithm in a run.
type Outcome struct {
	Name    string
	Result  toposort.Result
	Valid   bool
	Message string
	Err     error
}

// OK reports whether the sort succeeded and its order validated.
func (o Outcome) OK() bool { return o.Err == nil && o.Valid }

// Report collects the outcomes of one [Runner.Run].
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Vertices  int
	Edges     int
	Outcomes  []Outcome
}

// Outcome returns the outcome of the named algorithm.
func (r *Report) Outcome(name string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}

// Succeeded returns the outcomes that sorted and validated, in run order.
func (r *Report) Succeeded() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes that errored or produced an invalid order.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Fastest returns the successful outcome with the lowest execution time.
// Ties go to the earlier algorithm.
func (r *Report) Fastest() (Outcome, bool) {
	var best Outcome
	found := false
	for _, o := range r.Succeeded() {
		if !found || o.Result.Metrics.ExecutionTimeMS < best.Result.Metrics.ExecutionTimeMS {
			best, found = o, true
		}
	}
	return best, found
}

// Levels returns the BFS level assignment, or nil when BFS did not succeed.
func (r *Report) Levels() *toposort.Levels {
	if o, ok := r.Outcome(toposort.AlgorithmBFS); ok && o.OK() {
		return o.Result.Levels
	}
	return nil
}

// Err returns nil when every algorithm succeeded. Otherwise it returns a
// *multierror.Error with one entry per failed algorithm.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, o := range r.Outcomes {
		switch {
		case o.Err != nil:
			result = multierror.Append(result, o.Err)
		case !o.Valid:
			result = multierror.Append(result, fmt.Errorf("%s: %s", o.Name, o.Message))
		}
	}
	return result.ErrorOrNil()
}
