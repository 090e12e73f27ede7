package analysis

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultIterations is the number of timed runs per algorithm in a
	// benchmark.
	DefaultIterations = 100

	// DefaultWarmup is the number of untimed runs before a benchmark.
	DefaultWarmup = 10
)

// =============================================================================
// Options
// =============================================================================

// Options configures a [Runner].
type Options struct {
	// Parallel runs the sorters concurrently.
	Parallel bool `json:"parallel,omitempty"`

	// Algorithms restricts the run to the named sorters, matched case
	// insensitively. Empty means all of them.
	Algorithms []string `json:"algorithms,omitempty"`

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger `json:"-"`
}

// Sorters resolves Algorithms to sorters in reporting order.
func (o Options) Sorters() ([]toposort.Sorter, error) {
	if len(o.Algorithms) == 0 {
		return toposort.Algorithms(), nil
	}
	var out []toposort.Sorter
	for _, name := range o.Algorithms {
		s, ok := toposort.Lookup(name)
		if !ok {
			return nil, errors.ValidateChoice(errors.ErrCodeInvalidAlgorithm, "algorithm", name, toposort.Names()...)
		}
		out = append(out, s)
	}
	return out, nil
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
