package report

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/matzehuels/citeorder/pkg/analysis"
	"github.com/matzehuels/citeorder/pkg/errors"
	"github.com/matzehuels/citeorder/pkg/papers"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// Summary formats accepted by [WriteSummary].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Summary is the machine-readable record of one analysis run.
type Summary struct {
	RunID      string             `json:"run_id"`
	StartedAt  time.Time          `json:"started_at"`
	DurationMS float64            `json:"duration_ms"`
	Vertices   int                `json:"vertices"`
	Edges      int                `json:"edges"`
	Fastest    string             `json:"fastest,omitempty"`
	Algorithms []AlgorithmSummary `json:"algorithms"`
	Dataset    *papers.Stats      `json:"dataset,omitempty"`
}

// AlgorithmSummary is the part of a [Summary] describing one algorithm.
type AlgorithmSummary struct {
	Name    string                `json:"name"`
	Valid   bool                  `json:"valid"`
	Message string                `json:"message,omitempty"`
	Error   string                `json:"error,omitempty"`
	Order   []string              `json:"order,omitempty"`
	Levels  []toposort.LevelGroup `json:"levels,omitempty"`
	Metrics *toposort.Metrics     `json:"metrics,omitempty"`
}

// NewSummary builds a summary of r. ds is optional; when given, its
// statistics are included.
func NewSummary(r *analysis.Report, ds *papers.Dataset) Summary {
	s := Summary{
		RunID:      r.RunID,
		StartedAt:  r.StartedAt,
		DurationMS: float64(r.Duration) / float64(time.Millisecond),
		Vertices:   r.Vertices,
		Edges:      r.Edges,
		Algorithms: make([]AlgorithmSummary, 0, len(r.Outcomes)),
	}
	if f, ok := r.Fastest(); ok {
		s.Fastest = f.Name
	}
	if ds != nil {
		stats := ds.Stats()
		s.Dataset = &stats
	}
	for _, o := range r.Outcomes {
		a := AlgorithmSummary{Name: o.Name, Valid: o.OK(), Message: o.Message}
		if o.Err != nil {
			a.Error = o.Err.Error()
		} else {
			m := o.Result.Metrics
			a.Order = o.Result.Order
			a.Metrics = &m
			if o.Result.Levels != nil {
				a.Levels = toposort.AnalyzeLevels(o.Result.Levels)
			}
		}
		s.Algorithms = append(s.Algorithms, a)
	}
	return s
}

// WriteSummary encodes the summary of r to w as JSON or YAML.
func WriteSummary(w io.Writer, r *analysis.Report, ds *papers.Dataset, format string) error {
	if err := errors.ValidateChoice(errors.ErrCodeInvalidFormat, "summary format", format, FormatJSON, FormatYAML); err != nil {
		return err
	}
	s := NewSummary(r, ds)

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(format, FormatYAML) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode summary")
	}
	_, err = w.Write(data)
	return err
}
