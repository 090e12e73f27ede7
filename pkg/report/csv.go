package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/citeorder/pkg/analysis"
)

// CSVHeader is the header row written by [WriteCSV].
var CSVHeader = []string{
	"Algorithm",
	"Execution_Time_ms",
	"Vertices",
	"Edges",
	"Theoretical_Operations_V+E",
	"Actual_Operations",
	"Space_Complexity",
	"Efficiency_Ops_per_ms",
	"Valid_Result",
}

// WriteCSV writes one row per algorithm in run order. Algorithms that failed
// to sort or validate get a row of zeros marked NO.
func WriteCSV(w io.Writer, r *analysis.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, o := range r.Outcomes {
		if err := cw.Write(csvRow(o)); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func csvRow(o analysis.Outcome) []string {
	if !o.OK() {
		return []string{o.Name, "0.000000", "0", "0", "0", "0", "0", "0.00", "NO"}
	}
	m := o.Result.Metrics
	return []string{
		o.Name,
		strconv.FormatFloat(m.ExecutionTimeMS, 'f', 6, 64),
		strconv.Itoa(m.Vertices),
		strconv.Itoa(m.Edges),
		strconv.Itoa(m.TheoreticalOperations),
		strconv.Itoa(m.ActualOperations),
		strconv.Itoa(m.SpaceComplexity),
		strconv.FormatFloat(m.Efficiency(), 'f', 2, 64),
		"YES",
	}
}
