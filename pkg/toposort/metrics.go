package toposort

import "time"

// Metrics is the statistics record produced once per sort call. It is purely
// informational: nothing in the sorters reads it back.
//
// The uniform core is shared by all algorithms. MaxLevel and MaxQueueSize are
// only set by BFS; RecursionDepth and PeakRecursionDepth only by DFS.
type Metrics struct {
	Algorithm             string  `json:"algorithm"`
	ExecutionTimeMS       float64 `json:"execution_time_ms"`
	Vertices              int     `json:"vertices"`
	Edges                 int     `json:"edges"`
	TheoreticalOperations int     `json:"theoretical_operations"`
	ActualOperations      int     `json:"actual_operations"`
	SpaceComplexity       int     `json:"space_complexity"`

	MaxLevel     int `json:"max_level"`
	MaxQueueSize int `json:"max_queue_size"`

	// RecursionDepth is the size of the recursion-path set when DFS returns.
	// After a successful sort the path is always unwound, so this is 0.
	RecursionDepth int `json:"recursion_depth"`
	// PeakRecursionDepth is the longest active path seen during the walk.
	PeakRecursionDepth int `json:"peak_recursion_depth"`
}

// Efficiency returns actual operations per millisecond, or 0 when no time
// was measured.
func (m Metrics) Efficiency() float64 {
	if m.ExecutionTimeMS <= 0 {
		return 0
	}
	return float64(m.ActualOperations) / m.ExecutionTimeMS
}

// baseMetrics fills the fields every algorithm reports the same way.
func baseMetrics(algorithm string, vertices, edges int, start time.Time) Metrics {
	return Metrics{
		Algorithm:             algorithm,
		ExecutionTimeMS:       elapsedMS(start),
		Vertices:              vertices,
		Edges:                 edges,
		TheoreticalOperations: vertices + edges,
		SpaceComplexity:       vertices,
	}
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
