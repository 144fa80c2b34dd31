package models

// Category classifies a target by its failure rate
type Category string

const (
	CategoryStable      Category = "stable"
	CategoryFlaky       Category = "flaky"
	CategoryProblematic Category = "problematic"
)

// TargetStats represents aggregated statistics for a target URL
type TargetStats struct {
	URL         string   `json:"url"`
	TotalRuns   int      `json:"total_runs"`
	Failures    int      `json:"failures"`
	FailureRate float64  `json:"failure_rate"`
	Category    Category `json:"category"`
}

// Passes returns the number of passing attempts for the target.
func (s TargetStats) Passes() int {
	return s.TotalRuns - s.Failures
}
