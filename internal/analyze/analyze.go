// Package analyze aggregates result records into per-target failure-rate
// statistics and classifies each target.
package analyze

import (
	"sort"

	"flaky-monitor/internal/models"
)

// Classification thresholds. Both boundaries are strict: a failure rate
// of exactly 0.2 or 0.8 classifies as flaky.
const (
	flakyThreshold       = 0.2
	problematicThreshold = 0.8
)

// Classify maps a failure rate to a stability category.
func Classify(rate float64) models.Category {
	switch {
	case rate < flakyThreshold:
		return models.CategoryStable
	case rate > problematicThreshold:
		return models.CategoryProblematic
	default:
		return models.CategoryFlaky
	}
}

// Aggregate groups records by target URL and returns finalized statistics
// in ascending URL order, so repeated runs over the same log emit
// identical output.
func Aggregate(records []models.Record) []models.TargetStats {
	byURL := make(map[string]*models.TargetStats)
	for _, rec := range records {
		s, ok := byURL[rec.URL]
		if !ok {
			s = &models.TargetStats{URL: rec.URL}
			byURL[rec.URL] = s
		}
		s.TotalRuns++
		if !rec.Passed {
			s.Failures++
		}
	}

	stats := make([]models.TargetStats, 0, len(byURL))
	for _, s := range byURL {
		stats = append(stats, *s)
	}
	return Finalize(stats)
}

// Finalize computes failure rates and categories for stats that carry raw
// totals (from Aggregate or the history store) and sorts them by URL.
func Finalize(stats []models.TargetStats) []models.TargetStats {
	for i := range stats {
		s := &stats[i]
		if s.TotalRuns > 0 {
			s.FailureRate = float64(s.Failures) / float64(s.TotalRuns)
		}
		s.Category = Classify(s.FailureRate)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].URL < stats[j].URL })
	return stats
}

// CategoryCounts tallies how many targets fall into each category.
func CategoryCounts(stats []models.TargetStats) map[models.Category]int {
	counts := make(map[models.Category]int)
	for _, s := range stats {
		counts[s.Category]++
	}
	return counts
}
