package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"flaky-monitor/internal/models"
)

// writeClassification writes the per-target classification table,
// overwriting any prior file. Stats arrive sorted by URL, so repeated
// runs over the same log produce byte-identical output.
func (g *Generator) writeClassification(path string, stats []models.TargetStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"url", "total_runs", "failures", "flaky_rate", "categorization"}); err != nil {
		return err
	}

	for _, s := range stats {
		row := []string{
			s.URL,
			strconv.Itoa(s.TotalRuns),
			strconv.Itoa(s.Failures),
			strconv.FormatFloat(s.FailureRate, 'g', -1, 64),
			string(s.Category),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
