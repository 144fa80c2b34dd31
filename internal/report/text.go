package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"flaky-monitor/internal/analyze"
	"flaky-monitor/internal/models"
)

func (g *Generator) generateSummary(path string, stats []models.TargetStats) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Flaky Test Report\n")
	fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(file, strings.Repeat("=", 60))

	fmt.Fprintln(file, "\nPER-TARGET RESULTS")

	for _, s := range stats {
		fmt.Fprintf(file, "Target: %s\n", s.URL)
		fmt.Fprintf(file, "  Total Runs: %d\n", s.TotalRuns)
		fmt.Fprintf(file, "  Passed: %d\n", s.Passes())
		fmt.Fprintf(file, "  Failed: %d\n", s.Failures)
		fmt.Fprintf(file, "  Failure Rate: %.2f%%\n", s.FailureRate*100)
		fmt.Fprintf(file, "  Category: %s\n", s.Category)
		fmt.Fprintln(file)
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nSTABILITY SUMMARY")

	counts := analyze.CategoryCounts(stats)
	for _, cat := range []models.Category{models.CategoryStable, models.CategoryFlaky, models.CategoryProblematic} {
		fmt.Fprintf(file, "  %-12s %d\n", cat, counts[cat])
	}

	if g.store != nil {
		if err := g.writeHistorySection(file); err != nil {
			fmt.Fprintf(file, "\nHistory unavailable: %v\n", err)
		}
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nCharts and the classification table are in the accompanying files.")

	return nil
}

// writeHistorySection appends cross-run statistics from the history
// database, which survives across CI iterations while the CSV log is
// re-created per workspace.
func (g *Generator) writeHistorySection(file *os.File) error {
	history, err := g.store.GetStats()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return nil
	}
	history = analyze.Finalize(history)

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nCROSS-RUN HISTORY")

	for _, s := range history {
		fmt.Fprintf(file, "  %-45s runs=%-5d failures=%-5d rate=%.2f%% (%s)\n",
			s.URL, s.TotalRuns, s.Failures, s.FailureRate*100, s.Category)
	}
	fmt.Fprintln(file)
	return nil
}
