package config

import (
	"flag"
	"path/filepath"
	"strings"
	"time"
)

// ParseRunFlags parses command-line flags for the harness runner and
// returns a RunConfig. All defaults reproduce the flagless CI invocation:
// fixed paths under ./artifacts, 80% pass rate, status 500 on failure.
func ParseRunFlags() RunConfig {
	var (
		artifacts = flag.String("artifacts", "artifacts", "Artifacts output directory")
		targets   = flag.String("targets", strings.Join(DefaultTargets, ","), "Comma-separated target URLs")
		expect    = flag.Int("expect", 200, "Expected HTTP status on success")
		rate      = flag.Float64("rate", 0.8, "Probability of a simulated pass")
		failCode  = flag.Int("fail-status", 500, "Status code recorded on simulated failure")
		passes    = flag.Int("passes", 5, "Number of passes over the target list")
		reruns    = flag.Int("reruns", 0, "Extra attempts for a failed target (0 disables reruns)")
		seed      = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
		timeout   = flag.Duration("timeout", 30*time.Second, "Page-load timeout")
		dbPath    = flag.String("db", "", "History database path (empty disables)")
	)
	flag.Parse()

	return RunConfig{
		Targets:        splitTargets(*targets),
		ExpectedStatus: *expect,
		SuccessRate:    *rate,
		FailStatus:     *failCode,
		Passes:         *passes,
		Reruns:         *reruns,
		Seed:           *seed,
		Timeout:        *timeout,
		ArtifactsDir:   *artifacts,
		LogPath:        filepath.Join(*artifacts, LogFileName),
		DatabasePath:   *dbPath,
	}
}

// ParseReportFlags parses command-line flags for the analyzer and returns
// a ReportConfig.
func ParseReportFlags() ReportConfig {
	var (
		artifacts = flag.String("artifacts", "artifacts", "Artifacts output directory")
		dbPath    = flag.String("db", "", "History database path (empty disables the history section)")
		serve     = flag.Bool("serve", false, "Serve the dashboard after generating the report")
		port      = flag.Int("port", 8080, "Dashboard port")
	)
	flag.Parse()

	return ReportConfig{
		ArtifactsDir:      *artifacts,
		LogPath:           filepath.Join(*artifacts, LogFileName),
		ReportPath:        filepath.Join(*artifacts, ReportFileName),
		ResultsChartPath:  filepath.Join(*artifacts, ResultsChartFileName),
		CategoryChartPath: filepath.Join(*artifacts, CategoryChartFileName),
		SummaryPath:       filepath.Join(*artifacts, SummaryFileName),
		DatabasePath:      *dbPath,
		Serve:             *serve,
		Port:              *port,
	}
}

func splitTargets(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
