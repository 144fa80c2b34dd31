package config

import (
	"fmt"
	"time"
)

// DefaultTargets mirrors the demo's mock data set: public pages the
// harness "navigates" to before drawing a simulated outcome.
var DefaultTargets = []string{
	"https://elverys.ie",
	"https://www.lifestylesports.com",
	"https://bbc.co.uk",
	"https://rte.ie",
	"https://www.jdsports.ie",
	"https://duke.edu",
	"https://en.wikipedia.org",
	"https://www.prodirectsport.com",
	"https://www.nike.com",
	"https://www.crocs.eu",
}

// Fixed artifact file names, relative to the artifacts directory.
const (
	LogFileName           = "test_results.csv"
	ReportFileName        = "flaky_tests.csv"
	ResultsChartFileName  = "test_report.png"
	CategoryChartFileName = "flaky_tests_report.png"
	SummaryFileName       = "summary.txt"
)

// RunConfig holds all configuration for the test harness runner
type RunConfig struct {
	Targets        []string
	ExpectedStatus int
	SuccessRate    float64
	FailStatus     int
	Passes         int
	Reruns         int
	Seed           int64
	Timeout        time.Duration
	ArtifactsDir   string
	LogPath        string
	DatabasePath   string // empty disables the history store
}

// Validate checks if the runner configuration is valid
func (c *RunConfig) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target must be specified")
	}
	if c.SuccessRate < 0 || c.SuccessRate > 1 {
		return fmt.Errorf("success rate must be between 0 and 1")
	}
	if c.ExpectedStatus <= 0 || c.FailStatus <= 0 {
		return fmt.Errorf("status codes must be positive")
	}
	if c.Passes < 1 {
		return fmt.Errorf("passes must be at least 1")
	}
	if c.Reruns < 0 {
		return fmt.Errorf("reruns cannot be negative")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.ArtifactsDir == "" {
		return fmt.Errorf("artifacts directory cannot be empty")
	}
	return nil
}

// ReportConfig holds all configuration for the flakiness analyzer
type ReportConfig struct {
	ArtifactsDir      string
	LogPath           string
	ReportPath        string
	ResultsChartPath  string
	CategoryChartPath string
	SummaryPath       string
	DatabasePath      string
	Serve             bool
	Port              int
}

// Validate checks if the analyzer configuration is valid
func (c *ReportConfig) Validate() error {
	if c.ArtifactsDir == "" {
		return fmt.Errorf("artifacts directory cannot be empty")
	}
	if c.Serve && (c.Port <= 0 || c.Port > 65535) {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
