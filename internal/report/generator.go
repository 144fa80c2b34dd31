// Package report writes the analyzer's artifacts: the classification
// table, the summary charts, and the text summary.
package report

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"flaky-monitor/internal/config"
	"flaky-monitor/internal/models"
)

// Generator creates the report artifacts for one analysis pass
type Generator struct {
	logger *zap.Logger
	store  models.Store // optional cross-run history source
}

// NewGenerator creates a new report generator. store may be nil.
func NewGenerator(logger *zap.Logger, store models.Store) *Generator {
	return &Generator{logger: logger, store: store}
}

// Generate writes all artifacts from the given statistics. The
// classification table is the analyzer's contract and any failure writing
// it aborts the pass; chart and summary failures are logged and isolated
// so the remaining artifacts are still produced.
func (g *Generator) Generate(cfg config.ReportConfig, stats []models.TargetStats) error {
	if len(stats) == 0 {
		return fmt.Errorf("no statistics to report")
	}

	if err := os.MkdirAll(cfg.ArtifactsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifacts directory: %w", err)
	}

	if err := g.writeClassification(cfg.ReportPath, stats); err != nil {
		return fmt.Errorf("failed to write classification table: %w", err)
	}

	if err := g.generateResultsChart(cfg.ResultsChartPath, stats); err != nil {
		g.logger.Error("failed to generate results chart", zap.Error(err))
	}

	if err := g.generateCategoryChart(cfg.CategoryChartPath, stats); err != nil {
		g.logger.Error("failed to generate category chart", zap.Error(err))
	}

	if err := g.generateSummary(cfg.SummaryPath, stats); err != nil {
		g.logger.Error("failed to generate text summary", zap.Error(err))
	}

	g.logger.Info("report generated", zap.String("dir", cfg.ArtifactsDir))
	return nil
}
