package report

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"flaky-monitor/internal/analyze"
	"flaky-monitor/internal/models"
)

var (
	colorPass        = drawing.Color{R: 68, G: 160, B: 90, A: 255}
	colorFail        = drawing.Color{R: 200, G: 60, B: 60, A: 255}
	colorFlaky       = drawing.Color{R: 230, G: 150, B: 40, A: 255}
	colorProblematic = colorFail
	colorStable      = colorPass
)

// generateResultsChart renders a stacked bar per target showing its
// pass/fail split.
func (g *Generator) generateResultsChart(path string, stats []models.TargetStats) error {
	var bars []chart.StackedBar
	for _, s := range stats {
		var values []chart.Value
		if s.Failures > 0 {
			values = append(values, chart.Value{
				Label: "fail",
				Value: float64(s.Failures),
				Style: chart.Style{FillColor: colorFail, StrokeColor: colorFail},
			})
		}
		if s.Passes() > 0 {
			values = append(values, chart.Value{
				Label: "pass",
				Value: float64(s.Passes()),
				Style: chart.Style{FillColor: colorPass, StrokeColor: colorPass},
			})
		}
		bars = append(bars, chart.StackedBar{
			Name:   chartLabel(s.URL),
			Values: values,
		})
	}

	graph := chart.StackedBarChart{
		Title: "Flaky Test Results",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:      1200,
		Height:     500,
		BarSpacing: 40,
		XAxis: chart.Style{
			FontSize: 9,
		},
		YAxis: chart.Style{
			FontSize: 9,
		},
		Bars: bars,
	}

	return renderPNG(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// generateCategoryChart renders the number of targets per stability
// category.
func (g *Generator) generateCategoryChart(path string, stats []models.TargetStats) error {
	counts := analyze.CategoryCounts(stats)
	colors := map[models.Category]drawing.Color{
		models.CategoryStable:      colorStable,
		models.CategoryFlaky:       colorFlaky,
		models.CategoryProblematic: colorProblematic,
	}

	var bars []chart.Value
	for _, cat := range []models.Category{models.CategoryStable, models.CategoryFlaky, models.CategoryProblematic} {
		if counts[cat] == 0 {
			continue
		}
		bars = append(bars, chart.Value{
			Label: string(cat),
			Value: float64(counts[cat]),
			Style: chart.Style{FillColor: colors[cat], StrokeColor: colors[cat]},
		})
	}

	graph := chart.BarChart{
		Title: "Test Stability Analysis",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    1000,
		Height:   500,
		Bars:     bars,
		BarWidth: 60,
	}

	return renderPNG(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func renderPNG(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
