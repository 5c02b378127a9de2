// Package report renders a training run as a standalone HTML page with
// cumulative outcome-rate curves.
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Checkpoint - cumulative outcome rates after a number of trained episodes.
type Checkpoint struct {
	Episode  int
	XWinRate float64
	OWinRate float64
	DrawRate float64
}

// Render - writes the outcome-rate curves for the given checkpoints to path.
func Render(path string, checkpoints []Checkpoint) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "self-play training outcomes",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var episodes []string
	var xWins, oWins, draws []opts.LineData
	for _, cp := range checkpoints {
		episodes = append(episodes, fmt.Sprintf("%d", cp.Episode))
		xWins = append(xWins, opts.LineData{Value: cp.XWinRate})
		oWins = append(oWins, opts.LineData{Value: cp.OWinRate})
		draws = append(draws, opts.LineData{Value: cp.DrawRate})
	}

	line.SetXAxis(episodes)
	line.AddSeries("X wins", xWins)
	line.AddSeries("O wins", oWins)
	line.AddSeries("draws", draws)

	page := components.NewPage()
	page.AddCharts(line)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err = page.Render(file); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}
