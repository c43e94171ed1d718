package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrSeriesMismatch is returned when raw and filtered series cannot be
// plotted against each other.
var ErrSeriesMismatch = errors.New("report: raw and filtered series must be non-empty and of equal length")

// PlotComparison draws raw and filtered against time and saves the figure
// to path. The image format follows the extension of path.
func PlotComparison(path, title string, sampleRate float64, raw, filtered []float64) error {
	if len(raw) == 0 || len(raw) != len(filtered) {
		return ErrSeriesMismatch
	}
	if !(sampleRate > 0) {
		return fmt.Errorf("report: sample rate must be positive: %g", sampleRate)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())

	rawLine, err := plotter.NewLine(timeSeries(raw, sampleRate))
	if err != nil {
		return fmt.Errorf("report: raw line: %w", err)
	}
	rawLine.Color = color.Gray{Y: 160}
	rawLine.LineStyle.Width = vg.Points(1)

	filteredLine, err := plotter.NewLine(timeSeries(filtered, sampleRate))
	if err != nil {
		return fmt.Errorf("report: filtered line: %w", err)
	}
	filteredLine.Color = color.RGBA{B: 200, A: 255}
	filteredLine.LineStyle.Width = vg.Points(1.5)

	p.Add(rawLine, filteredLine)
	p.Legend.Add("raw", rawLine)
	p.Legend.Add("filtered", filteredLine)
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}

func timeSeries(y []float64, sampleRate float64) plotter.XYs {
	pts := make(plotter.XYs, len(y))
	for i, v := range y {
		pts[i] = plotter.XY{X: float64(i) / sampleRate, Y: v}
	}
	return pts
}
