package output

import (
	"fmt"
	"image/color"

	"github.com/mcport/portfolio-simulator/internal/simulation"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotConfig controls the PNG rendering of a simulation result.
// Rendering never alters the trial matrix or the summary; log scaling
// in particular is display-only.
type PlotConfig struct {
	// File is the output path; the extension selects the image format
	// (".png" in normal use).
	File string
	// MaxPaths caps the number of individual trial lines drawn. Zero
	// draws every trial.
	MaxPaths int
	// LogScale switches the value axis to a logarithmic scale. Depleted
	// balances are clamped to 1 for display since a log axis cannot
	// show zero.
	LogScale bool
}

// RenderPaths draws the spaghetti fan of trial paths together with the
// per-year 95% confidence band and median trajectory.
func RenderPaths(res *Result, cfg PlotConfig) error {
	m := res.Matrix
	if m == nil {
		return fmt.Errorf("plot: result has no trial matrix")
	}
	if cfg.File == "" {
		return fmt.Errorf("plot: no output file given")
	}

	p := plot.New()
	p.Title.Text = "Monte Carlo Simulation of Portfolio Value"
	p.X.Label.Text = "Years"
	p.Y.Label.Text = "Portfolio Value"
	p.Add(plotter.NewGrid())

	if cfg.LogScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	paths := m.NumTrials()
	if cfg.MaxPaths > 0 && cfg.MaxPaths < paths {
		paths = cfg.MaxPaths
	}
	for i := 0; i < paths; i++ {
		line, err := plotter.NewLine(pathPoints(m.Row(i), cfg.LogScale))
		if err != nil {
			return fmt.Errorf("plot: trial %d: %w", i, err)
		}
		line.Color = color.RGBA{R: 0, G: 128, B: 255, A: 24}
		line.Width = vg.Points(0.5)
		p.Add(line)
	}

	bands := simulation.Bands(m)
	for _, b := range []struct {
		values []float64
		label  string
		col    color.RGBA
		dashed bool
		width  vg.Length
	}{
		{bands.Lower, "2.5th percentile", color.RGBA{R: 255, A: 255}, true, vg.Points(1)},
		{bands.Upper, "97.5th percentile", color.RGBA{R: 255, A: 255}, true, vg.Points(1)},
		{bands.Median, "median", color.RGBA{B: 160, A: 255}, false, vg.Points(2)},
	} {
		line, err := plotter.NewLine(pathPoints(b.values, cfg.LogScale))
		if err != nil {
			return fmt.Errorf("plot: %s: %w", b.label, err)
		}
		line.Color = b.col
		line.Width = b.width
		if b.dashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		}
		p.Add(line)
		p.Legend.Add(b.label, line)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, cfg.File); err != nil {
		return fmt.Errorf("plot: saving %s: %w", cfg.File, err)
	}
	return nil
}

func pathPoints(values []float64, logScale bool) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for t, v := range values {
		if logScale && v < 1 {
			v = 1
		}
		pts[t].X = float64(t)
		pts[t].Y = v
	}
	return pts
}
