package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/concordlabs/concord/regression"
	"github.com/concordlabs/concord/sample"
)

// ScatterPlot writes an observed-versus-predicted scatter plot to path, with
// one overlay per fitted regression line plus the dashed 1:1 identity line.
// The image format follows the file extension (".png", ".svg", ".pdf").
func ScatterPlot(s *sample.Sample, lines map[regression.Kind]regression.Line, path string) error {
	observed, predicted := s.Observed(), s.Predicted()

	p := plot.New()
	p.Title.Text = s.Label()
	p.X.Label.Text = "Observed"
	p.Y.Label.Text = "Predicted"
	p.Legend.Top = true
	p.Legend.Left = true

	pts := make(plotter.XYs, len(observed))
	for i := range observed {
		pts[i].X = observed[i]
		pts[i].Y = predicted[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("building scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("points", scatter)

	lo, hi := observedRange(observed)

	identity, err := plotter.NewLine(segment(lo, hi, 1, 0))
	if err != nil {
		return fmt.Errorf("building identity line: %w", err)
	}
	identity.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(identity)
	p.Legend.Add("1:1", identity)

	for i, kind := range regression.Kinds() {
		line, ok := lines[kind]
		if !ok {
			continue
		}

		overlay, err := plotter.NewLine(segment(lo, hi, line.Slope, line.Intercept))
		if err != nil {
			return fmt.Errorf("building %s line: %w", kind, err)
		}
		overlay.LineStyle.Width = vg.Points(1.5)
		overlay.LineStyle.Color = plotutil.Color(i)
		p.Add(overlay)
		p.Legend.Add(kind.String(), overlay)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot to %s: %w", path, err)
	}

	return nil
}

// segment builds the two endpoints of y = slope*x + intercept over [lo, hi].
func segment(lo, hi, slope, intercept float64) plotter.XYs {
	return plotter.XYs{
		{X: lo, Y: slope*lo + intercept},
		{X: hi, Y: slope*hi + intercept},
	}
}

func observedRange(observed []float64) (lo, hi float64) {
	lo, hi = observed[0], observed[0]
	for _, v := range observed[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
