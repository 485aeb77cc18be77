package census

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders population against generation and saves it to path. The
// image format follows the file extension.
func WritePlot(samples []Sample, title, path string) error {
	if len(samples) == 0 {
		return errors.New("census: no samples to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Live cells"

	pts := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		pts = append(pts, plotter.XY{X: float64(s.Generation), Y: float64(s.Population)})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("population line: %w", err)
	}
	line.Color = color.RGBA{R: 40, G: 110, B: 200, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save population plot: %w", err)
	}
	return nil
}
