package render

import (
	"fmt"

	"github.com/soypat/gore"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// NewPlot returns a chart of the hull radius against axial position and of
// the gore outline against developed length.
func NewPlot(env *gore.Envelope) (*plot.Plot, error) {
	radius := make(plotter.XYs, env.Hull.Len())
	for i, st := range env.Hull.Stations {
		radius[i] = plotter.XY{X: st.X, Y: st.R}
	}
	pts := env.Outline.Points
	upper := make(plotter.XYs, len(pts))
	lower := make(plotter.XYs, len(pts))
	for i, p := range pts {
		upper[i] = plotter.XY{X: p.X, Y: p.Y}
		lower[i] = plotter.XY{X: p.X, Y: -p.Y}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %d gores", env.Profile.Name(), env.Outline.Gores)
	p.X.Label.Text = "axial position / developed length"
	p.Y.Label.Text = "radius / half-width"
	p.Add(plotter.NewGrid())

	lr, err := plotter.NewLine(radius)
	if err != nil {
		return nil, err
	}
	lr.LineStyle.Color = plotutil.Color(0)
	lu, err := plotter.NewLine(upper)
	if err != nil {
		return nil, err
	}
	lu.LineStyle.Color = plotutil.Color(1)
	ll, err := plotter.NewLine(lower)
	if err != nil {
		return nil, err
	}
	ll.LineStyle.Color = plotutil.Color(1)
	ll.LineStyle.Dashes = plotutil.Dashes(1)
	p.Add(lr, lu, ll)
	p.Legend.Add("hull radius", lr)
	p.Legend.Add("gore outline", lu)
	return p, nil
}

// CreatePlot saves the chart of NewPlot to path. The image format is taken
// from the extension: png, svg, pdf, eps, jpg and tif are supported.
func CreatePlot(path string, env *gore.Envelope) error {
	p, err := NewPlot(env)
	if err != nil {
		return err
	}
	return p.Save(24*vg.Centimeter, 12*vg.Centimeter, path)
}
