package render

import (
	"errors"

	"github.com/soypat/gore"
	"github.com/soypat/gore/internal/d2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
	"gonum.org/v1/gonum/spatial/r2"
)

// DXF layer names.
const (
	LayerGore   = "GORE"
	LayerCenter = "CENTER"
)

// CreateDXF writes a single gore panel to a DXF file for cutting plotters.
// The panel lies along the X axis with the nose at the origin, scaled by
// scale drawing units per profile length unit.
func CreateDXF(path string, o gore.Outline, scale float64) error {
	if !(scale > 0) {
		return errors.New("DXF scale must be positive")
	}
	if o.Len() < 2 {
		return errors.New("gore outline needs at least 2 stations")
	}
	panel := d2.Scaling(d2.Elem(scale)).ApplySet(o.Panel())
	// Repeat the first vertex so the polyline is closed by construction.
	panel = append(panel, panel[0])

	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	d.AddLayer(LayerGore, color.Red, dxf.DefaultLineType, true)
	d.ChangeLayer(LayerGore)
	lwp := entity.NewLwPolyline(len(panel))
	for i, p := range panel {
		lwp.Vertices[i] = []float64{p.X, p.Y}
	}
	d.AddEntity(lwp)

	d.AddLayer(LayerCenter, color.Cyan, dxf.DefaultLineType, true)
	d.ChangeLayer(LayerCenter)
	end := r2.Scale(scale, r2.Vec{X: o.Length()})
	d.Line(0, 0, 0, end.X, end.Y, 0)
	return d.SaveAs(path)
}
