package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/gore"
	"github.com/soypat/gore/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SheetParms configures the layout of cutting sheets. Lengths are in
// drawing units unless stated otherwise.
type SheetParms struct {
	// Page size.
	Width, Height float64
	// Units is the physical unit of one drawing unit, such as "mm".
	Units string
	// Scale is drawing units per profile length unit.
	Scale  float64
	Margin float64
	// Clearance separates patterns from each other and from the margins.
	Clearance float64
	// GoresDrawn is the number of gore copies laid out side by side.
	GoresDrawn  int
	BaseAirfoil bool
	// Name is written alongside the base airfoil when DrawName is set.
	Name     string
	DrawName bool
	FontSize float64
	// Centerlines draws the symmetry axis of each pattern.
	Centerlines bool
	// LengthLines draws a cross line every LengthPitch profile length units.
	LengthLines bool
	LengthPitch float64
	// StationLabels annotates length lines with the developed position and gore width.
	StationLabels bool
	Margins       bool
	TextBox       bool
	TextBoxSize   r2.Vec
	Info          []string
	// Line widths and colour.
	ConstructionWidth float64
	SolidWidth        float64
	Color             string
}

// Sheet is a laid out set of patterns split into pages.
type Sheet struct {
	parms SheetParms
	// canvas holds every item with the origin at the top left of the drawable area.
	items  []item
	canvas d2.Box
	cols   int
	rows   int
	// pages lists the tiles holding geometry, row major.
	pages [][2]int
}

type strokeKind int

const (
	solid strokeKind = iota
	construction
)

type polyline struct {
	pts    d2.Set
	kind   strokeKind
	closed bool
}

type label struct {
	pos    r2.Vec
	text   string
	size   float64
	rotate bool
}

type item struct {
	lines  []polyline
	labels []label
	box    d2.Box
}

// NewSheet lays out the base airfoil and gore copies of an envelope left to right.
// Patterns run top to bottom from nose to tail.
func NewSheet(env *gore.Envelope, parms SheetParms) (*Sheet, error) {
	switch {
	case !(parms.Scale > 0):
		return nil, errors.New("sheet scale must be positive")
	case !(parms.Width > 2*parms.Margin && parms.Height > 2*parms.Margin):
		return nil, errors.New("sheet margins leave no drawing area")
	case parms.LengthLines && !(parms.LengthPitch > 0):
		return nil, errors.New("length line pitch must be positive")
	case parms.GoresDrawn < 0:
		return nil, errors.New("negative gore copies")
	}
	sh := &Sheet{parms: parms}
	hook := r2.Vec{X: parms.Clearance, Y: parms.Clearance}
	if parms.BaseAirfoil {
		rmax := env.Hull.MaxRadius() * parms.Scale
		hook.X += rmax
		sh.items = append(sh.items, sh.airfoil(env, hook))
		hook.X += rmax + parms.Clearance
	}
	wmax := env.Outline.MaxWidth() * parms.Scale
	for i := 0; i < parms.GoresDrawn; i++ {
		hook.X += wmax
		sh.items = append(sh.items, sh.gore(env.Outline, hook))
		hook.X += wmax + parms.Clearance
	}
	if len(sh.items) == 0 {
		return nil, errors.New("nothing to draw")
	}
	sh.canvas = sh.items[0].box
	for _, it := range sh.items[1:] {
		sh.canvas = sh.canvas.Extend(it.box)
	}
	sh.canvas = sh.canvas.Include(r2.Vec{}).Include(r2.Vec{X: hook.X, Y: sh.canvas.Max.Y + parms.Clearance})
	area := sh.drawable()
	sh.cols = int(math.Ceil(sh.canvas.Max.X / area.X))
	sh.rows = int(math.Ceil(sh.canvas.Max.Y / area.Y))
	for r := 0; r < sh.rows; r++ {
		for c := 0; c < sh.cols; c++ {
			tile := sh.tile(r, c)
			for _, it := range sh.items {
				if it.box.Overlaps(tile) {
					sh.pages = append(sh.pages, [2]int{r, c})
					break
				}
			}
		}
	}
	return sh, nil
}

// Pages returns the number of pages needed to print the sheet.
func (sh *Sheet) Pages() int { return len(sh.pages) }

// Size returns the size of the laid out patterns in drawing units.
func (sh *Sheet) Size() r2.Vec { return sh.canvas.Size() }

func (sh *Sheet) drawable() r2.Vec {
	return r2.Vec{
		X: sh.parms.Width - 2*sh.parms.Margin,
		Y: sh.parms.Height - 2*sh.parms.Margin,
	}
}

// tile returns the canvas region printed on the page at row r and column c.
func (sh *Sheet) tile(r, c int) d2.Box {
	area := sh.drawable()
	min := d2.MulElem(area, r2.Vec{X: float64(c), Y: float64(r)})
	return d2.Box{Min: min, Max: r2.Add(min, area)}
}

// pattern maps pattern coordinates (axial, radial) to the canvas with the
// nose at hook and the axial direction pointing down the page.
func (sh *Sheet) pattern(hook r2.Vec) d2.Transform {
	return d2.Translation(hook).Mul(d2.SwapXY()).Mul(d2.Scaling(d2.Elem(sh.parms.Scale)))
}

func (sh *Sheet) airfoil(env *gore.Envelope, hook r2.Vec) item {
	samples := d2.Set(env.Samples)
	x0 := samples[0].X
	t := sh.pattern(hook).Mul(d2.Translation(r2.Vec{X: -x0}))
	var it item
	upper := t.ApplySet(samples)
	lower := t.ApplySet(samples.MirrorY())
	it.lines = append(it.lines, polyline{pts: upper}, polyline{pts: lower})
	length := samples[len(samples)-1].X - x0
	halfWidth := 1.05 * env.Hull.MaxRadius()
	sh.guides(&it, t, length, halfWidth, nil)
	if sh.parms.DrawName && sh.parms.Name != "" {
		pos := r2.Add(hook, r2.Vec{X: sh.parms.FontSize / 2, Y: length * sh.parms.Scale / 2})
		it.labels = append(it.labels, label{pos: pos, text: sh.parms.Name, size: sh.parms.FontSize, rotate: true})
	}
	it.box = upper.Bounds().Extend(lower.Bounds())
	return it
}

func (sh *Sheet) gore(o gore.Outline, hook r2.Vec) item {
	t := sh.pattern(hook)
	var it item
	panel := t.ApplySet(o.Panel())
	it.lines = append(it.lines, polyline{pts: panel, closed: true})
	sh.guides(&it, t, o.Length(), 1.05*o.MaxWidth(), &o)
	it.box = panel.Bounds()
	return it
}

// guides adds the centerline, length lines and labels of a pattern of the
// given axial length and half-width, in profile units.
func (sh *Sheet) guides(it *item, t d2.Transform, length, halfWidth float64, o *gore.Outline) {
	p := sh.parms
	if p.Centerlines {
		overshoot := 5 / p.Scale
		it.lines = append(it.lines, polyline{
			kind: construction,
			pts:  t.ApplySet(d2.Set{{X: -overshoot}, {X: length + overshoot}}),
		})
	}
	if !p.LengthLines {
		return
	}
	var at []float64
	for s := 0.0; s < length; s += p.LengthPitch {
		at = append(at, s)
	}
	at = append(at, length)
	for _, s := range at {
		line := t.ApplySet(d2.Set{{X: s, Y: -halfWidth}, {X: s, Y: halfWidth}})
		it.lines = append(it.lines, polyline{kind: construction, pts: line})
		if p.StationLabels && o != nil {
			text := fmt.Sprintf("%.0f | %.1f", s, 2*widthAt(*o, s))
			pos := r2.Add(line[1], r2.Vec{X: 1, Y: -1})
			it.labels = append(it.labels, label{pos: pos, text: text, size: p.FontSize / 4})
		}
	}
}

// widthAt returns the half-width of the outline at developed position s by
// linear interpolation.
func widthAt(o gore.Outline, s float64) float64 {
	pts := o.Points
	if len(pts) == 0 {
		return 0
	}
	if s <= pts[0].X {
		return pts[0].Y
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if s > b.X {
			continue
		}
		if b.X == a.X {
			return b.Y
		}
		return a.Y + (b.Y-a.Y)*(s-a.X)/(b.X-a.X)
	}
	return pts[len(pts)-1].Y
}
