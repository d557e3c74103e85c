package gore

import (
	"math"

	"github.com/soypat/gore/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// GoreParms configures the flattening of a hull into gores.
type GoreParms struct {
	// Gores is the number of identical gores in the envelope, at least 3.
	Gores int
	// Shrinkage scales gore widths to compensate for fabric stretch.
	// Use 1 for no correction.
	Shrinkage float64
}

// Outline is one flattened gore. Point X is the developed length s measured
// along the hull surface from the nose and Y is the half-width w of the gore.
type Outline struct {
	Gores     int
	Shrinkage float64
	Points    []r2.Vec
}

// Generate flattens a hull into a gore outline. The half-width at each station
// is half the chord of the 1/N sector, w = r*sin(pi/N), scaled by the shrinkage factor.
// Stations on the axis taper to a point.
func Generate(h Hull, parms GoreParms) (Outline, error) {
	if parms.Gores < 3 {
		return Outline{}, &InsufficientGoreCountError{Gores: parms.Gores}
	}
	if !(parms.Shrinkage > 0) || math.IsInf(parms.Shrinkage, 0) {
		return Outline{}, &InvalidFactorError{Name: "shrinkage factor", Value: parms.Shrinkage}
	}
	if len(h.Ds) != len(h.Stations) {
		panic("gore: hull station and surface length count mismatch")
	}
	n := len(h.Stations)
	s := floats.CumSum(make([]float64, n), h.Ds)
	w := h.radii()
	floats.Scale(math.Sin(math.Pi/float64(parms.Gores)), w)
	floats.Scale(parms.Shrinkage, w)
	o := Outline{
		Gores:     parms.Gores,
		Shrinkage: parms.Shrinkage,
		Points:    make([]r2.Vec, n),
	}
	for i := range o.Points {
		o.Points[i] = r2.Vec{X: s[i], Y: w[i]}
	}
	return o, nil
}

// Len returns the number of stations in the outline.
func (o Outline) Len() int { return len(o.Points) }

// Length returns the developed length of the gore.
func (o Outline) Length() float64 {
	if len(o.Points) == 0 {
		return 0
	}
	return o.Points[len(o.Points)-1].X
}

// MaxWidth returns the largest half-width of the gore.
func (o Outline) MaxWidth() float64 {
	var w float64
	for _, p := range o.Points {
		w = math.Max(w, p.Y)
	}
	return w
}

// Panel returns the gore mirrored about its centerline as a polygon. The
// positive side runs from nose to tail and the negative side back to the nose.
// Apex points on the centerline are not repeated.
func (o Outline) Panel() []r2.Vec {
	n := len(o.Points)
	panel := make([]r2.Vec, 0, 2*n)
	panel = append(panel, o.Points...)
	for i := n - 1; i >= 0; i-- {
		p := o.Points[i]
		if p.Y == 0 && (i == 0 || i == n-1) {
			continue
		}
		panel = append(panel, r2.Vec{X: p.X, Y: -p.Y})
	}
	return panel
}

// Area returns the area of the full (mirrored) gore panel.
func (o Outline) Area() float64 {
	var a float64
	for i := 1; i < len(o.Points); i++ {
		a0, a1 := o.Points[i-1], o.Points[i]
		a += (a1.X - a0.X) * (a0.Y + a1.Y)
	}
	return a
}

// Bounds returns the bounding box of the full gore panel.
func (o Outline) Bounds() r2.Box {
	s := d2.Set(o.Panel())
	return r2.Box{Min: s.Min(), Max: s.Max()}
}

// SectorAngles returns, for each station of h, the angle subtended by the
// gore chord at the station radius after undoing the shrinkage factor.
// Angles are zero on the axis. For every station off the axis Gores*angle is 2*pi.
func (o Outline) SectorAngles(h Hull) []float64 {
	angles := make([]float64, len(o.Points))
	for i, p := range o.Points {
		r := h.Stations[i].R
		if r == 0 {
			continue
		}
		ratio := math.Min(1, p.Y/(o.Shrinkage*r))
		angles[i] = 2 * math.Asin(ratio)
	}
	return angles
}
