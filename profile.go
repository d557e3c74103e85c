package gore

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/gore/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/spatial/r2"
)

// Spacing selects how stations are distributed along the hull axis.
type Spacing int

const (
	// Uniform spaces stations evenly.
	Uniform Spacing = iota
	// Cosine clusters stations at the nose and tail, where curvature is highest.
	Cosine
	// Power clusters stations at the nose following x = t^k for a bunching factor k.
	Power
)

func (s Spacing) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Cosine:
		return "cosine"
	case Power:
		return "power"
	}
	return fmt.Sprintf("Spacing(%d)", int(s))
}

// ParseSpacing returns the Spacing named by s.
func ParseSpacing(s string) (Spacing, error) {
	for _, sp := range []Spacing{Uniform, Cosine, Power} {
		if sp.String() == s {
			return sp, nil
		}
	}
	return 0, fmt.Errorf("unknown spacing policy %q", s)
}

// Interpolation selects the interpolant fitted through raw profile points.
type Interpolation int

const (
	Linear Interpolation = iota
	Cubic
)

func (m Interpolation) String() string {
	switch m {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	}
	return fmt.Sprintf("Interpolation(%d)", int(m))
}

// ParseInterpolation returns the Interpolation named by s.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	}
	return 0, fmt.Errorf("unknown interpolation mode %q", s)
}

// Profile is an immutable digitized half-profile of a hull. Point X is the
// axial position from the nose and Y is the radius from the axis of revolution.
type Profile struct {
	name string
	pts  []r2.Vec
}

// NewProfile validates and stores the points of a half-profile. Points must
// be ordered by non-decreasing X and have non-negative radius.
func NewProfile(name string, pts []r2.Vec) (*Profile, error) {
	if len(pts) < 2 {
		return nil, &MalformedProfileError{Index: -1, Reason: fmt.Sprintf("need at least 2 points, got %d", len(pts))}
	}
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, &MalformedProfileError{Index: i, Reason: "non-finite coordinate"}
		}
		if p.Y < 0 {
			return nil, &MalformedProfileError{Index: i, Reason: fmt.Sprintf("negative radius %g", p.Y)}
		}
		if i > 0 && p.X < pts[i-1].X {
			return nil, &MalformedProfileError{Index: i, Reason: fmt.Sprintf("x=%g follows x=%g", p.X, pts[i-1].X)}
		}
	}
	if pts[0].X == pts[len(pts)-1].X {
		return nil, &MalformedProfileError{Index: -1, Reason: "profile has zero axial length"}
	}
	return &Profile{name: name, pts: append([]r2.Vec(nil), pts...)}, nil
}

// Name returns the profile name. May be empty.
func (p *Profile) Name() string { return p.name }

// Len returns the number of raw points.
func (p *Profile) Len() int { return len(p.pts) }

// Points returns a copy of the raw points.
func (p *Profile) Points() []r2.Vec { return append([]r2.Vec(nil), p.pts...) }

// Bounds returns the bounding box of the raw points.
func (p *Profile) Bounds() r2.Box {
	s := d2.Set(p.pts)
	return r2.Box{Min: s.Min(), Max: s.Max()}
}

// Chord returns the axial length of the profile.
func (p *Profile) Chord() float64 { return p.pts[len(p.pts)-1].X - p.pts[0].X }

// Blunt reports whether either end of the profile is open (non-zero radius).
func (p *Profile) Blunt() bool { return p.pts[0].Y != 0 || p.pts[len(p.pts)-1].Y != 0 }

// Scale returns a new profile with both coordinates multiplied by k.
func (p *Profile) Scale(k float64) (*Profile, error) {
	if !(k > 0) || math.IsInf(k, 0) {
		return nil, &InvalidFactorError{Name: "profile scale", Value: k}
	}
	scaled := make([]r2.Vec, len(p.pts))
	for i := range p.pts {
		scaled[i] = r2.Scale(k, p.pts[i])
	}
	return &Profile{name: p.name, pts: scaled}, nil
}

// SampleParms controls resampling of a profile into stations.
type SampleParms struct {
	// Count is the number of stations, at least 2.
	Count   int
	Spacing Spacing
	// Interpolation between raw points.
	Interpolation Interpolation
	// Bunching is the exponent of Power spacing.
	Bunching float64
	// Truncation is the fraction of the chord resampled, measured from the nose.
	// Values above 1 request stations past the tail. Zero is taken as 1.
	Truncation float64
}

// Resample returns parms.Count stations interpolated from the raw profile.
// The first station lies on the nose and the last on the (possibly truncated) tail.
// An end closed by a radial segment keeps its raw endpoint as an extra station
// at the same X, so two of the stations share the nose or tail position.
func (p *Profile) Resample(parms SampleParms) ([]r2.Vec, error) {
	if parms.Count < 2 {
		return nil, ErrStationCount
	}
	trunc := parms.Truncation
	if trunc == 0 {
		trunc = 1
	}
	a, b := p.pts[0].X, p.pts[len(p.pts)-1].X
	if trunc != 1 {
		b = a + trunc*p.Chord()
	}
	if !(trunc > 0) {
		return nil, &OutOfRangeError{X: b, Min: a, Max: p.pts[len(p.pts)-1].X}
	}
	noseCap, tailCap := p.radialCaps()
	tailCap = tailCap && trunc == 1
	n := parms.Count
	if noseCap {
		n--
	}
	if tailCap {
		n--
	}
	if n < 2 {
		return nil, ErrStationCount
	}
	xs, err := stationPositions(n, parms.Spacing, parms.Bunching, a, b)
	if err != nil {
		return nil, err
	}
	fitted, err := p.Sample(xs, parms.Interpolation)
	if err != nil {
		return nil, err
	}
	if !noseCap && !tailCap {
		return fitted, nil
	}
	out := make([]r2.Vec, 0, parms.Count)
	if noseCap {
		out = append(out, p.pts[0])
	}
	out = append(out, fitted...)
	if tailCap {
		out = append(out, p.pts[len(p.pts)-1])
	}
	return out, nil
}

// Sample interpolates the profile radius at each axial position in xs.
// On an end closed by a radial segment the radius is that of the rim.
func (p *Profile) Sample(xs []float64, mode Interpolation) ([]r2.Vec, error) {
	xmin, xmax := p.pts[0].X, p.pts[len(p.pts)-1].X
	for _, x := range xs {
		if !(x >= xmin && x <= xmax) {
			return nil, &OutOfRangeError{X: x, Min: xmin, Max: xmax}
		}
	}
	pred, err := p.fit(mode)
	if err != nil {
		return nil, err
	}
	out := make([]r2.Vec, len(xs))
	for i, x := range xs {
		r := pred.Predict(x)
		if r < 0 {
			// Cubic overshoot next to a closed end.
			r = 0
		}
		out[i] = r2.Vec{X: x, Y: r}
	}
	return out, nil
}

// rims returns the index of the last point on the nose plane and of the
// first point on the tail plane. Points outside [nose, tail] form the
// radial segments that close the ends.
func (p *Profile) rims() (nose, tail int) {
	last := len(p.pts) - 1
	for nose < last && p.pts[nose+1].X == p.pts[0].X {
		nose++
	}
	tail = last
	for tail > 0 && p.pts[tail-1].X == p.pts[last].X {
		tail--
	}
	return nose, tail
}

// radialCaps reports which ends are closed by a radial segment whose
// endpoint radius differs from the rim radius.
func (p *Profile) radialCaps() (nose, tail bool) {
	ni, ti := p.rims()
	last := len(p.pts) - 1
	return p.pts[ni].Y != p.pts[0].Y, p.pts[ti].Y != p.pts[last].Y
}

func (p *Profile) fit(mode Interpolation) (interp.Predictor, error) {
	// Interpolants need strictly increasing abscissae. Ends are fitted
	// through the rim points and interior duplicates keep the first point.
	nose, tail := p.rims()
	xs := make([]float64, 0, tail-nose+1)
	ys := make([]float64, 0, tail-nose+1)
	for _, pt := range p.pts[nose : tail+1] {
		if n := len(xs); n > 0 && pt.X == xs[n-1] {
			continue
		}
		xs = append(xs, pt.X)
		ys = append(ys, pt.Y)
	}
	var fp interp.FittablePredictor
	switch {
	case mode == Cubic && len(xs) >= 3:
		fp = &interp.NaturalCubic{}
	case mode == Cubic || mode == Linear:
		fp = &interp.PiecewiseLinear{}
	default:
		return nil, errors.New("gore: unknown interpolation " + mode.String())
	}
	if err := fp.Fit(xs, ys); err != nil {
		return nil, &MalformedProfileError{Index: -1, Reason: err.Error()}
	}
	return fp, nil
}

// stationPositions returns n axial positions in [a, b] with exact endpoints.
func stationPositions(n int, sp Spacing, bunching, a, b float64) ([]float64, error) {
	xs := floats.Span(make([]float64, n), 0, 1)
	switch sp {
	case Uniform:
	case Cosine:
		for i, t := range xs {
			xs[i] = (1 - math.Cos(math.Pi*t)) / 2
		}
	case Power:
		if !(bunching > 0) {
			return nil, &InvalidFactorError{Name: "bunching factor", Value: bunching}
		}
		for i, t := range xs {
			xs[i] = math.Pow(t, bunching)
		}
	default:
		return nil, errors.New("gore: unknown spacing " + sp.String())
	}
	for i, t := range xs {
		xs[i] = a + (b-a)*t
	}
	xs[0], xs[n-1] = a, b
	return xs, nil
}
