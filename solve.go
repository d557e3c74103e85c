package gore

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Station is a sampled cross-section of the hull.
type Station struct {
	// X is the axial position measured from the nose.
	X float64
	// R is the radius of the cross-section.
	R float64
	// Slope is dR/dX estimated by finite differences.
	Slope float64
}

// Hull is a surface of revolution sampled at stations. Ds is parallel to
// Stations and holds the surface length from the previous station, Ds[0] = 0.
type Hull struct {
	Stations []Station
	Ds       []float64
}

// Solve models the resampled profile as a surface of revolution about the X axis.
// Consecutive interior stations may not coincide.
func Solve(samples []r2.Vec) (Hull, error) {
	n := len(samples)
	if n < 2 {
		return Hull{}, ErrStationCount
	}
	for i := 1; i < n; i++ {
		dx := samples[i].X - samples[i-1].X
		interior := i-1 > 0 && i < n-1
		if dx < 0 || (dx == 0 && interior) || math.IsNaN(dx) {
			return Hull{}, &DegenerateStationError{Index: i, X: samples[i].X}
		}
	}
	h := Hull{
		Stations: make([]Station, n),
		Ds:       make([]float64, n),
	}
	for i, p := range samples {
		var lo, hi int
		switch i {
		case 0:
			lo, hi = 0, 1
		case n - 1:
			lo, hi = n-2, n-1
		default:
			lo, hi = i-1, i+1
		}
		h.Stations[i] = Station{
			X:     p.X,
			R:     p.Y,
			Slope: slope(samples[lo], samples[hi]),
		}
		if i > 0 {
			// Hypot never returns less than |dx|.
			h.Ds[i] = math.Hypot(p.X-samples[i-1].X, p.Y-samples[i-1].Y)
		}
	}
	return h, nil
}

func slope(a, b r2.Vec) float64 {
	dx, dr := b.X-a.X, b.Y-a.Y
	if dx == 0 {
		if dr == 0 {
			return 0
		}
		// Blunt end closed by a radial segment.
		return math.Copysign(math.Inf(1), dr)
	}
	return dr / dx
}

// Len returns the number of stations.
func (h Hull) Len() int { return len(h.Stations) }

// SurfaceLength returns the meridian length from the first to the last station.
func (h Hull) SurfaceLength() float64 {
	var s float64
	for _, ds := range h.Ds {
		s += ds
	}
	return s
}

// MaxRadius returns the largest station radius.
func (h Hull) MaxRadius() float64 {
	var rmax float64
	for _, st := range h.Stations {
		rmax = math.Max(rmax, st.R)
	}
	return rmax
}

// Volume returns the enclosed volume summed over conical frusta between stations.
func (h Hull) Volume() float64 {
	var v float64
	for i := 1; i < len(h.Stations); i++ {
		a, b := h.Stations[i-1], h.Stations[i]
		v += math.Pi / 3 * (b.X - a.X) * (a.R*a.R + a.R*b.R + b.R*b.R)
	}
	return v
}

// Area returns the lateral surface area summed over conical frusta between stations.
func (h Hull) Area() float64 {
	var area float64
	for i := 1; i < len(h.Stations); i++ {
		area += math.Pi * (h.Stations[i-1].R + h.Stations[i].R) * h.Ds[i]
	}
	return area
}

func (h Hull) radii() []float64 {
	r := make([]float64, len(h.Stations))
	for i, st := range h.Stations {
		r[i] = st.R
	}
	return r
}
