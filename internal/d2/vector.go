package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func Elem(sides float64) r2.Vec {
	return r2.Vec{
		X: sides,
		Y: sides,
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
	}
}

// Set is an ordered list of points, such as a polyline.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the bounding box of a non-empty set.
func (a Set) Bounds() Box {
	return Box{a.Min(), a.Max()}
}

// MirrorY returns a copy of the set with the Y components negated.
func (a Set) MirrorY() Set {
	m := make(Set, len(a))
	for i, v := range a {
		m[i] = r2.Vec{X: v.X, Y: -v.Y}
	}
	return m
}

// XY splits the set into coordinate slices.
func (a Set) XY() (x, y []float64) {
	x = make([]float64, len(a))
	y = make([]float64, len(a))
	for i, v := range a {
		x[i], y[i] = v.X, v.Y
	}
	return x, y
}
