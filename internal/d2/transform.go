package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

var identityT = Transform{data: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}

func (t Transform) isIdentity() bool {
	return t == identityT
}

// Transform represents a 2D affine transformation stored as
// a row-major 3x3 homogeneous matrix.
type Transform struct {
	data [3 * 3]float64
}

func TransformIdentity() Transform {
	return identityT
}

// Translation returns a transform that translates by v.
func Translation(v r2.Vec) Transform {
	t := identityT
	t.Set(0, 2, v.X)
	t.Set(1, 2, v.Y)
	return t
}

// Scaling returns a transform that scales each axis by the components of v.
func Scaling(v r2.Vec) Transform {
	t := identityT
	t.Set(0, 0, v.X)
	t.Set(1, 1, v.Y)
	return t
}

// SwapXY returns the transform mapping (x, y) to (y, x).
func SwapXY() Transform {
	return Transform{data: [9]float64{0, 1, 0, 1, 0, 0, 0, 0, 1}}
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices. The result applies b first, then a.
func (a Transform) Mul(b Transform) Transform {
	m := Transform{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	if t.isIdentity() {
		return b
	}
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet transforms every point of a set into a new set.
func (t Transform) ApplySet(s Set) Set {
	out := make(Set, len(s))
	for i := range s {
		out[i] = t.ApplyPos(s[i])
	}
	return out
}

// ApplyBox rotates/translates a 2d bounding box and resizes for axis-alignment.
func (a Transform) ApplyBox(box Box) Box {
	if a.isIdentity() {
		return box
	}
	// http://dev.theomader.com/transform-bounding-boxes/
	r := r2.Vec{X: a.At(0, 0), Y: a.At(1, 0)}
	u := r2.Vec{X: a.At(0, 1), Y: a.At(1, 1)}
	t := r2.Vec{X: a.At(0, 2), Y: a.At(1, 2)}
	xa := r2.Scale(box.Min.X, r)
	xb := r2.Scale(box.Max.X, r)
	ya := r2.Scale(box.Min.Y, u)
	yb := r2.Scale(box.Max.Y, u)
	xa, xb = MinElem(xa, xb), MaxElem(xa, xb)
	ya, yb = MinElem(ya, yb), MaxElem(ya, yb)
	min := r2.Add(r2.Add(xa, ya), t)
	max := r2.Add(r2.Add(xb, yb), t)
	return Box{min, max}
}
