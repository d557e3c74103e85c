// Package render writes gore patterns and envelope models to files.
//
// Cutting sheets are written as SVG pages or DXF, the assembled envelope as
// an STL mesh, and previews as charts or shaded images.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams the triangles of a mesh. ReadTriangles fills t and returns
// the number of triangles written. It returns io.EOF once the mesh is exhausted,
// possibly alongside the last triangles.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a triangle in 3D space with counter-clockwise winding about its outward normal.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle given by the winding of its vertices.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if two vertices of the triangle are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return r3.Norm(r3.Sub(t.V[0], t.V[1])) <= tol ||
		r3.Norm(r3.Sub(t.V[1], t.V[2])) <= tol ||
		r3.Norm(r3.Sub(t.V[2], t.V[0])) <= tol
}
