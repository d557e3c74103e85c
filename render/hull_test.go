package render_test

import (
	"math"
	"testing"

	"github.com/soypat/gore"
	"github.com/soypat/gore/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ellipsoid returns an envelope of an ellipsoid of revolution with the
// given length and maximum radius.
func ellipsoid(t testing.TB, length, radius float64, gores int) *gore.Envelope {
	t.Helper()
	const n = 41
	pts := make([]r2.Vec, n)
	for i := range pts {
		x := length * float64(i) / (n - 1)
		u := 2*x/length - 1
		pts[i] = r2.Vec{X: x, Y: radius * math.Sqrt(math.Max(0, 1-u*u))}
	}
	p, err := gore.NewProfile("ellipsoid", pts)
	if err != nil {
		t.Fatal(err)
	}
	env, err := gore.Build(p, gore.Parms{
		Sample: gore.SampleParms{Count: 60, Spacing: gore.Cosine, Interpolation: gore.Cubic},
		Gore:   gore.GoreParms{Gores: gores, Shrinkage: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return env
}

func TestHullTriangleCount(t *testing.T) {
	diamond, err := gore.Solve([]r2.Vec{{X: 0, Y: 0}, {X: 50, Y: 10}, {X: 100, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	cylinder, err := gore.Solve([]r2.Vec{{X: 0, Y: 1}, {X: 5, Y: 1}, {X: 10, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	capped, err := gore.Solve([]r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 5, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name  string
		h     gore.Hull
		gores int
		want  int
	}{
		// Two cones meeting at their base.
		{name: "diamond", h: diamond, gores: 8, want: 16},
		// Two bands of quads plus end caps.
		{name: "cylinder", h: cylinder, gores: 6, want: 2*2*6 + 2*6},
		// Radial end segments mesh as flat fans instead of caps.
		{name: "capped cylinder", h: capped, gores: 6, want: 2*6 + 2*2*6},
	} {
		model, err := render.RenderAll(render.NewHullRenderer(test.h, test.gores))
		if err != nil {
			t.Fatal(err)
		}
		if len(model) != test.want || render.TriangleCount(test.h, test.gores) != test.want {
			t.Errorf("%s: rendered %d, counted %d, want %d triangles", test.name, len(model),
				render.TriangleCount(test.h, test.gores), test.want)
		}
	}
}

func TestHullOutwardNormals(t *testing.T) {
	env := ellipsoid(t, 100, 20, 12)
	model, err := render.RenderAll(render.NewHullRenderer(env.Hull, 12))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) != render.TriangleCount(env.Hull, 12) {
		t.Fatalf("rendered %d triangles, counted %d", len(model), render.TriangleCount(env.Hull, 12))
	}
	center := r3.Vec{Z: 50}
	for i, tri := range model {
		if tri.Degenerate(1e-9) {
			t.Fatalf("triangle %d is degenerate: %v", i, tri.V)
		}
		centroid := r3.Scale(1.0/3, r3.Add(r3.Add(tri.V[0], tri.V[1]), tri.V[2]))
		if r3.Dot(tri.Normal(), r3.Sub(centroid, center)) <= 0 {
			t.Fatalf("triangle %d faces inward: %v", i, tri.V)
		}
	}
}

func TestHullFaceWidthMatchesGore(t *testing.T) {
	const gores = 8
	env := ellipsoid(t, 100, 20, gores)
	model, err := render.RenderAll(render.NewHullRenderer(env.Hull, gores))
	if err != nil {
		t.Fatal(err)
	}
	// Every seam-to-seam edge at a station is a full gore width.
	var maxEdge float64
	for _, tri := range model {
		for k := 0; k < 3; k++ {
			a, b := tri.V[k], tri.V[(k+1)%3]
			if a.Z == b.Z && a.Z != 0 && a.Z != 100 {
				maxEdge = math.Max(maxEdge, r3.Norm(r3.Sub(a, b)))
			}
		}
	}
	if want := 2 * env.Outline.MaxWidth(); math.Abs(maxEdge-want) > 1e-9 {
		t.Errorf("widest face %g, want gore width %g", maxEdge, want)
	}
}
