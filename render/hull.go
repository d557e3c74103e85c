package render

import (
	"io"
	"math"

	"github.com/soypat/gore"
	"gonum.org/v1/gonum/spatial/r3"
)

// hull meshes an envelope assembled from flat gores. The hull axis is Z and
// every cross-section is a regular polygon with one side per gore, so each
// gore face has the chord width of the flattened pattern.
type hull struct {
	stations []gore.Station
	// seams holds the unit direction of each gore seam.
	seams []r3.Vec
	// step is the next mesh section: 0 is the nose cap, 1..n-1 are the
	// segments between stations and n is the tail cap.
	step      int
	unwritten triangle3Buffer
}

// NewHullRenderer returns a Renderer of the envelope obtained by joining
// the given number of flat gores along their seams. Open ends are capped.
func NewHullRenderer(h gore.Hull, gores int) Renderer {
	if gores < 3 {
		panic("gores must be 3 or larger")
	}
	if h.Len() < 2 {
		panic("hull must have at least 2 stations")
	}
	seams := make([]r3.Vec, gores)
	for j := range seams {
		theta := 2 * math.Pi * float64(j) / float64(gores)
		seams[j] = r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return &hull{
		stations:  h.Stations,
		seams:     seams,
		unwritten: triangle3Buffer{buf: make([]Triangle3, 0, 2*gores)},
	}
}

// ReadTriangles implements the Renderer interface.
func (m *hull) ReadTriangles(dst []Triangle3) (n int, err error) {
	last := len(m.stations)
	for n < len(dst) {
		if m.unwritten.Len() > 0 {
			n += m.unwritten.Read(dst[n:])
			continue
		}
		if m.step > last {
			return n, io.EOF
		}
		switch m.step {
		case 0:
			m.cap(0, false)
		case last:
			m.cap(last-1, true)
		default:
			m.segment(m.step - 1)
		}
		m.step++
	}
	return n, nil
}

func (m *hull) vertex(i, seam int) r3.Vec {
	st := m.stations[i]
	v := r3.Scale(st.R, m.seams[seam%len(m.seams)])
	v.Z = st.X
	return v
}

// segment meshes the band between station i and i+1.
func (m *hull) segment(i int) {
	r0, r1 := m.stations[i].R, m.stations[i+1].R
	if r0 == r1 && m.stations[i].X == m.stations[i+1].X {
		return
	}
	for j := range m.seams {
		a, b := m.vertex(i, j), m.vertex(i, j+1)
		c, d := m.vertex(i+1, j+1), m.vertex(i+1, j)
		switch {
		case r0 == 0 && r1 == 0:
		case r0 == 0:
			m.unwritten.Write([]Triangle3{{V: [3]r3.Vec{a, c, d}}})
		case r1 == 0:
			m.unwritten.Write([]Triangle3{{V: [3]r3.Vec{a, b, c}}})
		default:
			m.unwritten.Write([]Triangle3{
				{V: [3]r3.Vec{a, b, c}},
				{V: [3]r3.Vec{a, c, d}},
			})
		}
	}
}

// cap closes a blunt end at station i with a triangle fan.
func (m *hull) cap(i int, tail bool) {
	if m.stations[i].R == 0 {
		return
	}
	center := r3.Vec{Z: m.stations[i].X}
	for j := range m.seams {
		a, b := m.vertex(i, j), m.vertex(i, j+1)
		if tail {
			m.unwritten.Write([]Triangle3{{V: [3]r3.Vec{center, a, b}}})
		} else {
			m.unwritten.Write([]Triangle3{{V: [3]r3.Vec{center, b, a}}})
		}
	}
}

// TriangleCount returns the number of triangles NewHullRenderer emits for a hull.
func TriangleCount(h gore.Hull, gores int) int {
	st := h.Stations
	count := 0
	for i := 1; i < len(st); i++ {
		r0, r1 := st[i-1].R, st[i].R
		switch {
		case r0 == r1 && st[i-1].X == st[i].X:
		case r0 == 0 && r1 == 0:
		case r0 == 0 || r1 == 0:
			count += gores
		default:
			count += 2 * gores
		}
	}
	if st[0].R != 0 {
		count += gores
	}
	if st[len(st)-1].R != 0 {
		count += gores
	}
	return count
}
