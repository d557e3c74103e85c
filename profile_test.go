package gore_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/gore"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// diamond is the half-profile of two cones joined at their bases.
var diamond = []r2.Vec{{X: 0, Y: 0}, {X: 50, Y: 10}, {X: 100, Y: 0}}

// ellipse returns n points of the upper half of an ellipse with the given
// length and maximum radius, nose at the origin.
func ellipse(n int, length, radius float64) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		u := 2*t - 1
		pts[i] = r2.Vec{X: t * length, Y: radius * math.Sqrt(math.Max(0, 1-u*u))}
	}
	return pts
}

func mustProfile(t testing.TB, pts []r2.Vec) *gore.Profile {
	t.Helper()
	p, err := gore.NewProfile("test", pts)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewProfileMalformed(t *testing.T) {
	for _, test := range []struct {
		name string
		pts  []r2.Vec
	}{
		{name: "empty"},
		{name: "single", pts: []r2.Vec{{X: 0, Y: 0}}},
		{name: "unordered", pts: []r2.Vec{{X: 0, Y: 0}, {X: 60, Y: 10}, {X: 50, Y: 9}, {X: 100, Y: 0}}},
		{name: "negative radius", pts: []r2.Vec{{X: 0, Y: 0}, {X: 50, Y: -1}, {X: 100, Y: 0}}},
		{name: "nan", pts: []r2.Vec{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}, {X: 100, Y: 0}}},
		{name: "zero length", pts: []r2.Vec{{X: 5, Y: 0}, {X: 5, Y: 3}}},
	} {
		_, err := gore.NewProfile(test.name, test.pts)
		var perr *gore.MalformedProfileError
		if !errors.As(err, &perr) {
			t.Errorf("%s: want MalformedProfileError, got %v", test.name, err)
		}
	}
}

func TestNewProfileCopiesInput(t *testing.T) {
	pts := append([]r2.Vec(nil), diamond...)
	p := mustProfile(t, pts)
	pts[1].Y = 1000
	if got := p.Points()[1].Y; got != 10 {
		t.Errorf("profile aliased input slice, got radius %g", got)
	}
	if p.Blunt() {
		t.Error("closed diamond reported blunt")
	}
	if p.Chord() != 100 {
		t.Errorf("chord %g, want 100", p.Chord())
	}
}

func TestResampleCountAndOrder(t *testing.T) {
	p := mustProfile(t, ellipse(41, 100, 12))
	for _, sp := range []gore.Spacing{gore.Uniform, gore.Cosine, gore.Power} {
		for _, mode := range []gore.Interpolation{gore.Linear, gore.Cubic} {
			for _, count := range []int{2, 3, 17, 250} {
				got, err := p.Resample(gore.SampleParms{
					Count:         count,
					Spacing:       sp,
					Interpolation: mode,
					Bunching:      3,
				})
				if err != nil {
					t.Fatalf("%v/%v/%d: %v", sp, mode, count, err)
				}
				if len(got) != count {
					t.Fatalf("%v/%v: got %d stations, want %d", sp, mode, len(got), count)
				}
				if got[0].X != 0 || got[count-1].X != 100 {
					t.Errorf("%v/%v/%d: endpoints %g %g", sp, mode, count, got[0].X, got[count-1].X)
				}
				for i := 1; i < count; i++ {
					if got[i].X < got[i-1].X {
						t.Fatalf("%v/%v/%d: station %d decreases", sp, mode, count, i)
					}
					if got[i].Y < 0 {
						t.Fatalf("%v/%v/%d: station %d negative radius", sp, mode, count, i)
					}
				}
			}
		}
	}
}

func TestResampleLinear(t *testing.T) {
	p := mustProfile(t, diamond)
	got, err := p.Resample(gore.SampleParms{Count: 5, Spacing: gore.Uniform, Interpolation: gore.Linear})
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Vec{{X: 0, Y: 0}, {X: 25, Y: 5}, {X: 50, Y: 10}, {X: 75, Y: 5}, {X: 100, Y: 0}}
	for i := range want {
		if !scalar.EqualWithinAbs(got[i].X, want[i].X, 1e-12) || !scalar.EqualWithinAbs(got[i].Y, want[i].Y, 1e-12) {
			t.Errorf("station %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleCubicThroughKnots(t *testing.T) {
	pts := ellipse(11, 100, 12)
	p := mustProfile(t, pts)
	xs := make([]float64, len(pts))
	for i := range pts {
		xs[i] = pts[i].X
	}
	got, err := p.Sample(xs, gore.Cubic)
	if err != nil {
		t.Fatal(err)
	}
	for i := range pts {
		if !scalar.EqualWithinAbs(got[i].Y, pts[i].Y, 1e-9) {
			t.Errorf("knot %d: got radius %g, want %g", i, got[i].Y, pts[i].Y)
		}
	}
}

func TestCosineClustersAtEnds(t *testing.T) {
	p := mustProfile(t, diamond)
	uniform, err := p.Resample(gore.SampleParms{Count: 21, Spacing: gore.Uniform})
	if err != nil {
		t.Fatal(err)
	}
	cosine, err := p.Resample(gore.SampleParms{Count: 21, Spacing: gore.Cosine})
	if err != nil {
		t.Fatal(err)
	}
	if !(cosine[1].X < uniform[1].X) || !(100-cosine[19].X < 100-uniform[19].X) {
		t.Errorf("cosine spacing does not cluster at the ends: first gap %g, last gap %g", cosine[1].X, 100-cosine[19].X)
	}
	mid := cosine[11].X - cosine[10].X
	if !(mid > uniform[11].X-uniform[10].X) {
		t.Errorf("cosine spacing mid gap %g not wider than uniform", mid)
	}
}

func TestResampleTruncation(t *testing.T) {
	p := mustProfile(t, diamond)
	got, err := p.Resample(gore.SampleParms{Count: 4, Truncation: 0.75, Interpolation: gore.Linear})
	if err != nil {
		t.Fatal(err)
	}
	last := got[len(got)-1]
	if last.X != 75 || !scalar.EqualWithinAbs(last.Y, 5, 1e-12) {
		t.Errorf("truncated tail at %v, want (75, 5)", last)
	}
}

func TestResampleRadialCaps(t *testing.T) {
	p := mustProfile(t, []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 100, Y: 10}, {X: 100, Y: 0}})
	if p.Blunt() {
		t.Error("radially capped profile reported blunt")
	}
	got, err := p.Sample([]float64{0, 50, 100}, gore.Linear)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i].Y != 10 {
			t.Errorf("sample %d: radius %g, want rim radius 10", i, got[i].Y)
		}
	}
	got, err = p.Resample(gore.SampleParms{Count: 4, Truncation: 0.5, Interpolation: gore.Linear})
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 25, Y: 10}, {X: 50, Y: 10}}
	for i := range want {
		if !scalar.EqualWithinAbs(got[i].X, want[i].X, 1e-12) || !scalar.EqualWithinAbs(got[i].Y, want[i].Y, 1e-12) {
			t.Errorf("truncated station %d: got %v, want %v", i, got[i], want[i])
		}
	}
	// Both caps take a station, leaving one for the fitted body.
	_, err = p.Resample(gore.SampleParms{Count: 3})
	if !errors.Is(err, gore.ErrStationCount) {
		t.Errorf("three stations on capped profile: want ErrStationCount, got %v", err)
	}
}

func TestResampleErrors(t *testing.T) {
	p := mustProfile(t, diamond)
	var rerr *gore.OutOfRangeError
	_, err := p.Resample(gore.SampleParms{Count: 10, Truncation: 1.5})
	if !errors.As(err, &rerr) {
		t.Errorf("truncation past tail: want OutOfRangeError, got %v", err)
	}
	_, err = p.Resample(gore.SampleParms{Count: 10, Truncation: -1})
	if !errors.As(err, &rerr) {
		t.Errorf("negative truncation: want OutOfRangeError, got %v", err)
	}
	_, err = p.Sample([]float64{50, 100.5}, gore.Linear)
	if !errors.As(err, &rerr) {
		t.Errorf("sample past tail: want OutOfRangeError, got %v", err)
	}
	if rerr.X != 100.5 || rerr.Max != 100 {
		t.Errorf("unexpected range error contents %+v", rerr)
	}
	_, err = p.Resample(gore.SampleParms{Count: 1})
	if !errors.Is(err, gore.ErrStationCount) {
		t.Errorf("single station: want ErrStationCount, got %v", err)
	}
	var ferr *gore.InvalidFactorError
	_, err = p.Resample(gore.SampleParms{Count: 10, Spacing: gore.Power})
	if !errors.As(err, &ferr) {
		t.Errorf("zero bunching: want InvalidFactorError, got %v", err)
	}
}

func TestScale(t *testing.T) {
	p := mustProfile(t, diamond)
	q, err := p.Scale(10)
	if err != nil {
		t.Fatal(err)
	}
	if q.Chord() != 1000 || q.Bounds().Max.Y != 100 {
		t.Errorf("scaled profile chord %g, max radius %g", q.Chord(), q.Bounds().Max.Y)
	}
	if p.Chord() != 100 {
		t.Error("Scale mutated receiver")
	}
	var ferr *gore.InvalidFactorError
	if _, err := p.Scale(0); !errors.As(err, &ferr) {
		t.Errorf("zero scale: want InvalidFactorError, got %v", err)
	}
}

func TestParseEnums(t *testing.T) {
	for _, sp := range []gore.Spacing{gore.Uniform, gore.Cosine, gore.Power} {
		got, err := gore.ParseSpacing(sp.String())
		if err != nil || got != sp {
			t.Errorf("ParseSpacing(%q) = %v, %v", sp.String(), got, err)
		}
	}
	if _, err := gore.ParseSpacing("random"); err == nil {
		t.Error("expected error for unknown spacing")
	}
	for _, m := range []gore.Interpolation{gore.Linear, gore.Cubic} {
		got, err := gore.ParseInterpolation(m.String())
		if err != nil || got != m {
			t.Errorf("ParseInterpolation(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := gore.ParseInterpolation("quintic"); err == nil {
		t.Error("expected error for unknown interpolation")
	}
}
