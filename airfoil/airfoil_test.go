package airfoil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/soypat/gore"
	"github.com/soypat/gore/airfoil"
)

func TestOpenSelig(t *testing.T) {
	p, err := airfoil.Open("testdata/naca0012.dat", airfoil.Selig)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "NACA 0012 AIRFOILS" {
		t.Errorf("got name %q", p.Name())
	}
	// Leading edge plus 32 lower surface points.
	if p.Len() != 33 {
		t.Errorf("got %d points, want 33", p.Len())
	}
	b := p.Bounds()
	if b.Min.X != 0 || b.Max.X != 1 || b.Min.Y < 0 {
		t.Errorf("unexpected bounds %+v", b)
	}
	if b.Max.Y < 0.059 || b.Max.Y > 0.061 {
		t.Errorf("max half-thickness %g, want 0.06", b.Max.Y)
	}
}

func TestOpenXR(t *testing.T) {
	p, err := airfoil.Open("testdata/ellipsoid.csv", airfoil.XR)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "" {
		t.Errorf("comment taken as name %q", p.Name())
	}
	if p.Len() != 21 || p.Chord() != 10 || p.Bounds().Max.Y != 1.25 {
		t.Errorf("got %d points, chord %g, max radius %g", p.Len(), p.Chord(), p.Bounds().Max.Y)
	}
	if _, err := airfoil.Open("testdata/missing.dat", airfoil.XR); err == nil {
		t.Error("expected error opening missing file")
	}
}

func TestReadSeparators(t *testing.T) {
	const input = "hull\n0 0\n1,0.5\n2;0.75\n3\t0.5\n  4 ,  0  \n"
	p, err := airfoil.Read(strings.NewReader(input), airfoil.XR)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "hull" || p.Len() != 5 {
		t.Fatalf("got name %q and %d points", p.Name(), p.Len())
	}
	if p.Points()[2].Y != 0.75 {
		t.Errorf("got %v", p.Points())
	}
}

func TestReadMalformed(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		line  int
	}{
		{name: "unordered", input: "0 0\n2 1\n1 1\n3 0\n", line: 3},
		{name: "three columns", input: "name\n0 0 0\n1 0\n", line: 2},
		{name: "garbage", input: "0 0\n1 x\n2 0\n", line: 2},
		{name: "too short", input: "# only\n0 0\n", line: 3},
		{name: "selig ends at nose", input: "1 0\n0.5 0.1\n0 0\n", line: 3},
		{name: "selig lower unordered", input: "1 0\n0 0\n0.5 -0.1\n0.4 -0.1\n1 0\n", line: 4},
	} {
		f := airfoil.XR
		if strings.HasPrefix(test.name, "selig") {
			f = airfoil.Selig
		}
		_, err := airfoil.Read(strings.NewReader(test.input), f)
		var perr *gore.MalformedProfileError
		if !errors.As(err, &perr) {
			t.Errorf("%s: want MalformedProfileError, got %v", test.name, err)
			continue
		}
		if perr.Line != test.line {
			t.Errorf("%s: got line %d, want %d", test.name, perr.Line, test.line)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []airfoil.Format{airfoil.XR, airfoil.Selig} {
		got, err := airfoil.ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := airfoil.ParseFormat("dxf"); err == nil {
		t.Error("expected error for unknown format")
	}
}
