package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/gore/render"
	"gonum.org/v1/gonum/spatial/r2"
)

func sheetParms() render.SheetParms {
	return render.SheetParms{
		Width:             841,
		Height:            1189,
		Units:             "mm",
		Scale:             1,
		Margin:            10,
		Clearance:         7.5,
		GoresDrawn:        2,
		BaseAirfoil:       true,
		Name:              "ellipsoid",
		DrawName:          true,
		FontSize:          20,
		Centerlines:       true,
		LengthLines:       true,
		LengthPitch:       25,
		StationLabels:     true,
		Margins:           true,
		TextBox:           true,
		TextBoxSize:       r2.Vec{X: 331, Y: 59},
		Info:              []string{"Test sheet"},
		ConstructionWidth: 0.1,
		SolidWidth:        0.5,
		Color:             "black",
	}
}

func TestSheetSinglePage(t *testing.T) {
	env := ellipsoid(t, 100, 20, 8)
	sh, err := render.NewSheet(env, sheetParms())
	if err != nil {
		t.Fatal(err)
	}
	if sh.Pages() != 1 {
		t.Fatalf("got %d pages, want 1", sh.Pages())
	}
	var a, b bytes.Buffer
	if err := sh.WriteSVG(&a, 0); err != nil {
		t.Fatal(err)
	}
	if err := sh.WriteSVG(&b, 0); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("SVG output not repeatable")
	}
	out := a.String()
	if got := strings.Count(out, "<polygon"); got != 2 {
		t.Errorf("got %d gore polygons, want 2", got)
	}
	for _, want := range []string{"ellipsoid", "Test sheet", "rotate(-90", "<svg"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if err := sh.WriteSVG(&a, 1); err == nil {
		t.Error("expected error writing page out of range")
	}
}

func TestSheetTiled(t *testing.T) {
	env := ellipsoid(t, 100, 20, 8)
	parms := sheetParms()
	parms.Width, parms.Height = 210, 297
	parms.Scale = 10
	parms.TextBox = false
	sh, err := render.NewSheet(env, parms)
	if err != nil {
		t.Fatal(err)
	}
	size := sh.Size()
	if size.Y < 1000 {
		t.Fatalf("scaled gore length %g below 1000", size.Y)
	}
	if sh.Pages() < 4 {
		t.Fatalf("got %d pages for a %gx%g layout", sh.Pages(), size.X, size.Y)
	}
	dir := t.TempDir()
	names, err := sh.CreateSVG(filepath.Join(dir, "gores.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != sh.Pages() {
		t.Fatalf("wrote %d files for %d pages", len(names), sh.Pages())
	}
	if names[0] != filepath.Join(dir, "gores.svg") || names[1] != filepath.Join(dir, "gores_2.svg") {
		t.Errorf("unexpected page names %v", names[:2])
	}
	for _, name := range names {
		b, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(b, []byte("</svg>")) {
			t.Errorf("%s: incomplete SVG document", name)
		}
	}
}

func TestSheetInvalid(t *testing.T) {
	env := ellipsoid(t, 100, 20, 8)
	for _, mod := range []func(*render.SheetParms){
		func(p *render.SheetParms) { p.Scale = 0 },
		func(p *render.SheetParms) { p.Margin = 500 },
		func(p *render.SheetParms) { p.LengthPitch = 0 },
		func(p *render.SheetParms) { p.GoresDrawn, p.BaseAirfoil = 0, false },
	} {
		parms := sheetParms()
		mod(&parms)
		if _, err := render.NewSheet(env, parms); err == nil {
			t.Errorf("expected error for parms %+v", parms)
		}
	}
}
