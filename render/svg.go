package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"gonum.org/v1/gonum/spatial/r2"
)

// WriteSVG writes page number page (starting at 0) of the sheet as an SVG document.
func (sh *Sheet) WriteSVG(w io.Writer, page int) error {
	if page < 0 || page >= len(sh.pages) {
		return fmt.Errorf("page %d out of range [0, %d)", page, len(sh.pages))
	}
	p := sh.parms
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Startunit(p.Width, p.Height, p.Units, fmt.Sprintf(`viewBox="0 0 %g %g"`, p.Width, p.Height))
	if sh.Pages() > 1 {
		row, col := sh.pages[page][0], sh.pages[page][1]
		canvas.Title(fmt.Sprintf("%s page %d of %d (row %d, column %d)", p.Name, page+1, sh.Pages(), row+1, col+1))
	} else {
		canvas.Title(p.Name)
	}
	sh.frame(canvas, page)

	tile := sh.tile(sh.pages[page][0], sh.pages[page][1])
	area := sh.drawable()
	canvas.Def()
	canvas.ClipPath(`id="drawable"`)
	canvas.Rect(p.Margin, p.Margin, area.X, area.Y)
	canvas.ClipEnd()
	canvas.DefEnd()
	canvas.Group(`clip-path="url(#drawable)"`)
	// Shift the tile into the drawable area of the page.
	canvas.Gtransform(fmt.Sprintf("translate(%g,%g)", p.Margin-tile.Min.X, p.Margin-tile.Min.Y))
	for _, it := range sh.items {
		if !it.box.Overlaps(tile) {
			continue
		}
		for _, line := range it.lines {
			x, y := line.pts.XY()
			if line.closed {
				canvas.Polygon(x, y, sh.stroke(line.kind))
			} else {
				canvas.Polyline(x, y, sh.stroke(line.kind))
			}
		}
		for _, l := range it.labels {
			sh.text(canvas, l)
		}
	}
	canvas.Gend()
	canvas.Gend()
	canvas.End()
	return bw.Flush()
}

// frame draws the page margins and the title block.
func (sh *Sheet) frame(canvas *svg.SVG, page int) {
	p := sh.parms
	border := fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", p.Color)
	if p.Margins {
		canvas.Rect(p.Margin, p.Margin, p.Width-2*p.Margin, p.Height-2*p.Margin, border)
	}
	if !p.TextBox {
		return
	}
	box := r2.Vec{X: p.Width - p.Margin - p.TextBoxSize.X, Y: p.Height - p.Margin - p.TextBoxSize.Y}
	canvas.Rect(box.X, box.Y, p.TextBoxSize.X, p.TextBoxSize.Y, border)
	lines := p.Info
	if sh.Pages() > 1 {
		lines = append(append([]string(nil), lines...), fmt.Sprintf("Page %d of %d", page+1, sh.Pages()))
	}
	y := box.Y + 12
	for _, line := range lines {
		canvas.Text(box.X+5, y, line, "font-size:8pt;font-family:monospace")
		y += 12
	}
}

func (sh *Sheet) stroke(kind strokeKind) string {
	p := sh.parms
	if kind == construction {
		return fmt.Sprintf("fill:none;stroke:grey;stroke-width:%g;stroke-dasharray:3,3", p.ConstructionWidth)
	}
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", p.Color, p.SolidWidth)
}

func (sh *Sheet) text(canvas *svg.SVG, l label) {
	style := fmt.Sprintf("font-size:%gpx;font-family:Helvetica;fill:%s", l.size, sh.parms.Color)
	if l.rotate {
		canvas.Text(l.pos.X, l.pos.Y, l.text, style,
			fmt.Sprintf(`transform="rotate(-90,%g,%g)"`, l.pos.X, l.pos.Y))
		return
	}
	canvas.Text(l.pos.X, l.pos.Y, l.text, style)
}

// CreateSVG writes every page of the sheet to its own file. The first page is
// written to path and following pages get a _2, _3... suffix before the extension.
// It returns the names of the files written.
func (sh *Sheet) CreateSVG(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty SVG path")
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	var written []string
	for page := range sh.pages {
		name := path
		if page > 0 {
			name = fmt.Sprintf("%s_%d%s", base, page+1, ext)
		}
		if err := sh.createPage(name, page); err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}

func (sh *Sheet) createPage(name string, page int) error {
	fp, err := os.Create(name)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := sh.WriteSVG(fp, page); err != nil {
		return err
	}
	return fp.Close()
}
