// Package airfoil reads airfoil coordinate files into hull half-profiles.
//
// Two layouts are understood. The XR layout lists (x, r) pairs with x
// non-decreasing from the nose. The Selig layout is the XFOIL loop running
// from the trailing edge over the upper surface to the leading edge and back
// along the lower surface; its lower surface is mirrored to positive radius.
package airfoil

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/gore"
	"gonum.org/v1/gonum/spatial/r2"
)

// Format is the coordinate layout of an airfoil file.
type Format int

const (
	XR Format = iota
	Selig
)

func (f Format) String() string {
	switch f {
	case XR:
		return "xr"
	case Selig:
		return "selig"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "xr":
		return XR, nil
	case "selig":
		return Selig, nil
	}
	return 0, fmt.Errorf("unknown airfoil format %q", s)
}

// Open reads and parses the airfoil file at path.
func Open(path string, f Format) (*gore.Profile, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	p, err := Read(fp, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Read parses an airfoil file. An optional first line that does not parse as
// numbers is taken as the airfoil name.
func Read(r io.Reader, f Format) (*gore.Profile, error) {
	name, pts, lines, err := readPairs(r)
	if err != nil {
		return nil, err
	}
	switch f {
	case XR:
		for i := 1; i < len(pts); i++ {
			if pts[i].X < pts[i-1].X {
				return nil, &gore.MalformedProfileError{Line: lines[i], Reason: fmt.Sprintf("x=%g follows x=%g", pts[i].X, pts[i-1].X)}
			}
		}
	case Selig:
		pts, err = lowerSurface(pts, lines)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown airfoil format %v", f)
	}
	return gore.NewProfile(name, pts)
}

// readPairs returns the numeric pairs of a file and their line numbers.
func readPairs(r io.Reader) (name string, pts []r2.Vec, lines []int, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ';' || c == ' ' || c == '\t'
		})
		p, perr := parsePair(fields)
		if perr != nil {
			if len(pts) == 0 && name == "" {
				name = text
				continue
			}
			return "", nil, nil, &gore.MalformedProfileError{Line: line, Reason: perr.Error()}
		}
		pts = append(pts, p)
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", nil, nil, err
	}
	if len(pts) < 2 {
		return "", nil, nil, &gore.MalformedProfileError{Line: line + 1, Reason: fmt.Sprintf("need at least 2 coordinate pairs, got %d", len(pts))}
	}
	return name, pts, lines, nil
}

func parsePair(fields []string) (r2.Vec, error) {
	if len(fields) != 2 {
		return r2.Vec{}, fmt.Errorf("want 2 columns, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return r2.Vec{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return r2.Vec{}, err
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return r2.Vec{}, fmt.Errorf("non-finite coordinate %q %q", fields[0], fields[1])
	}
	return r2.Vec{X: x, Y: y}, nil
}

// lowerSurface extracts the lower surface of a Selig loop starting at the
// leading edge, with the radius taken as the magnitude of y.
func lowerSurface(loop []r2.Vec, lines []int) ([]r2.Vec, error) {
	le := 0
	for i, p := range loop {
		if p.X < loop[le].X {
			le = i
		}
	}
	if le == len(loop)-1 {
		return nil, &gore.MalformedProfileError{Line: lines[le], Reason: "selig loop ends at the leading edge"}
	}
	lower := make([]r2.Vec, 0, len(loop)-le)
	for i := le; i < len(loop); i++ {
		p := loop[i]
		if i > le && p.X < loop[i-1].X {
			return nil, &gore.MalformedProfileError{Line: lines[i], Reason: fmt.Sprintf("lower surface x=%g follows x=%g", p.X, loop[i-1].X)}
		}
		lower = append(lower, r2.Vec{X: p.X, Y: math.Abs(p.Y)})
	}
	return lower, nil
}
