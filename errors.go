package gore

import (
	"errors"
	"fmt"
)

// ErrStationCount is returned when fewer than two stations are requested or supplied.
var ErrStationCount = errors.New("gore: at least 2 stations required")

// MalformedProfileError is returned when airfoil coordinates cannot describe
// a half-profile of a solid of revolution.
type MalformedProfileError struct {
	// Line is the 1-based line of the source file, if known. Zero otherwise.
	Line int
	// Index is the point index within the profile, or -1 when not applicable.
	Index  int
	Reason string
}

func (e *MalformedProfileError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("gore: malformed profile at line %d: %s", e.Line, e.Reason)
	case e.Index >= 0:
		return fmt.Sprintf("gore: malformed profile at point %d: %s", e.Index, e.Reason)
	}
	return "gore: malformed profile: " + e.Reason
}

// OutOfRangeError is returned when a station is requested outside of the
// axial domain of the raw profile.
type OutOfRangeError struct {
	X, Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("gore: station x=%g outside profile domain [%g, %g]", e.X, e.Min, e.Max)
}

// DegenerateStationError is returned when consecutive stations coincide
// in the interior of the hull or are out of order.
type DegenerateStationError struct {
	Index int
	X     float64
}

func (e *DegenerateStationError) Error() string {
	return fmt.Sprintf("gore: degenerate station %d at x=%g", e.Index, e.X)
}

// InsufficientGoreCountError is returned for gore counts that cannot close a hull.
type InsufficientGoreCountError struct {
	Gores int
}

func (e *InsufficientGoreCountError) Error() string {
	return fmt.Sprintf("gore: need at least 3 gores, got %d", e.Gores)
}

// InvalidFactorError is returned for non-positive scaling factors.
type InvalidFactorError struct {
	Name  string
	Value float64
}

func (e *InvalidFactorError) Error() string {
	return fmt.Sprintf("gore: %s must be positive, got %g", e.Name, e.Value)
}
