package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit reports a unit name that [ParseUnit] does not recognize.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit identifies a display unit system.
type Unit int

const (
	// Distance is the absolute layout unit; all other units are defined as
	// a scale factor against it.
	Distance Unit = iota
	// Pixels measures device pixels (Distance times the display scale).
	Pixels
	// Percent measures hundredths of the screen width.
	Percent
	// Area measures screen height relative to a 480-unit reference screen.
	Area
)

// String returns the lowercase unit name.
func (u Unit) String() string {
	switch u {
	case Pixels:
		return "pixels"
	case Percent:
		return "percent"
	case Area:
		return "area"
	default:
		return "distance"
	}
}

// ParseUnit maps a unit name to its [Unit]. Matching is case-insensitive
// and accepts the short forms "px" and "%". Unrecognized names return
// [ErrUnknownUnit].
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "distance", "dist":
		return Distance, nil
	case "pixels", "px":
		return Pixels, nil
	case "percent", "%":
		return Percent, nil
	case "area":
		return Area, nil
	default:
		return Distance, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
}
