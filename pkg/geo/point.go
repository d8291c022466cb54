package geo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point is a location in the y-down coordinate space of a host surface.
// The zero value is the origin.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by the negation of q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p with both coordinates scaled by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Round returns p with both coordinates rounded to the nearest integer,
// halves away from zero.
func (p Point) Round() Point { return Point{math.Round(p.X), math.Round(p.Y)} }

// Near reports whether each coordinate of p is within tol of the
// corresponding coordinate of q. The comparison is per-coordinate, not
// Euclidean: a point may be Near even when the straight-line distance
// exceeds tol.
func (p Point) Near(q Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) && scalar.EqualWithinAbs(p.Y, q.Y, tol)
}

// String returns the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Size is a width and height pair. Sizes are signed: operations that derive
// edges from a negative size produce inverted but well-defined boxes.
type Size struct {
	Width  float64
	Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

// IsPositive reports whether both dimensions are strictly greater than zero.
func (s Size) IsPositive() bool { return s.Width > 0 && s.Height > 0 }

// Add returns s grown by t in both dimensions.
func (s Size) Add(t Size) Size { return Size{s.Width + t.Width, s.Height + t.Height} }

// Sub returns s shrunk by t in both dimensions.
func (s Size) Sub(t Size) Size { return Size{s.Width - t.Width, s.Height - t.Height} }

// Mul returns s with both dimensions scaled by k.
func (s Size) Mul(k float64) Size { return Size{s.Width * k, s.Height * k} }

// Near reports whether each dimension of s is within tol of the
// corresponding dimension of t.
func (s Size) Near(t Size, tol float64) bool {
	return scalar.EqualWithinAbs(s.Width, t.Width, tol) && scalar.EqualWithinAbs(s.Height, t.Height, tol)
}

// String returns the size as "w x h".
func (s Size) String() string { return fmt.Sprintf("%g x %g", s.Width, s.Height) }

// Rect is the origin+size rectangle used by host toolkits. It is a plain
// carrier for crossing the host boundary; all geometry operations live on
// [Box]. Origin is the minimum-x, minimum-y corner (top-left in y-down
// coordinates) when Size is positive.
type Rect struct {
	Origin Point
	Size   Size
}

// Rct is shorthand for Rect{Origin: Pt(x, y), Size: Sz(w, h)}.
func Rct(x, y, w, h float64) Rect { return Rect{Origin: Pt(x, y), Size: Sz(w, h)} }

// Near reports whether origin and size are both within tol per coordinate.
func (r Rect) Near(q Rect, tol float64) bool {
	return r.Origin.Near(q.Origin, tol) && r.Size.Near(q.Size, tol)
}

// String returns the rect as "(x, y) w x h".
func (r Rect) String() string { return fmt.Sprintf("%v %v", r.Origin, r.Size) }
