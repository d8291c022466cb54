package geo

import (
	"fmt"
	"math"
)

// Box is a rectangle stored as a center point and a size. The origin-based
// frame used by host toolkits is derived on demand, never stored, which
// keeps centering, mirrored layout, and grow-about-an-edge operations exact.
//
// The zero Box is an empty box at the origin. Sizes are not required to be
// positive; a negative extent describes an inverted box whose derived edges
// swap sides, and every operation stays well defined on it.
type Box struct {
	Center Point
	Size   Size
}

// NewBox returns a box with the given center and size.
func NewBox(center Point, size Size) Box { return Box{Center: center, Size: size} }

// BoxFromRect converts a host origin+size frame to a Box.
func BoxFromRect(r Rect) Box {
	return Box{
		Center: Point{r.Origin.X + r.Size.Width/2, r.Origin.Y + r.Size.Height/2},
		Size:   r.Size,
	}
}

// BoxOfSize returns a box of size s with its origin at zero, placing the
// center at half the size.
func BoxOfSize(s Size) Box {
	return Box{Center: Point{s.Width / 2, s.Height / 2}, Size: s}
}

// Origin returns the derived minimum corner, center minus half the size.
func (b Box) Origin() Point {
	return Point{b.Center.X - b.Size.Width/2, b.Center.Y - b.Size.Height/2}
}

// Rect returns the origin+size frame understood by host toolkits.
func (b Box) Rect() Rect { return Rect{Origin: b.Origin(), Size: b.Size} }

// SetOrigin moves the box so its derived origin lands at p, size unchanged.
func (b *Box) SetOrigin(p Point) {
	b.Center = Point{p.X + b.Size.Width/2, p.Y + b.Size.Height/2}
}

// SetRect replaces both center and size from a host frame.
func (b *Box) SetRect(r Rect) { *b = BoxFromRect(r) }

// WithOrigin returns a copy relocated so its origin lands at p.
func (b Box) WithOrigin(p Point) Box {
	b.SetOrigin(p)
	return b
}

// Integral returns b with the center rounded to integer coordinates, size
// unchanged. Use when only the position must land on the unit grid.
func (b Box) Integral() Box {
	b.Center = b.Center.Round()
	return b
}

// Even returns b with the center rounded to integer coordinates and the size
// rounded up to the next even integer, which makes every derived edge
// integral as well.
func (b Box) Even() Box {
	b.Center = b.Center.Round()
	b.Size = Size{evenCeil(b.Size.Width), evenCeil(b.Size.Height)}
	return b
}

// evenCeil rounds v up to the smallest even integer not below v.
func evenCeil(v float64) float64 { return math.Ceil(v/2) * 2 }

// Aligned returns b snapped for host presentation: each extent is rounded up
// to a whole unit and the center adjusted so the derived origin is integral.
// An even rounded extent keeps an integer center coordinate; an odd one puts
// the center on the nearest half-integer.
func (b Box) Aligned() Box {
	b.Center.X, b.Size.Width = alignAxis(b.Center.X, b.Size.Width)
	b.Center.Y, b.Size.Height = alignAxis(b.Center.Y, b.Size.Height)
	return b
}

func alignAxis(center, extent float64) (float64, float64) {
	extent = math.Ceil(extent)
	if math.Mod(extent, 2) == 0 {
		return math.Round(center), extent
	}
	return math.Round(center-0.5) + 0.5, extent
}

// AlignedRect is Aligned().Rect(), the frame form written back to hosts.
func (b Box) AlignedRect() Rect { return b.Aligned().Rect() }

// ContainsPoint reports whether p lies within b, edges inclusive.
func (b Box) ContainsPoint(p Point) bool {
	return p.X >= b.Property(Left) && p.X <= b.Property(Right) &&
		p.Y >= b.Property(Top) && p.Y <= b.Property(Bottom)
}

// Contains reports whether o lies entirely within b, edges inclusive.
func (b Box) Contains(o Box) bool {
	return o.Property(Left) >= b.Property(Left) && o.Property(Right) <= b.Property(Right) &&
		o.Property(Top) >= b.Property(Top) && o.Property(Bottom) <= b.Property(Bottom)
}

// Intersects reports whether b and o share interior area. Boxes that only
// touch along an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.Property(Left) < o.Property(Right) && o.Property(Left) < b.Property(Right) &&
		b.Property(Top) < o.Property(Bottom) && o.Property(Top) < b.Property(Bottom)
}

// Intersection returns the region common to b and o. When the boxes do not
// overlap along an axis the result has zero extent there, centered between
// the nearest edges.
func (b Box) Intersection(o Box) Box {
	l := math.Max(b.Property(Left), o.Property(Left))
	r := math.Min(b.Property(Right), o.Property(Right))
	t := math.Max(b.Property(Top), o.Property(Top))
	bt := math.Min(b.Property(Bottom), o.Property(Bottom))
	return Box{
		Center: Point{(l + r) / 2, (t + bt) / 2},
		Size:   Size{math.Max(r-l, 0), math.Max(bt-t, 0)},
	}
}

// Union returns the smallest box covering both b and o.
func (b Box) Union(o Box) Box {
	l := math.Min(b.Property(Left), o.Property(Left))
	r := math.Max(b.Property(Right), o.Property(Right))
	t := math.Min(b.Property(Top), o.Property(Top))
	bt := math.Max(b.Property(Bottom), o.Property(Bottom))
	return Box{
		Center: Point{(l + r) / 2, (t + bt) / 2},
		Size:   Size{r - l, bt - t},
	}
}

// Offset returns b translated by (dx, dy) in raw coordinates, ignoring the
// layout direction.
func (b Box) Offset(dx, dy float64) Box {
	b.Center.X += dx
	b.Center.Y += dy
	return b
}

// Advance returns b translated by (dx, dy) in reading order: under a
// right-to-left direction the horizontal delta is negated, so a positive dx
// always moves toward the trailing side.
func (b Box) Advance(dx, dy float64) Box {
	if RightToLeft() {
		dx = -dx
	}
	return b.Offset(dx, dy)
}

// Near reports whether center and size each differ by at most tol per
// coordinate. The comparison is per-coordinate, not Euclidean.
func (b Box) Near(o Box, tol float64) bool {
	return b.Center.Near(o.Center, tol) && b.Size.Near(o.Size, tol)
}

// Equal reports exact equality of center and size.
func (b Box) Equal(o Box) bool { return b.Near(o, 0) }

// Approx reports near-equality within the package [Tolerance].
func (b Box) Approx(o Box) bool { return b.Near(o, Tolerance) }

// TrimBy moves the edge named by p inward by amount (outward when negative)
// while the opposite edge stays in place: the extent changes by the full
// amount and the center by half. Leading and Trailing resolve against the
// live direction first. Center and extent codes are not edges and return b
// unchanged.
func (b Box) TrimBy(p Property, amount float64) Box {
	p = p.Concrete()
	if !p.IsEdge() {
		return b
	}
	if !minSide(p) {
		amount = -amount
	}
	return b.TrimTo(p, b.Property(p)+amount)
}

// TrimTo moves the edge named by p so it lands exactly at value, holding the
// opposite edge in place. Non-edge codes return b unchanged.
func (b Box) TrimTo(p Property, value float64) Box {
	p = p.Concrete()
	if !p.IsEdge() {
		return b
	}
	opp, _ := p.Opposite()
	return b.WithPropertyPinned(p, value, opp)
}

// String returns the box as "center (x, y) size w x h".
func (b Box) String() string {
	return fmt.Sprintf("center %v size %v", b.Center, b.Size)
}
