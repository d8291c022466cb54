package geo

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotHorizontal is returned by [AnchorOf] when the horizontal slot
	// receives a Property that does not name a horizontal position. Valid
	// horizontal slots are Left, Right, Leading, Trailing, and CenterX.
	ErrNotHorizontal = errors.New("property is not a horizontal position")

	// ErrNotVertical is returned by [AnchorOf] when the vertical slot
	// receives a Property that does not name a vertical position. Valid
	// vertical slots are Top, Bottom, and CenterY.
	ErrNotVertical = errors.New("property is not a vertical position")
)

// Anchor names a reference point of a box: the pairing of a horizontal
// position (Left, Right, Leading, Trailing, or CenterX) with a vertical one
// (Top, Bottom, or CenterY). Thirteen pairings have named constants below.
// The remaining two, left-center and right-center, have no names of their
// own and normally appear as direction resolutions of [LeadingCenter] and
// [TrailingCenter]; [AnchorOf] can also produce them directly.
//
// Anchors are comparable. The zero Anchor is [TopLeft].
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomRight
	TopLeading
	TopTrailing
	BottomLeading
	BottomTrailing
	TopCenter
	BottomCenter
	LeadingCenter
	TrailingCenter
	Center
	leftCenter
	rightCenter
)

// AnchorOf pairs a horizontal and a vertical position Property into an
// Anchor. It fails with [ErrNotHorizontal] or [ErrNotVertical] when a slot
// receives a code of the wrong kind; extents (Width, Height) are never valid
// slots. On failure the returned Anchor is TopLeft.
func AnchorOf(h, v Property) (Anchor, error) {
	if h.Axis() != Horizontal || !h.isPosition() {
		return TopLeft, ErrNotHorizontal
	}
	if v.Axis() != Vertical || !v.isPosition() {
		return TopLeft, ErrNotVertical
	}
	switch v {
	case Top:
		switch h {
		case Left:
			return TopLeft, nil
		case Right:
			return TopRight, nil
		case Leading:
			return TopLeading, nil
		case Trailing:
			return TopTrailing, nil
		}
		return TopCenter, nil
	case Bottom:
		switch h {
		case Left:
			return BottomLeft, nil
		case Right:
			return BottomRight, nil
		case Leading:
			return BottomLeading, nil
		case Trailing:
			return BottomTrailing, nil
		}
		return BottomCenter, nil
	}
	switch h {
	case Left:
		return leftCenter, nil
	case Right:
		return rightCenter, nil
	case Leading:
		return LeadingCenter, nil
	case Trailing:
		return TrailingCenter, nil
	}
	return Center, nil
}

// H returns the horizontal slot of a.
func (a Anchor) H() Property {
	switch a {
	case TopLeft, BottomLeft, leftCenter:
		return Left
	case TopRight, BottomRight, rightCenter:
		return Right
	case TopLeading, BottomLeading, LeadingCenter:
		return Leading
	case TopTrailing, BottomTrailing, TrailingCenter:
		return Trailing
	}
	return CenterX
}

// V returns the vertical slot of a.
func (a Anchor) V() Property {
	switch a {
	case TopLeft, TopRight, TopLeading, TopTrailing, TopCenter:
		return Top
	case BottomLeft, BottomRight, BottomLeading, BottomTrailing, BottomCenter:
		return Bottom
	}
	return CenterY
}

// IsAbstract reports whether a depends on the layout direction.
func (a Anchor) IsAbstract() bool { return a.H().IsAbstract() }

// Concrete resolves direction-dependent anchors against the live flag. Only
// the horizontal slot can be abstract, so TopLeading becomes TopLeft under
// left-to-right and TopRight under right-to-left, and so on. Concrete
// anchors return themselves.
func (a Anchor) Concrete() Anchor {
	if !a.IsAbstract() {
		return a
	}
	c, _ := AnchorOf(a.H().Concrete(), a.V())
	return c
}

// Opposite returns the anchor reflected through the box center. It is
// defined only for the eight corners: any anchor with a center slot on
// either axis has no opposite and reports false. Abstract corners reflect to
// abstract corners, so TopLeading pairs with BottomTrailing.
func (a Anchor) Opposite() (Anchor, bool) {
	ho, hok := a.H().Opposite()
	vo, vok := a.V().Opposite()
	if !hok || !vok {
		return a, false
	}
	o, _ := AnchorOf(ho, vo)
	return o, true
}

// Unit returns the anchor's position within the unit square as 0, 0.5, or 1
// per axis, y-down: TopLeft is (0, 0) and BottomRight is (1, 1). Abstract
// slots resolve against the live direction first.
func (a Anchor) Unit() Point {
	a = a.Concrete()
	var u Point
	switch a.H() {
	case Right:
		u.X = 1
	case CenterX:
		u.X = 0.5
	}
	switch a.V() {
	case Bottom:
		u.Y = 1
	case CenterY:
		u.Y = 0.5
	}
	return u
}

// String returns the anchor name. The two unnamed pairings render as
// "LeftCenter" and "RightCenter".
func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	case TopLeading:
		return "TopLeading"
	case TopTrailing:
		return "TopTrailing"
	case BottomLeading:
		return "BottomLeading"
	case BottomTrailing:
		return "BottomTrailing"
	case TopCenter:
		return "TopCenter"
	case BottomCenter:
		return "BottomCenter"
	case LeadingCenter:
		return "LeadingCenter"
	case TrailingCenter:
		return "TrailingCenter"
	case Center:
		return "Center"
	case leftCenter:
		return "LeftCenter"
	case rightCenter:
		return "RightCenter"
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// PointAt returns the location of anchor a on b. Both slots resolve through
// [Property.Concrete] before reading, so Leading and Trailing follow the
// live direction here even though [Box.Property] leaves them unresolved.
func (b Box) PointAt(a Anchor) Point {
	return Point{
		X: b.Property(a.H().Concrete()),
		Y: b.Property(a.V().Concrete()),
	}
}

// MoveAnchor translates b so anchor a lands at to. The size never changes;
// edge anchors drag the whole box along with them.
func (b *Box) MoveAnchor(a Anchor, to Point) {
	b.SetProperty(a.H(), to.X)
	b.SetProperty(a.V(), to.Y)
}

// WithAnchorMoved returns a translated copy; see [Box.MoveAnchor].
func (b Box) WithAnchorMoved(a Anchor, to Point) Box {
	b.MoveAnchor(a, to)
	return b
}

// WithAnchorAt returns b reshaped so anchor a lands at the given point while
// the opposite edge on each axis stays fixed: edge slots stretch the box,
// center slots translate their axis. Compare [Box.WithAnchorMoved], which
// never resizes.
func (b Box) WithAnchorAt(a Anchor, at Point) Box {
	b = b.withSlotAt(a.H(), at.X)
	return b.withSlotAt(a.V(), at.Y)
}

// withSlotAt writes one axis of an anchor target, pinning the opposite edge
// when the slot is an edge.
func (b Box) withSlotAt(p Property, value float64) Box {
	p = p.Concrete()
	if opp, ok := p.Opposite(); ok {
		return b.WithPropertyPinned(p, value, opp)
	}
	return b.WithProperty(p, value)
}

// BoxAt returns a box of size s placed so that anchor a lands at p.
func BoxAt(a Anchor, p Point, s Size) Box {
	u := a.Unit()
	return Box{
		Center: Point{p.X + (0.5-u.X)*s.Width, p.Y + (0.5-u.Y)*s.Height},
		Size:   s,
	}
}

// BoxAtXY is [BoxAt] with unpacked scalars.
func BoxAtXY(a Anchor, x, y, w, h float64) Box {
	return BoxAt(a, Pt(x, y), Sz(w, h))
}

// BoxBetween returns the box spanned by an anchor point and the point at the
// reflected position. Edge slots read the coordinate of p as the anchor-side
// edge and the coordinate of opposite as the far edge, keeping the signed
// difference as the extent. Center slots place the center at the midpoint
// and take the absolute difference as the extent.
//
// The scalar form [BoxBetweenXY] interprets center slots differently; the
// two constructors are deliberately not interchangeable.
func BoxBetween(a Anchor, p, opposite Point) Box {
	a = a.Concrete()
	cx, w := spanBetween(a.H(), p.X, opposite.X)
	cy, h := spanBetween(a.V(), p.Y, opposite.Y)
	return Box{Center: Point{cx, cy}, Size: Size{w, h}}
}

// BoxBetweenXY is the scalar-pair opposite-point constructor. Edge slots
// match [BoxBetween]. Center slots treat the first scalar as the center
// itself and twice the absolute difference to the second as the extent, so
//
//	geo.BoxBetweenXY(geo.Center, 0, 0, 10, 10)
//
// spans 20 x 20 around the origin.
func BoxBetweenXY(a Anchor, x, y, ox, oy float64) Box {
	a = a.Concrete()
	cx, w := spanBetweenScalar(a.H(), x, ox)
	cy, h := spanBetweenScalar(a.V(), y, oy)
	return Box{Center: Point{cx, cy}, Size: Size{w, h}}
}

// spanBetween resolves one axis of [BoxBetween]: near is the coordinate the
// anchor slot names, far the opposing one.
func spanBetween(slot Property, near, far float64) (center, extent float64) {
	center = (near + far) / 2
	switch {
	case slot == CenterX || slot == CenterY:
		extent = math.Abs(far - near)
	case minSide(slot):
		extent = far - near
	default:
		extent = near - far
	}
	return center, extent
}

// spanBetweenScalar resolves one axis of [BoxBetweenXY].
func spanBetweenScalar(slot Property, near, far float64) (center, extent float64) {
	if slot == CenterX || slot == CenterY {
		return near, 2 * math.Abs(far-near)
	}
	return spanBetween(slot, near, far)
}
