package geo

import "fmt"

// Axis identifies the dimension a [Property] measures along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns "Horizontal" or "Vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Property names a single scalar of a [Box]: one edge, one center
// coordinate, or one extent. Left, Right, Top, Bottom, CenterX, CenterY,
// Width, and Height are concrete. Leading and Trailing are abstract: which
// physical edge they mean depends on the process-wide layout direction and
// is resolved by [Property.Concrete] at each use, never stored.
type Property int

const (
	Left Property = iota
	Right
	Top
	Bottom
	Leading
	Trailing
	CenterX
	CenterY
	Width
	Height
)

// Axis reports the dimension p measures along.
func (p Property) Axis() Axis {
	switch p {
	case Top, Bottom, CenterY, Height:
		return Vertical
	}
	return Horizontal
}

// IsAbstract reports whether p depends on the layout direction.
func (p Property) IsAbstract() bool { return p == Leading || p == Trailing }

// IsEdge reports whether p names one side of a box rather than a center
// coordinate or an extent.
func (p Property) IsEdge() bool {
	switch p {
	case Left, Right, Top, Bottom, Leading, Trailing:
		return true
	}
	return false
}

// isPosition reports whether p can serve as an [Anchor] slot: edges and
// center coordinates qualify, extents do not.
func (p Property) isPosition() bool { return p.IsEdge() || p == CenterX || p == CenterY }

// minSide reports whether p is the minimum-coordinate edge of its axis.
func minSide(p Property) bool { return p == Left || p == Top }

// Concrete resolves direction-dependent codes against the live flag set by
// [SetRightToLeft]: Leading becomes Left and Trailing becomes Right in
// left-to-right layouts, mirrored in right-to-left ones. Concrete codes
// return themselves.
func (p Property) Concrete() Property {
	switch p {
	case Leading:
		if RightToLeft() {
			return Right
		}
		return Left
	case Trailing:
		if RightToLeft() {
			return Left
		}
		return Right
	}
	return p
}

// Opposite returns the edge across the box on the same axis. Center
// coordinates and extents have no opposite and report false.
func (p Property) Opposite() (Property, bool) {
	switch p {
	case Left:
		return Right, true
	case Right:
		return Left, true
	case Top:
		return Bottom, true
	case Bottom:
		return Top, true
	case Leading:
		return Trailing, true
	case Trailing:
		return Leading, true
	}
	return p, false
}

// String returns the property name as written in the constant block.
func (p Property) String() string {
	switch p {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	case CenterX:
		return "CenterX"
	case CenterY:
		return "CenterY"
	case Width:
		return "Width"
	case Height:
		return "Height"
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// Property returns the scalar named by p, derived from center and size.
//
// Leading and Trailing are not resolved by this getter and return 0; resolve
// with [Property.Concrete] before reading, as [Box.PointAt] does. Setters
// resolve on their own.
func (b Box) Property(p Property) float64 {
	switch p {
	case Left:
		return b.Center.X - b.Size.Width/2
	case Right:
		return b.Center.X + b.Size.Width/2
	case Top:
		return b.Center.Y - b.Size.Height/2
	case Bottom:
		return b.Center.Y + b.Size.Height/2
	case CenterX:
		return b.Center.X
	case CenterY:
		return b.Center.Y
	case Width:
		return b.Size.Width
	case Height:
		return b.Size.Height
	}
	return 0
}

// axisView exposes one axis of a box as a center/extent pair so property
// arithmetic can be written once for both dimensions.
type axisView struct {
	center *float64
	extent *float64
}

func (b *Box) axis(a Axis) axisView {
	if a == Vertical {
		return axisView{center: &b.Center.Y, extent: &b.Size.Height}
	}
	return axisView{center: &b.Center.X, extent: &b.Size.Width}
}

// SetProperty writes value to the scalar named by p without pinning: edges
// and centers translate the box along their axis, extents resize it
// symmetrically about the center. Abstract codes resolve first.
func (b *Box) SetProperty(p Property, value float64) {
	b.SetPropertyPinned(p, value, p)
}

// SetPropertyPinned writes value to the scalar named by p while holding pin
// in place. Both codes resolve to concrete form first; a pin on the other
// axis, or equal to p itself, means no pin.
//
// The pin decides what the write preserves:
//   - Setting an edge with the opposite edge pinned stretches the box: the
//     far edge keeps its coordinate and both extent and center follow.
//   - Setting an edge with the same-axis center pinned resizes symmetrically
//     about the unchanged center.
//   - Setting an edge unpinned translates the box along that axis.
//   - Setting CenterX or CenterY with an edge pinned holds that edge and
//     grows the extent until the center reaches value; unpinned it
//     translates.
//   - Setting Width or Height with an edge pinned grows from that edge;
//     otherwise the center holds and the box resizes symmetrically.
func (b *Box) SetPropertyPinned(p Property, value float64, pin Property) {
	p = p.Concrete()
	pin = pin.Concrete()
	if pin.Axis() != p.Axis() {
		pin = p
	}
	ax := b.axis(p.Axis())

	switch p {
	case CenterX, CenterY:
		if pin.IsEdge() {
			edge := b.Property(pin)
			if minSide(pin) {
				*ax.extent = 2 * (value - edge)
			} else {
				*ax.extent = 2 * (edge - value)
			}
		}
		*ax.center = value

	case Width, Height:
		if pin.IsEdge() {
			edge := b.Property(pin)
			if minSide(pin) {
				*ax.center = edge + value/2
			} else {
				*ax.center = edge - value/2
			}
		}
		*ax.extent = value

	default:
		opp, _ := p.Opposite()
		switch pin {
		case opp:
			far := b.Property(opp)
			*ax.center = (value + far) / 2
			if minSide(p) {
				*ax.extent = far - value
			} else {
				*ax.extent = value - far
			}
		case CenterX, CenterY:
			if minSide(p) {
				*ax.extent = 2 * (*ax.center - value)
			} else {
				*ax.extent = 2 * (value - *ax.center)
			}
		default:
			*ax.center += value - b.Property(p)
		}
	}
}

// WithProperty returns a copy with the scalar written; see [Box.SetProperty].
func (b Box) WithProperty(p Property, value float64) Box {
	b.SetProperty(p, value)
	return b
}

// WithPropertyPinned returns a copy with the scalar written under a pin; see
// [Box.SetPropertyPinned].
func (b Box) WithPropertyPinned(p Property, value float64, pin Property) Box {
	b.SetPropertyPinned(p, value, pin)
	return b
}

// Assignment pairs a Property with a target value for [Box.Apply].
type Assignment struct {
	Property Property
	Value    float64
}

// Assign is shorthand for Assignment{Property: p, Value: v}.
func Assign(p Property, v float64) Assignment { return Assignment{Property: p, Value: v} }

// Apply performs the assignments in order. Within one call the most recent
// assignment on an axis becomes the pin for the next assignment on that same
// axis, so
//
//	b.Apply(geo.Assign(geo.Left, 10), geo.Assign(geo.Width, 50))
//
// first slides the box until its left edge is at 10, then widens it to 50
// with that edge held in place. The first assignment on each axis is
// unpinned. Each step resolves abstract codes against the live direction at
// the moment it runs.
func (b Box) Apply(assignments ...Assignment) Box {
	var pins [2]Property
	var pinned [2]bool
	for _, a := range assignments {
		axis := a.Property.Axis()
		pin := a.Property
		if pinned[axis] {
			pin = pins[axis]
		}
		b.SetPropertyPinned(a.Property, a.Value, pin)
		pins[axis] = a.Property
		pinned[axis] = true
	}
	return b
}
