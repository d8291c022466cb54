package geo

import (
	"errors"
	"testing"
)

// corners are the eight anchors that have an opposite.
var corners = []Anchor{
	TopLeft, TopRight, BottomLeft, BottomRight,
	TopLeading, TopTrailing, BottomLeading, BottomTrailing,
}

func TestAnchorOf(t *testing.T) {
	valid := []struct {
		h, v Property
		want Anchor
	}{
		{Left, Top, TopLeft},
		{Right, Bottom, BottomRight},
		{Leading, Top, TopLeading},
		{Trailing, Bottom, BottomTrailing},
		{CenterX, Top, TopCenter},
		{CenterX, CenterY, Center},
		{Leading, CenterY, LeadingCenter},
		{Left, CenterY, leftCenter},
		{Right, CenterY, rightCenter},
	}
	for _, tt := range valid {
		a, err := AnchorOf(tt.h, tt.v)
		if err != nil {
			t.Errorf("AnchorOf(%v, %v): %v", tt.h, tt.v, err)
			continue
		}
		if a != tt.want {
			t.Errorf("AnchorOf(%v, %v) = %v, want %v", tt.h, tt.v, a, tt.want)
		}
	}

	invalid := []struct {
		h, v Property
		want error
	}{
		{Top, Top, ErrNotHorizontal},
		{CenterY, Top, ErrNotHorizontal},
		{Width, Top, ErrNotHorizontal},
		{Left, Left, ErrNotVertical},
		{Left, Height, ErrNotVertical},
		{Left, CenterX, ErrNotVertical},
	}
	for _, tt := range invalid {
		if _, err := AnchorOf(tt.h, tt.v); !errors.Is(err, tt.want) {
			t.Errorf("AnchorOf(%v, %v) err = %v, want %v", tt.h, tt.v, err, tt.want)
		}
	}
}

func TestAnchorSlots(t *testing.T) {
	tests := []struct {
		a    Anchor
		h, v Property
		str  string
	}{
		{TopLeft, Left, Top, "TopLeft"},
		{TopRight, Right, Top, "TopRight"},
		{BottomLeft, Left, Bottom, "BottomLeft"},
		{BottomRight, Right, Bottom, "BottomRight"},
		{TopLeading, Leading, Top, "TopLeading"},
		{TopTrailing, Trailing, Top, "TopTrailing"},
		{BottomLeading, Leading, Bottom, "BottomLeading"},
		{BottomTrailing, Trailing, Bottom, "BottomTrailing"},
		{TopCenter, CenterX, Top, "TopCenter"},
		{BottomCenter, CenterX, Bottom, "BottomCenter"},
		{LeadingCenter, Leading, CenterY, "LeadingCenter"},
		{TrailingCenter, Trailing, CenterY, "TrailingCenter"},
		{Center, CenterX, CenterY, "Center"},
		{leftCenter, Left, CenterY, "LeftCenter"},
		{rightCenter, Right, CenterY, "RightCenter"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.a.H(); got != tt.h {
				t.Errorf("H = %v, want %v", got, tt.h)
			}
			if got := tt.a.V(); got != tt.v {
				t.Errorf("V = %v, want %v", got, tt.v)
			}
			if got := tt.a.String(); got != tt.str {
				t.Errorf("String = %q, want %q", got, tt.str)
			}
			if got, want := tt.a.IsAbstract(), tt.h.IsAbstract(); got != want {
				t.Errorf("IsAbstract = %v, want %v", got, want)
			}
		})
	}

	var zero Anchor
	if zero != TopLeft {
		t.Errorf("zero Anchor = %v, want TopLeft", zero)
	}
}

func TestAnchorOpposite(t *testing.T) {
	pairs := map[Anchor]Anchor{
		TopLeft:       BottomRight,
		TopRight:      BottomLeft,
		TopLeading:    BottomTrailing,
		BottomLeading: TopTrailing,
	}
	for a, want := range pairs {
		got, ok := a.Opposite()
		if !ok || got != want {
			t.Errorf("%v.Opposite() = %v, %v, want %v, true", a, got, ok, want)
		}
		back, ok := got.Opposite()
		if !ok || back != a {
			t.Errorf("%v.Opposite() does not invert", a)
		}
	}

	for _, a := range []Anchor{Center, TopCenter, BottomCenter, LeadingCenter, TrailingCenter} {
		if _, ok := a.Opposite(); ok {
			t.Errorf("%v.Opposite() reported ok, want none", a)
		}
	}
}

func TestAnchorOppositeReflects(t *testing.T) {
	// For every corner, anchor and opposite are point reflections through
	// the box center: their locations average to the center.
	setDirection(t, false)
	b := NewBox(Pt(10, 10), Sz(20, 10))
	for _, a := range corners {
		o, ok := a.Opposite()
		if !ok {
			t.Fatalf("%v has no opposite", a)
		}
		p, q := b.PointAt(a), b.PointAt(o)
		mid := Pt((p.X+q.X)/2, (p.Y+q.Y)/2)
		if mid != b.Center {
			t.Errorf("%v/%v midpoint = %v, want %v", a, o, mid, b.Center)
		}
	}
}

func TestAnchorConcrete(t *testing.T) {
	setDirection(t, false)
	if got := TopLeading.Concrete(); got != TopLeft {
		t.Errorf("TopLeading.Concrete() = %v under LTR, want TopLeft", got)
	}
	if got := TrailingCenter.Concrete(); got != rightCenter {
		t.Errorf("TrailingCenter.Concrete() = %v under LTR, want RightCenter", got)
	}
	if got := BottomRight.Concrete(); got != BottomRight {
		t.Errorf("BottomRight.Concrete() = %v, want itself", got)
	}

	SetRightToLeft(true)
	if got := TopLeading.Concrete(); got != TopRight {
		t.Errorf("TopLeading.Concrete() = %v under RTL, want TopRight", got)
	}
	if got := TrailingCenter.Concrete(); got != leftCenter {
		t.Errorf("TrailingCenter.Concrete() = %v under RTL, want LeftCenter", got)
	}
}

func TestAnchorUnit(t *testing.T) {
	setDirection(t, false)
	tests := []struct {
		a    Anchor
		want Point
	}{
		{TopLeft, Pt(0, 0)},
		{BottomRight, Pt(1, 1)},
		{Center, Pt(0.5, 0.5)},
		{TopCenter, Pt(0.5, 0)},
		{BottomCenter, Pt(0.5, 1)},
		{LeadingCenter, Pt(0, 0.5)},
		{TopTrailing, Pt(1, 0)},
	}
	for _, tt := range tests {
		if got := tt.a.Unit(); got != tt.want {
			t.Errorf("%v.Unit() = %v, want %v", tt.a, got, tt.want)
		}
	}

	SetRightToLeft(true)
	if got := LeadingCenter.Unit(); got != Pt(1, 0.5) {
		t.Errorf("LeadingCenter.Unit() = %v under RTL, want (1, 0.5)", got)
	}
}

func TestPointAt(t *testing.T) {
	setDirection(t, false)
	b := NewBox(Pt(10, 10), Sz(20, 10))

	tests := []struct {
		a    Anchor
		want Point
	}{
		{TopLeft, Pt(0, 5)},
		{BottomRight, Pt(20, 15)},
		{Center, Pt(10, 10)},
		{TopCenter, Pt(10, 5)},
		{LeadingCenter, Pt(0, 10)},
		{BottomTrailing, Pt(20, 15)},
	}
	for _, tt := range tests {
		if got := b.PointAt(tt.a); got != tt.want {
			t.Errorf("PointAt(%v) = %v, want %v", tt.a, got, tt.want)
		}
	}

	SetRightToLeft(true)
	if got := b.PointAt(LeadingCenter); got != Pt(20, 10) {
		t.Errorf("PointAt(LeadingCenter) = %v under RTL, want (20, 10)", got)
	}
	if got := b.PointAt(BottomTrailing); got != Pt(0, 15) {
		t.Errorf("PointAt(BottomTrailing) = %v under RTL, want (0, 15)", got)
	}
}

func TestPointAtZeroSize(t *testing.T) {
	// Every anchor of a zero-size box collapses onto the center.
	b := NewBox(Pt(4, 7), Sz(0, 0))
	for _, a := range []Anchor{TopLeft, BottomRight, Center, TopCenter} {
		if got := b.PointAt(a); got != Pt(4, 7) {
			t.Errorf("PointAt(%v) = %v, want (4, 7)", a, got)
		}
	}
}

func TestMoveAnchor(t *testing.T) {
	setDirection(t, false)
	b := NewBox(Pt(10, 10), Sz(20, 10))

	b.MoveAnchor(BottomRight, Pt(30, 30))
	checkBox(t, b, NewBox(Pt(20, 25), Sz(20, 10)))
	if got := b.PointAt(BottomRight); got != Pt(30, 30) {
		t.Errorf("anchor after move = %v, want (30, 30)", got)
	}

	// The functional form leaves the receiver alone.
	orig := NewBox(Pt(10, 10), Sz(20, 10))
	moved := orig.WithAnchorMoved(Center, Pt(0, 0))
	checkBox(t, moved, NewBox(Pt(0, 0), Sz(20, 10)))
	checkBox(t, orig, NewBox(Pt(10, 10), Sz(20, 10)))
}

func TestWithAnchorAt(t *testing.T) {
	setDirection(t, false)
	b := NewBox(Pt(10, 10), Sz(20, 10)) // frame (0, 5) 20 x 10

	// Dragging a corner stretches the box; the far corner stays put.
	got := b.WithAnchorAt(BottomRight, Pt(30, 30))
	if r := got.Rect(); r != Rct(0, 5, 30, 25) {
		t.Errorf("rect = %v, want (0, 5) 30 x 25", r)
	}

	// Center slots translate their axis instead of resizing.
	got = b.WithAnchorAt(TopCenter, Pt(12, 3))
	checkBox(t, got, NewBox(Pt(12, 9), Sz(20, 12)))

	got = b.WithAnchorAt(Center, Pt(0, 0))
	checkBox(t, got, NewBox(Pt(0, 0), Sz(20, 10)))

	// Abstract corners resolve per direction.
	SetRightToLeft(true)
	got = b.WithAnchorAt(TopLeading, Pt(25, 0))
	if r := got.Rect(); r != Rct(0, 0, 25, 15) {
		t.Errorf("rect = %v under RTL, want (0, 0) 25 x 15", r)
	}
}

func TestBoxAt(t *testing.T) {
	setDirection(t, false)
	tests := []struct {
		name string
		a    Anchor
		p    Point
		want Box
	}{
		{"TopLeft", TopLeft, Pt(0, 0), BoxFromRect(Rct(0, 0, 20, 10))},
		{"Center", Center, Pt(10, 10), NewBox(Pt(10, 10), Sz(20, 10))},
		{"BottomRight", BottomRight, Pt(20, 15), NewBox(Pt(10, 10), Sz(20, 10))},
		{"BottomTrailing", BottomTrailing, Pt(20, 15), NewBox(Pt(10, 10), Sz(20, 10))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoxAt(tt.a, tt.p, Sz(20, 10))
			checkBox(t, got, tt.want)
			if at := got.PointAt(tt.a); at != tt.p {
				t.Errorf("PointAt(%v) = %v, want %v", tt.a, at, tt.p)
			}
		})
	}

	SetRightToLeft(true)
	got := BoxAt(TopLeading, Pt(20, 5), Sz(20, 10))
	checkBox(t, got, NewBox(Pt(10, 10), Sz(20, 10)))

	if xy := BoxAtXY(Center, 10, 10, 20, 10); !xy.Equal(BoxAt(Center, Pt(10, 10), Sz(20, 10))) {
		t.Error("BoxAtXY disagrees with BoxAt")
	}
}

func TestBoxBetween(t *testing.T) {
	setDirection(t, false)

	// Edge slots: the anchor point is the near edge, the opposite point the
	// far edge, on each axis.
	got := BoxBetween(TopLeft, Pt(0, 5), Pt(20, 15))
	checkBox(t, got, NewBox(Pt(10, 10), Sz(20, 10)))

	got = BoxBetween(BottomRight, Pt(20, 15), Pt(0, 5))
	checkBox(t, got, NewBox(Pt(10, 10), Sz(20, 10)))

	// Reversed points flip the sign of the extent.
	got = BoxBetween(TopLeft, Pt(20, 15), Pt(0, 5))
	checkBox(t, got, NewBox(Pt(10, 10), Sz(-20, -10)))

	// Center slots: midpoint and absolute difference.
	got = BoxBetween(Center, Pt(10, 10), Pt(20, 14))
	checkBox(t, got, NewBox(Pt(15, 12), Sz(10, 4)))

	// Mixed: horizontal center slot with a top edge slot.
	got = BoxBetween(TopCenter, Pt(10, 5), Pt(20, 15))
	checkBox(t, got, NewBox(Pt(15, 10), Sz(10, 10)))
}

func TestBoxBetweenXY(t *testing.T) {
	setDirection(t, false)

	// Edge slots behave exactly like BoxBetween.
	got := BoxBetweenXY(TopLeft, 0, 5, 20, 15)
	checkBox(t, got, NewBox(Pt(10, 10), Sz(20, 10)))

	// Center slots differ: the scalar is the center and the extent doubles
	// the difference. The two constructors are intentionally inequivalent.
	got = BoxBetweenXY(Center, 10, 10, 20, 14)
	checkBox(t, got, NewBox(Pt(10, 10), Sz(20, 8)))

	pointForm := BoxBetween(Center, Pt(10, 10), Pt(20, 14))
	if got.Equal(pointForm) {
		t.Error("scalar and point forms should disagree on center slots")
	}

	got = BoxBetweenXY(TopCenter, 10, 5, 20, 15)
	checkBox(t, got, NewBox(Pt(10, 10), Sz(20, 10)))
}
