package render

import (
	"image/color"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// Labeled pairs a box with the label drawn at its center.
type Labeled struct {
	Label string
	Box   geo.Box
}

// Scene is a set of labeled boxes to draw. Bounds fixes the drawn region;
// leave it empty to frame the union of the boxes.
type Scene struct {
	Bounds geo.Box
	Boxes  []Labeled
}

// Add appends a labeled box to the scene.
func (s *Scene) Add(label string, b geo.Box) {
	s.Boxes = append(s.Boxes, Labeled{Label: label, Box: b})
}

// EffectiveBounds returns Bounds when it has extent, otherwise the union
// of every box in the scene.
func (s Scene) EffectiveBounds() geo.Box {
	if s.Bounds.Size.IsPositive() {
		return s.Bounds
	}
	var u geo.Box
	for i, lb := range s.Boxes {
		if i == 0 {
			u = lb.Box
		} else {
			u = u.Union(lb.Box)
		}
	}
	return u
}

// palette cycles per box, shared by the SVG and PNG sinks.
var palette = []color.NRGBA{
	{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xff},
	{R: 0xc7, G: 0x4e, B: 0x3d, A: 0xff},
	{R: 0x3d, G: 0x8b, B: 0x5f, A: 0xff},
	{R: 0x8f, G: 0x5f, B: 0xb0, A: 0xff},
	{R: 0xb8, G: 0x86, B: 0x2d, A: 0xff},
}

func boxColor(i int) color.NRGBA {
	return palette[i%len(palette)]
}

// markerAnchors are the reference points drawn when anchor markers are
// enabled. The two abstract side midpoints resolve against the live
// direction, so a marker diagram visibly flips under a locale change.
var markerAnchors = []geo.Anchor{
	geo.TopLeft, geo.TopCenter, geo.TopRight,
	geo.BottomLeft, geo.BottomCenter, geo.BottomRight,
	geo.LeadingCenter, geo.TrailingCenter, geo.Center,
}
