// Package fynehost adapts Fyne canvas objects to the host view boundary.
package fynehost

import (
	"fyne.io/fyne/v2"

	"github.com/ericcole/ViewBox/pkg/geo"
	"github.com/ericcole/ViewBox/pkg/host"
	"github.com/ericcole/ViewBox/pkg/units"
)

var _ host.View = (*View)(nil)

// View wraps a [fyne.CanvasObject] as a [host.View]. Fyne positions are
// relative to the parent container and y-down, matching the geometry
// core's conventions, so frames pass through with only a float32 cast.
type View struct {
	obj fyne.CanvasObject
}

// Wrap adapts obj for use with [host.Read] and [host.Write].
func Wrap(obj fyne.CanvasObject) *View {
	return &View{obj: obj}
}

// Object returns the wrapped canvas object.
func (v *View) Object() fyne.CanvasObject { return v.obj }

func (v *View) Frame() geo.Rect {
	pos := v.obj.Position()
	size := v.obj.Size()
	return geo.Rct(float64(pos.X), float64(pos.Y), float64(size.Width), float64(size.Height))
}

func (v *View) SetFrame(r geo.Rect) {
	v.obj.Move(fyne.NewPos(float32(r.Origin.X), float32(r.Origin.Y)))
	v.obj.Resize(fyne.NewSize(float32(r.Size.Width), float32(r.Size.Height)))
}

func (v *View) MinSize() geo.Size {
	min := v.obj.MinSize()
	return geo.Sz(float64(min.Width), float64(min.Height))
}

// SizeThatFits answers the constraint query with the object's minimum
// size; Fyne widgets size to content and expose no constrained measure.
func (v *View) SizeThatFits(geo.Size) geo.Size {
	return v.MinSize()
}

// DetectMetrics reads display metrics from a canvas: device scale and the
// canvas extent as the percent/area reference size. Call on show and on
// scale change, then pass the result to [units.SetMetrics].
func DetectMetrics(c fyne.Canvas) units.Metrics {
	m := units.DefaultMetrics()
	// A canvas that is not yet shown can report a zero scale or size.
	if s := float64(c.Scale()); s > 0 {
		m.Scale = s
	}
	size := c.Size()
	if size.Width > 0 && size.Height > 0 {
		m.Screen = geo.Sz(float64(size.Width), float64(size.Height))
	}
	return m
}
