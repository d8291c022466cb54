// Package host is the boundary between the geometry core and a UI toolkit.
//
// The core never talks to a toolkit directly; it sees a [View], which is
// any widget that can report and accept an origin-based frame and answer
// the two sizing queries layout code needs. [Read] and [Write] move
// geometry across that boundary: reads lift a frame into a [geo.Box],
// writes align the box to the pixel grid and skip the toolkit call when
// the frame would not observably change.
//
// Process-wide configuration flows the other way. Toolkit adapters call
// [SetDirection] on locale change (and units.SetMetrics on display
// change); [FrameHooks] lets an application observe writes and direction
// flips without the core depending on any instrumentation backend.
package host

import "github.com/ericcole/ViewBox/pkg/geo"

// View is a host widget as seen by layout code: a mutable frame plus two
// opaque sizing queries.
type View interface {
	// Frame returns the current origin-based rectangle of the view.
	Frame() geo.Rect
	// SetFrame moves and resizes the view.
	SetFrame(geo.Rect)
	// MinSize returns the intrinsic preferred size of the view's content.
	MinSize() geo.Size
	// SizeThatFits returns the size the view would choose given the
	// constraint. Implementations unable to answer return MinSize.
	SizeThatFits(geo.Size) geo.Size
}

// Read lifts the view's current frame into a center-based box.
func Read(v View) geo.Box {
	return geo.BoxFromRect(v.Frame())
}

// Write pushes b to the view as an aligned frame. The toolkit call is
// skipped when the current frame already matches within [geo.Tolerance]
// per coordinate, so layout passes that recompute identical geometry cost
// nothing. It reports whether the frame was pushed; registered
// [FrameHooks] observe every attempt either way.
func Write(v View, b geo.Box) bool {
	frame := b.AlignedRect()
	applied := !v.Frame().Near(frame, geo.Tolerance)
	if applied {
		v.SetFrame(frame)
	}
	Frames().OnWrite(frame, applied)
	return applied
}

// SetDirection updates the process-wide layout direction and notifies
// hooks. Toolkit adapters call this when the effective locale changes.
func SetDirection(rtl bool) {
	geo.SetRightToLeft(rtl)
	Frames().OnDirectionChange(rtl)
}
