package geo

import "math"

// Piece carves a sub-box out of b. The anchor decides which side of the
// parent each axis measures from; x and y position the piece relative to
// that side and size chooses its extents. Every scalar is interpreted by its
// range, per axis and independently.
//
// Size, with v the requested value and D the parent extent:
//   - non-finite: the full parent extent
//   - v <= 0: the parent extent plus v, an inset
//   - 0 < v <= 1: the fraction v of the parent extent
//   - v > 1: v itself, absolute
//
// Position, with p the requested value, d the resolved piece extent, and
// s = D - d the slack:
//   - non-finite: the piece rests against the parent center on the anchor
//     side, which also centers it within the slack; center slots center the
//     piece in the parent
//   - -1 < p < 0: an offset from the parent center of p times the slack,
//     negative values moving toward the anchor side
//   - 0 < p < 1: the piece's near edge sits at the fraction p of the parent
//     extent, measured inward from the anchor edge
//   - otherwise (p = 0 or |p| >= 1): an absolute inward offset from the
//     anchor edge to the piece's near edge, so 0 lies flush against the
//     parent edge; center slots measure from the parent center instead
//
// All branches are total; no input panics. The anchor resolves against the
// live direction before any arithmetic, so a Leading piece hugs the left
// edge in left-to-right layouts and the right edge in right-to-left ones.
func (b Box) Piece(a Anchor, x, y float64, size Size) Box {
	a = a.Concrete()
	cx, w := pieceAxis(a.H(), x, size.Width, b.Center.X, b.Size.Width)
	cy, h := pieceAxis(a.V(), y, size.Height, b.Center.Y, b.Size.Height)
	return Box{Center: Point{cx, cy}, Size: Size{w, h}}
}

// pieceAxis computes one axis of a piece: the resulting center coordinate
// and extent. slot must be concrete.
func pieceAxis(slot Property, pos, size, center, extent float64) (float64, float64) {
	d := pieceExtent(size, extent)
	slack := extent - d

	if slot == CenterX || slot == CenterY {
		switch {
		case !isFinite(pos):
			return center, d
		case pos > -1 && pos < 0:
			return center + pos*slack, d
		case pos > 0 && pos < 1:
			return center + pos*extent, d
		}
		return center + pos, d
	}

	if minSide(slot) {
		switch {
		case !isFinite(pos):
			return center - d/2, d
		case pos > -1 && pos < 0:
			return center + pos*slack, d
		case pos > 0 && pos < 1:
			return (center - extent/2) + pos*extent + d/2, d
		}
		return (center - extent/2) + pos + d/2, d
	}

	switch {
	case !isFinite(pos):
		return center + d/2, d
	case pos > -1 && pos < 0:
		return center - pos*slack, d
	case pos > 0 && pos < 1:
		return (center + extent/2) - pos*extent - d/2, d
	}
	return (center + extent/2) - pos - d/2, d
}

// pieceExtent interprets a requested piece size against the parent extent.
func pieceExtent(v, parent float64) float64 {
	switch {
	case !isFinite(v):
		return parent
	case v <= 0:
		return parent + v
	case v <= 1:
		return v * parent
	}
	return v
}

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
