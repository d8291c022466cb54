// Package geo provides center-based box geometry for view layout.
//
// # Overview
//
// The central type is [Box], a rectangle stored as a center point plus a
// size. Keeping the center primary makes symmetric operations (centering,
// growing about an edge, mirroring for right-to-left locales) single-step
// arithmetic; the origin-based frame used by host toolkits is derived on
// demand via [Box.Rect].
//
// Positions along one axis are named by [Property] codes (Left, Right, Top,
// Bottom, CenterX, CenterY, Width, Height, plus the direction-dependent
// Leading and Trailing). Two-dimensional reference points combine a
// horizontal and a vertical Property into an [Anchor] (TopLeft, Center,
// BottomTrailing, ...). Both algebras support reading, moving, and pinned
// resizing:
//
//	b := geo.BoxOfSize(geo.Sz(100, 100))
//	b = b.WithProperty(geo.Left, 10)                  // translate
//	b = b.WithPropertyPinned(geo.Width, 50, geo.Left) // resize, left edge fixed
//	p := b.PointAt(geo.BottomTrailing)                // resolves direction live
//
// Sub-rectangles are carved with [Box.Piece], which interprets its position
// and size scalars as fractions, insets, or absolute values depending on
// their range.
//
// # Direction
//
// Leading and Trailing resolve against a process-wide right-to-left flag
// ([SetRightToLeft]) at every access. Nothing in this package caches a
// resolved edge, so flipping the flag reorients all subsequent reads.
//
// # Conventions
//
// Coordinates are y-down: Top is the minimum y edge and Bottom the maximum.
// All operations are total. Degenerate inputs (zero or negative sizes,
// non-finite piece scalars) produce degenerate but well-defined boxes, never
// a panic. The only constructor that can fail is [AnchorOf], which rejects
// mispaired Property codes with sentinel errors.
package geo
