// Package render draws box scenes as SVG or PNG diagrams.
//
// # Overview
//
// A [Scene] collects labeled boxes; [SVG] and [PNG] turn it into bytes.
// The sinks exist for debugging and documentation: the diagram CLI feeds
// computed geometry here so piece extractions and pinned resizes can be
// eyeballed instead of read as numbers.
//
// Basic usage:
//
//	var s render.Scene
//	s.Add("parent", parent)
//	s.Add("piece", parent.Piece(geo.TopLeading, 0, 0, geo.Sz(0.5, 0.5)))
//	svg := render.SVG(s, render.WithGrid(10), render.WithAnchors())
//
// # Options
//
//   - [WithViewport], [WithPadding], [WithGrid], [WithAnchors] for SVG
//   - [WithScale], [WithPNGPadding], [WithPNGGrid], [WithPNGAnchors] for PNG
//
// Anchor markers include the leading and trailing side midpoints, which
// resolve at render time; the same scene drawn under another direction
// moves those two dots to the opposite sides.
package render
