// Package pkg provides the core libraries for ViewBox center-based layout.
//
// # Overview
//
// ViewBox stores rectangles as a center point plus a size and derives the
// origin-based frame only at the host boundary. Keeping the center primary
// makes centering, mirrored (right-to-left) layout, and grow-about-an-edge
// operations exact instead of accumulating origin arithmetic drift. The pkg
// directory is organized into five areas:
//
//  1. [geo] - Geometry core (Point, Size, Rect, Box, properties, anchors, pieces)
//  2. [units] - Display units and process metrics (distance, pixels, percent, area)
//  3. [host] - Host-view boundary (frame read/write, coalescing, hooks)
//  4. [host/fynehost] - Adapter binding the boundary to Fyne canvas objects
//  5. [render] - Diagram sinks (SVG and PNG scenes for debugging layouts)
//
// # Architecture
//
// The typical data flow through ViewBox:
//
//	Host widget frame (origin + size)
//	         ↓
//	    [host] package (Read: frame → Box)
//	         ↓
//	    [geo] package (property, anchor, and piece algebra)
//	         ↓
//	    [units] package (unit conversion under display metrics)
//	         ↓
//	    [host] package (Write: Aligned frame back, coalesced)
//
// # Quick Start
//
// Carve a header band out of a window and push it to a host view:
//
//	import (
//	    "github.com/ericcole/ViewBox/pkg/geo"
//	    "github.com/ericcole/ViewBox/pkg/host"
//	)
//
//	// 1. Read the window frame as a center-based box
//	window := host.Read(view)
//
//	// 2. Carve a full-width, 24-unit-tall band along the top edge
//	header := window.Piece(geo.TopCenter, 0, 0, geo.Sz(1, 24))
//
//	// 3. Write the aligned frame back (skipped when already in place)
//	host.Write(headerView, header)
//
// # Main Packages
//
// [geo] - The value library. Box is the core type; properties (Left, Right,
// Top, Bottom, Leading, Trailing, CenterX, CenterY, Width, Height) read and
// write derived scalars, with pinning rules that hold one property fixed
// while another changes. Anchors pair a horizontal and a vertical position
// into the thirteen named reference points. Leading and Trailing resolve
// against a process-wide direction flag at each use, never at storage time.
//
// [units] - Conversion between distance units and the pixel, percent, and
// area units hosts care about, driven by process-wide display metrics
// (device scale and screen size). Profiles load from TOML files.
//
// [host] - The boundary where boxes become frames. Read converts a host
// frame to a Box; Write aligns the box to the unit grid and skips the host
// call when the frame already matches within tolerance. Hooks observe
// writes and direction changes. Stub is an in-memory view for tests.
//
// [host/fynehost] - Wraps fyne.CanvasObject as a host.View and detects
// display metrics from a fyne.Canvas.
//
// [render] - Scenes of labeled boxes rendered as standalone SVG documents
// or rasterized PNGs, with optional grids and anchor markers. Used by the
// viewbox CLI's piece and diagram commands.
//
// # Common Workflows
//
// Pin an edge while resizing:
//
//	b := geo.BoxFromRect(geo.Rct(10, 10, 100, 50))
//	b = b.WithPropertyPinned(geo.Width, 120, geo.Left) // left edge stays at 10
//
// Apply a chain of assignments with implicit pinning:
//
//	b = b.Apply(geo.Assign(geo.Left, 10), geo.Assign(geo.Width, 50))
//
// Convert a box for a 2x display:
//
//	units.SetMetrics(units.Metrics{Scale: 2, Screen: geo.Sz(390, 844)})
//	px := units.ConvertBox(b, units.Distance, units.Pixels)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/geo/...      # Specific package
//	go test -run Example       # Examples only
//
// [geo]: https://pkg.go.dev/github.com/ericcole/ViewBox/pkg/geo
// [units]: https://pkg.go.dev/github.com/ericcole/ViewBox/pkg/units
// [host]: https://pkg.go.dev/github.com/ericcole/ViewBox/pkg/host
// [host/fynehost]: https://pkg.go.dev/github.com/ericcole/ViewBox/pkg/host/fynehost
// [render]: https://pkg.go.dev/github.com/ericcole/ViewBox/pkg/render
package pkg
