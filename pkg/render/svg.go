package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	viewport geo.Size
	padding  float64
	grid     float64
	anchors  bool
}

// WithViewport fixes the width and height attributes of the document. By
// default the viewport matches the padded scene bounds one unit per pixel.
func WithViewport(size geo.Size) SVGOption {
	return func(r *svgRenderer) { r.viewport = size }
}

// WithPadding sets the margin drawn around the scene bounds (default 8).
func WithPadding(p float64) SVGOption {
	return func(r *svgRenderer) { r.padding = p }
}

// WithGrid draws grid lines every step units across the bounds.
func WithGrid(step float64) SVGOption {
	return func(r *svgRenderer) { r.grid = step }
}

// WithAnchors marks the nine reference points of every box.
func WithAnchors() SVGOption {
	return func(r *svgRenderer) { r.anchors = true }
}

// SVG renders the scene as a standalone SVG document.
func SVG(s Scene, opts ...SVGOption) []byte {
	r := svgRenderer{padding: 8}
	for _, opt := range opts {
		opt(&r)
	}

	frame := s.EffectiveBounds().Rect()
	minX := frame.Origin.X - r.padding
	minY := frame.Origin.Y - r.padding
	w := frame.Size.Width + 2*r.padding
	h := frame.Size.Height + 2*r.padding

	viewW, viewH := w, h
	if r.viewport.IsPositive() {
		viewW, viewH = r.viewport.Width, r.viewport.Height
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, w, h, viewW, viewH)

	if r.grid > 0 {
		renderGrid(&buf, minX, minY, w, h, r.grid)
	}

	for i, lb := range s.Boxes {
		renderSVGBox(&buf, lb, i, r.anchors)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, minX, minY, w, h, step float64) {
	buf.WriteString("  <g stroke=\"#e4e4e4\" stroke-width=\"0.5\">\n")
	for x := math.Ceil(minX/step) * step; x <= minX+w; x += step {
		fmt.Fprintf(buf, "    <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\"/>\n", x, minY, x, minY+h)
	}
	for y := math.Ceil(minY/step) * step; y <= minY+h; y += step {
		fmt.Fprintf(buf, "    <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\"/>\n", minX, y, minX+w, y)
	}
	buf.WriteString("  </g>\n")
}

func renderSVGBox(buf *bytes.Buffer, lb Labeled, i int, anchors bool) {
	frame := lb.Box.Rect()
	c := boxColor(i)
	ink := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)

	fmt.Fprintf(buf, "  <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" fill-opacity=\"0.18\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		frame.Origin.X, frame.Origin.Y, frame.Size.Width, frame.Size.Height, ink, ink)

	if lb.Label != "" {
		fmt.Fprintf(buf, "  <text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"10\" text-anchor=\"middle\" dominant-baseline=\"central\" fill=\"#222\">%s</text>\n",
			lb.Box.Center.X, lb.Box.Center.Y, textEscaper.Replace(lb.Label))
	}

	if anchors {
		for _, a := range markerAnchors {
			p := lb.Box.PointAt(a)
			fmt.Fprintf(buf, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"1.5\" fill=\"%s\"/>\n", p.X, p.Y, ink)
		}
	}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
