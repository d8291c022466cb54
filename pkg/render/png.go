package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale   float64
	padding float64
	grid    float64
	anchors bool
}

// WithScale sets pixels per distance unit (default 2 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGPadding sets the margin around the scene bounds (default 8).
func WithPNGPadding(p float64) PNGOption {
	return func(r *pngRenderer) { r.padding = p }
}

// WithPNGGrid draws grid lines every step units across the bounds.
func WithPNGGrid(step float64) PNGOption {
	return func(r *pngRenderer) { r.grid = step }
}

// WithPNGAnchors marks the nine reference points of every box.
func WithPNGAnchors() PNGOption {
	return func(r *pngRenderer) { r.anchors = true }
}

// PNG renders the scene as a raster image.
func PNG(s Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2, padding: 8}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 2
	}

	frame := s.EffectiveBounds().Rect()
	minX := frame.Origin.X - r.padding
	minY := frame.Origin.Y - r.padding
	w := frame.Size.Width + 2*r.padding
	h := frame.Size.Height + 2*r.padding

	img := image.NewRGBA(image.Rect(0, 0, pxCeil(w*r.scale), pxCeil(h*r.scale)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	toPx := func(p geo.Point) image.Point {
		return image.Point{
			X: int(math.Round((p.X - minX) * r.scale)),
			Y: int(math.Round((p.Y - minY) * r.scale)),
		}
	}

	if r.grid > 0 {
		rasterGrid(img, minX, minY, w, h, r.grid, r.scale)
	}

	for i, lb := range s.Boxes {
		rasterBox(img, lb, i, toPx, r.anchors)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pxCeil(v float64) int {
	n := int(math.Ceil(v))
	if n < 1 {
		n = 1
	}
	return n
}

func rasterGrid(img *image.RGBA, minX, minY, w, h, step, scale float64) {
	src := image.NewUniform(color.NRGBA{R: 0xe4, G: 0xe4, B: 0xe4, A: 0xff})
	b := img.Bounds()
	for x := math.Ceil(minX/step) * step; x <= minX+w; x += step {
		px := int(math.Round((x - minX) * scale))
		draw.Draw(img, image.Rect(px, b.Min.Y, px+1, b.Max.Y), src, image.Point{}, draw.Src)
	}
	for y := math.Ceil(minY/step) * step; y <= minY+h; y += step {
		py := int(math.Round((y - minY) * scale))
		draw.Draw(img, image.Rect(b.Min.X, py, b.Max.X, py+1), src, image.Point{}, draw.Src)
	}
}

func rasterBox(img *image.RGBA, lb Labeled, i int, toPx func(geo.Point) image.Point, anchors bool) {
	frame := lb.Box.Rect()
	min := toPx(frame.Origin)
	max := toPx(geo.Pt(lb.Box.Property(geo.Right), lb.Box.Property(geo.Bottom)))
	rect := image.Rect(min.X, min.Y, max.X, max.Y)

	c := boxColor(i)
	fill := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x2e})
	draw.Draw(img, rect, fill, image.Point{}, draw.Over)
	strokeRect(img, rect, image.NewUniform(c))

	if lb.Label != "" {
		drawLabel(img, lb.Label, toPx(lb.Box.Center), color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})
	}

	if anchors {
		dot := image.NewUniform(c)
		for _, a := range markerAnchors {
			p := toPx(lb.Box.PointAt(a))
			draw.Draw(img, image.Rect(p.X-1, p.Y-1, p.X+2, p.Y+2), dot, image.Point{}, draw.Src)
		}
	}
}

func strokeRect(img *image.RGBA, r image.Rectangle, src *image.Uniform) {
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
}

func drawLabel(img *image.RGBA, text string, at image.Point, ink color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(text)
	d.Dot = fixed.Point26_6{X: fixed.I(at.X) - w/2, Y: fixed.I(at.Y + 4)}
	d.DrawString(text)
}
