package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and shell completion.
const appName = "viewbox"

var nan = math.NaN()

// =============================================================================
// Errors
// =============================================================================

var (
	errInvalidPoint    = errors.New("invalid point")
	errInvalidSize     = errors.New("invalid size")
	errInvalidAnchor   = errors.New("invalid anchor")
	errInvalidProperty = errors.New("invalid property")
	errMissingSize     = errors.New("missing box size")
)

// =============================================================================
// Scalar Parsing
// =============================================================================

// parsePoint parses a point written as "x,y".
func parsePoint(s string) (geo.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Point{}, fmt.Errorf("%w: %q (want \"x,y\")", errInvalidPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: %q", errInvalidPoint, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w: %q", errInvalidPoint, s)
	}
	return geo.Pt(x, y), nil
}

// parseSize parses a size written as "WxH". A comma separator is accepted
// as well, so "--size 30,40" and "--size 30x40" mean the same thing.
func parseSize(s string) (geo.Size, error) {
	sep := "x"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	ws, hs, ok := strings.Cut(s, sep)
	if !ok {
		return geo.Size{}, fmt.Errorf("%w: %q (want \"WxH\")", errInvalidSize, s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	if err != nil {
		return geo.Size{}, fmt.Errorf("%w: %q", errInvalidSize, s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err != nil {
		return geo.Size{}, fmt.Errorf("%w: %q", errInvalidSize, s)
	}
	return geo.Sz(w, h), nil
}

// parseScalar parses a single coordinate or extent. An empty string maps to
// NaN, which positioning and sizing operations treat as unspecified.
// strconv already covers the spellings "NaN", "Inf", "+Inf", and "-Inf".
func parseScalar(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nan, nil
	}
	return strconv.ParseFloat(s, 64)
}

// =============================================================================
// Name Tables
// =============================================================================

// anchorNames maps normalized spellings to anchors. Keys are lowercase with
// separators removed, so "top-left", "TopLeft", and "top_left" all resolve.
var anchorNames = map[string]geo.Anchor{
	"topleft":        geo.TopLeft,
	"topcenter":      geo.TopCenter,
	"topright":       geo.TopRight,
	"bottomleft":     geo.BottomLeft,
	"bottomcenter":   geo.BottomCenter,
	"bottomright":    geo.BottomRight,
	"topleading":     geo.TopLeading,
	"toptrailing":    geo.TopTrailing,
	"bottomleading":  geo.BottomLeading,
	"bottomtrailing": geo.BottomTrailing,
	"leadingcenter":  geo.LeadingCenter,
	"trailingcenter": geo.TrailingCenter,
	"center":         geo.Center,
}

// propertyNames maps normalized spellings to box properties.
var propertyNames = map[string]geo.Property{
	"left":     geo.Left,
	"right":    geo.Right,
	"top":      geo.Top,
	"bottom":   geo.Bottom,
	"leading":  geo.Leading,
	"trailing": geo.Trailing,
	"centerx":  geo.CenterX,
	"centery":  geo.CenterY,
	"width":    geo.Width,
	"height":   geo.Height,
}

var nameNormalizer = strings.NewReplacer("-", "", "_", "", " ", "")

func normalizeName(s string) string {
	return nameNormalizer.Replace(strings.ToLower(s))
}

// parseAnchor resolves an anchor name such as "top-left" or "trailingCenter".
func parseAnchor(s string) (geo.Anchor, error) {
	a, ok := anchorNames[normalizeName(s)]
	if !ok {
		return geo.TopLeft, fmt.Errorf("%w: %q", errInvalidAnchor, s)
	}
	return a, nil
}

// parseProperty resolves a property name such as "left" or "center-x".
func parseProperty(s string) (geo.Property, error) {
	p, ok := propertyNames[normalizeName(s)]
	if !ok {
		return geo.Left, fmt.Errorf("%w: %q", errInvalidProperty, s)
	}
	return p, nil
}

// =============================================================================
// Box Flags
// =============================================================================

// boxFlags holds the flag values commands use to describe a box. Either
// --center or --origin positions the box; --origin wins when both are
// given. With neither, the box sits with its origin at zero.
type boxFlags struct {
	center string
	origin string
	size   string
}

func (f *boxFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.center, "center", "c", "", `box center as "x,y"`)
	cmd.Flags().StringVar(&f.origin, "origin", "", `box origin (top-left corner) as "x,y"`)
	cmd.Flags().StringVarP(&f.size, "size", "s", "", `box size as "WxH"`)
}

func (f *boxFlags) parse() (geo.Box, error) {
	if f.size == "" {
		return geo.Box{}, fmt.Errorf("%w: provide --size", errMissingSize)
	}
	size, err := parseSize(f.size)
	if err != nil {
		return geo.Box{}, err
	}
	if f.origin != "" {
		origin, err := parsePoint(f.origin)
		if err != nil {
			return geo.Box{}, err
		}
		return geo.BoxFromRect(geo.Rect{Origin: origin, Size: size}), nil
	}
	if f.center != "" {
		center, err := parsePoint(f.center)
		if err != nil {
			return geo.Box{}, err
		}
		return geo.NewBox(center, size), nil
	}
	return geo.BoxOfSize(size), nil
}

// =============================================================================
// Output Helpers
// =============================================================================

// openOutput opens the output destination. An empty path means stdout,
// which is returned behind a no-op closer.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
