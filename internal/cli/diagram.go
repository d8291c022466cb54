package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericcole/ViewBox/pkg/geo"
	"github.com/ericcole/ViewBox/pkg/render"
)

// =============================================================================
// Constants & Errors
// =============================================================================

const (
	formatSVG = "svg"
	formatPNG = "png"
)

var (
	errInvalidPiece  = errors.New("invalid piece spec")
	errInvalidFormat = errors.New("invalid format")
	errMissingOutput = errors.New("missing output path")
)

// =============================================================================
// Diagram Command
// =============================================================================

// diagramOpts holds flag values for the diagram command.
type diagramOpts struct {
	box    boxFlags
	pieces []string
	render renderOpts
}

// newDiagramCmd creates the diagram command.
func newDiagramCmd() *cobra.Command {
	var opts diagramOpts

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Render a box and its pieces as SVG or PNG",
		Long: `Diagram draws a parent box together with any number of pieces carved out
of it. Each --piece flag is written as "[label=]anchor:x:y:WxH" with the
same range-interpreted scalars the piece command uses; empty fields mean
unspecified. Without --output the SVG is written to stdout.`,
		Example: `  # A parent with a header band and a trailing sidebar
  viewbox diagram --origin 0,0 --size 200x120 \
    --piece "header=top-center::0:1x24" \
    --piece "sidebar=trailing-center:8::0.25x-16" \
    --anchors -o scene.svg

  # The same scene rasterized at 4 pixels per unit
  viewbox diagram --origin 0,0 --size 200x120 --piece "header=top-center::0:1x24" \
    -o scene.png --png-scale 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagram(cmd.Context(), opts)
		},
	}

	opts.box.register(cmd)
	cmd.Flags().StringArrayVarP(&opts.pieces, "piece", "p", nil, `piece spec "[label=]anchor:x:y:WxH" (repeatable)`)
	opts.render.register(cmd)
	return cmd
}

// runDiagram executes the diagram command with the given options.
func runDiagram(ctx context.Context, opts diagramOpts) error {
	parent, err := opts.box.parse()
	if err != nil {
		return err
	}

	scene := render.Scene{Bounds: parent}
	scene.Add("box", parent)
	for _, raw := range opts.pieces {
		spec, err := parsePieceSpec(raw)
		if err != nil {
			return err
		}
		scene.Add(spec.label, parent.Piece(spec.anchor, spec.x, spec.y, spec.size))
	}
	return writeScene(ctx, scene, opts.render)
}

// =============================================================================
// Piece Specs
// =============================================================================

// pieceSpec is one parsed --piece flag.
type pieceSpec struct {
	label  string
	anchor geo.Anchor
	x, y   float64
	size   geo.Size
}

// parsePieceSpec parses a piece flag written as "[label=]anchor:x:y:WxH".
// Empty scalar fields mean NaN, so "badge=topright:4:4:20x20" and
// "topleading:::0.5" are both valid. A single extent applies to both axes.
// Without a label the piece is named after its anchor.
func parsePieceSpec(s string) (pieceSpec, error) {
	var spec pieceSpec
	rest := s
	if label, tail, ok := strings.Cut(s, "="); ok {
		spec.label = strings.TrimSpace(label)
		rest = tail
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 4 {
		return spec, fmt.Errorf("%w: %q (want \"[label=]anchor:x:y:WxH\")", errInvalidPiece, s)
	}
	anchor, err := parseAnchor(parts[0])
	if err != nil {
		return spec, fmt.Errorf("%w: %q: %v", errInvalidPiece, s, err)
	}
	spec.anchor = anchor
	if spec.x, err = parseScalar(parts[1]); err != nil {
		return spec, fmt.Errorf("%w: %q: %v", errInvalidPiece, s, err)
	}
	if spec.y, err = parseScalar(parts[2]); err != nil {
		return spec, fmt.Errorf("%w: %q: %v", errInvalidPiece, s, err)
	}
	if spec.size, err = parseSpanSize(parts[3]); err != nil {
		return spec, fmt.Errorf("%w: %q: %v", errInvalidPiece, s, err)
	}
	if spec.label == "" {
		spec.label = strings.ToLower(spec.anchor.String())
	}
	return spec, nil
}

// parseSpanSize parses "WxH" where either extent may be empty, meaning the
// full parent extent. A bare scalar applies to both extents.
func parseSpanSize(s string) (geo.Size, error) {
	if strings.TrimSpace(s) == "" {
		return geo.Sz(nan, nan), nil
	}
	sep := "x"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	ws, hs, ok := strings.Cut(s, sep)
	if !ok {
		v, err := parseScalar(s)
		if err != nil {
			return geo.Size{}, fmt.Errorf("%w: %q", errInvalidSize, s)
		}
		return geo.Sz(v, v), nil
	}
	w, err := parseScalar(ws)
	if err != nil {
		return geo.Size{}, fmt.Errorf("%w: %q", errInvalidSize, s)
	}
	h, err := parseScalar(hs)
	if err != nil {
		return geo.Size{}, fmt.Errorf("%w: %q", errInvalidSize, s)
	}
	return geo.Sz(w, h), nil
}

// =============================================================================
// Scene Output
// =============================================================================

// renderOpts carries flags shared by commands that draw scenes.
type renderOpts struct {
	output  string
	format  string
	grid    float64
	anchors bool
	scale   float64
}

func (o *renderOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (stdout SVG when omitted)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: svg or png (default by extension)")
	cmd.Flags().Float64Var(&o.grid, "grid", 0, "draw grid lines every N units")
	cmd.Flags().BoolVar(&o.anchors, "anchors", false, "mark anchor points on every box")
	cmd.Flags().Float64Var(&o.scale, "png-scale", 0, "PNG pixels per unit (default 2)")
}

// sceneFormat resolves the output format: an explicit --format wins,
// otherwise the output extension decides, defaulting to SVG.
func sceneFormat(path, format string) (string, error) {
	if format != "" {
		switch format {
		case formatSVG, formatPNG:
			return format, nil
		}
		return "", fmt.Errorf("%w: %q (want svg or png)", errInvalidFormat, format)
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return formatPNG, nil
	}
	return formatSVG, nil
}

// writeScene renders scene to opts.output in the resolved format. An empty
// output path streams SVG to stdout; PNG always needs a file.
func writeScene(ctx context.Context, scene render.Scene, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	format, err := sceneFormat(opts.output, opts.format)
	if err != nil {
		return err
	}
	if opts.output == "" && format == formatPNG {
		return fmt.Errorf("%w: PNG output needs --output", errMissingOutput)
	}
	logger.Debugf("Rendering %d boxes as %s", len(scene.Boxes), format)

	tracker := newProgress(logger)
	var data []byte
	if format == formatPNG {
		if data, err = render.PNG(scene, pngOptions(opts)...); err != nil {
			return err
		}
	} else {
		data = render.SVG(scene, svgOptions(opts)...)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.output != "" {
		tracker.done(fmt.Sprintf("Rendered %s", format))
		printSuccess("Scene rendered (%d boxes)", len(scene.Boxes))
		printFile(opts.output)
	}
	return nil
}

// svgOptions translates shared render flags into SVG options.
func svgOptions(opts renderOpts) []render.SVGOption {
	var so []render.SVGOption
	if opts.grid > 0 {
		so = append(so, render.WithGrid(opts.grid))
	}
	if opts.anchors {
		so = append(so, render.WithAnchors())
	}
	return so
}

// pngOptions translates shared render flags into PNG options.
func pngOptions(opts renderOpts) []render.PNGOption {
	var po []render.PNGOption
	if opts.grid > 0 {
		po = append(po, render.WithPNGGrid(opts.grid))
	}
	if opts.anchors {
		po = append(po, render.WithPNGAnchors())
	}
	if opts.scale > 0 {
		po = append(po, render.WithScale(opts.scale))
	}
	return po
}
