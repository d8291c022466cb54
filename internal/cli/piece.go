package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericcole/ViewBox/pkg/geo"
	"github.com/ericcole/ViewBox/pkg/render"
)

// pieceOpts holds flag values for the piece command. Position and extent
// scalars stay strings until parsing so an empty flag can mean NaN.
type pieceOpts struct {
	box    boxFlags
	anchor string
	x      string
	y      string
	width  string
	height string
	render renderOpts
}

// newPieceCmd creates the piece command.
func newPieceCmd() *cobra.Command {
	var opts pieceOpts

	cmd := &cobra.Command{
		Use:   "piece",
		Short: "Carve a sub-box out of a parent box",
		Long: `Piece carves a sub-box out of a parent. The anchor picks the side each
axis measures from; position and extent scalars are interpreted by their
range, per axis and independently.

Extents: empty or non-finite values take the full parent extent, values in
(0, 1] take that fraction of it, values above 1 are absolute, and zero or
negative values inset the parent extent by that much.

Positions: empty or non-finite values rest the piece against the parent
center on the anchor side, values in (0, 1) place the near edge at that
fraction of the parent extent, values in (-1, 0) offset the piece from the
parent center by that share of the slack, and anything else is an absolute
inward offset from the anchor edge.`,
		Example: `  # The leading half of a 100x60 box
  viewbox piece --origin 0,0 --size 100x60 --anchor leading-center --width 0.5

  # A 20x20 badge inset 4 from the top-right corner, drawn to SVG
  viewbox piece --origin 0,0 --size 100x60 --anchor top-right --x 4 --y 4 --width 20 --height 20 -o badge.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPiece(cmd.Context(), opts)
		},
	}

	opts.box.register(cmd)
	cmd.Flags().StringVarP(&opts.anchor, "anchor", "a", "top-leading", "anchor the piece measures from")
	cmd.Flags().StringVar(&opts.x, "x", "", "horizontal position scalar")
	cmd.Flags().StringVar(&opts.y, "y", "", "vertical position scalar")
	cmd.Flags().StringVarP(&opts.width, "width", "W", "", "horizontal extent scalar")
	cmd.Flags().StringVarP(&opts.height, "height", "H", "", "vertical extent scalar")
	cmd.Flags().StringVarP(&opts.render.output, "output", "o", "", "draw parent and piece to this file (SVG or PNG by extension)")
	return cmd
}

// runPiece executes the piece command with the given options.
func runPiece(ctx context.Context, opts pieceOpts) error {
	parent, err := opts.box.parse()
	if err != nil {
		return err
	}
	anchor, err := parseAnchor(opts.anchor)
	if err != nil {
		return err
	}
	x, err := parseScalar(opts.x)
	if err != nil {
		return err
	}
	y, err := parseScalar(opts.y)
	if err != nil {
		return err
	}
	w, err := parseScalar(opts.width)
	if err != nil {
		return err
	}
	h, err := parseScalar(opts.height)
	if err != nil {
		return err
	}

	child := parent.Piece(anchor, x, y, geo.Sz(w, h))
	loggerFromContext(ctx).Debugf("Piece %s of %v is %v", anchor, parent, child)

	fmt.Println(StyleTitle.Render("Piece"))
	printKeyValue("parent", parent.String())
	printKeyValue("anchor", anchor.Concrete().String())
	printKeyValue("child", child.String())
	printKeyValue("frame", child.Rect().String())
	printKeyValue("aligned", child.AlignedRect().String())

	if opts.render.output == "" {
		return nil
	}
	printNewline()

	scene := render.Scene{Bounds: parent}
	scene.Add("parent", parent)
	scene.Add(strings.ToLower(anchor.Concrete().String()), child)
	return writeScene(ctx, scene, opts.render)
}
