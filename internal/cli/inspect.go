package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// inspectProperties lists the rows of the property table in display order.
var inspectProperties = []geo.Property{
	geo.Left, geo.Right, geo.Top, geo.Bottom,
	geo.Leading, geo.Trailing,
	geo.CenterX, geo.CenterY,
	geo.Width, geo.Height,
}

// inspectAnchors lists the rows of the anchor table in display order: the
// nine fixed slots reading left to right, top to bottom, then the four
// direction-dependent corners.
var inspectAnchors = []geo.Anchor{
	geo.TopLeft, geo.TopCenter, geo.TopRight,
	geo.LeadingCenter, geo.Center, geo.TrailingCenter,
	geo.BottomLeft, geo.BottomCenter, geo.BottomRight,
	geo.TopLeading, geo.TopTrailing,
	geo.BottomLeading, geo.BottomTrailing,
}

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	var opts boxFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the properties and anchor points of a box",
		Long: `Inspect prints everything there is to read off a box: derived edge and
center properties, all thirteen anchor points under both layout directions,
and the three rounding variants (integral, even, aligned).`,
		Example: `  # A box described by its top-left corner
  viewbox inspect --origin 10,20 --size 30x40

  # The same box described by its center
  viewbox inspect --center 25,40 --size 30x40

  # Under a right-to-left display profile
  viewbox inspect --center 25,40 --size 30x40 --profile tablet.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := opts.parse()
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), box)
		},
	}

	opts.register(cmd)
	return cmd
}

// runInspect prints the full readout for box.
func runInspect(ctx context.Context, box geo.Box) error {
	loggerFromContext(ctx).Debugf("Inspecting %v", box)

	fmt.Println(StyleTitle.Render("Box"))
	printKeyValue("box", box.String())
	printKeyValue("frame", box.Rect().String())
	printKeyValue("integral", box.Integral().Rect().String())
	printKeyValue("even", box.Even().Rect().String())
	printKeyValue("aligned", box.AlignedRect().String())
	if !box.Size.IsPositive() {
		printWarning("box size is not positive; containment and pieces degenerate")
	}
	printNewline()

	fmt.Println(newGeoTable([]string{"Property", "LTR", "RTL"}, propertyRows(box)).Render())
	printNewline()
	fmt.Println(newGeoTable([]string{"Anchor", "LTR", "RTL"}, anchorRows(box)).Render())
	direction := "left-to-right"
	if geo.RightToLeft() {
		direction = "right-to-left"
	}
	printDetail("current direction: %s (leading resolves to %s)", direction, geo.Leading.Concrete())
	printNewline()
	printNextStep("Draw it", fmt.Sprintf("%s diagram --center %g,%g --size %gx%g",
		appName, box.Center.X, box.Center.Y, box.Size.Width, box.Size.Height))
	return nil
}

// propertyRows reads every property under both layout directions. Abstract
// properties resolve before reading; concrete rows agree in both columns.
func propertyRows(box geo.Box) [][]string {
	rows := make([][]string, 0, len(inspectProperties))
	for _, p := range inspectProperties {
		ltr := readUnder(box, p, false)
		rtl := readUnder(box, p, true)
		rows = append(rows, []string{p.String(), formatScalar(ltr), formatScalar(rtl)})
	}
	return rows
}

// anchorRows locates every anchor under both layout directions.
func anchorRows(box geo.Box) [][]string {
	rows := make([][]string, 0, len(inspectAnchors))
	for _, a := range inspectAnchors {
		ltr := pointUnder(box, a, false)
		rtl := pointUnder(box, a, true)
		rows = append(rows, []string{a.String(), ltr.String(), rtl.String()})
	}
	return rows
}

// readUnder reads a property with the direction flag forced to rtl, restoring
// the previous flag before returning.
func readUnder(box geo.Box, p geo.Property, rtl bool) float64 {
	prev := geo.RightToLeft()
	geo.SetRightToLeft(rtl)
	defer geo.SetRightToLeft(prev)
	return box.Property(p.Concrete())
}

// pointUnder locates an anchor with the direction flag forced to rtl,
// restoring the previous flag before returning.
func pointUnder(box geo.Box, a geo.Anchor, rtl bool) geo.Point {
	prev := geo.RightToLeft()
	geo.SetRightToLeft(rtl)
	defer geo.SetRightToLeft(prev)
	return box.PointAt(a)
}

// formatScalar renders a coordinate with the shortest exact decimal form.
func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// newGeoTable builds a bordered two-or-three column table with a styled
// header row.
func newGeoTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return StyleTitle.Padding(0, 1)
			}
			if col == 0 {
				return StyleHighlight.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
}
