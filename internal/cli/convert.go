package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ericcole/ViewBox/pkg/units"
)

var errMissingValue = errors.New("nothing to convert")

// convertOpts holds flag values for the convert command.
type convertOpts struct {
	box  boxFlags
	from string
	to   string
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Convert scalars or boxes between display units",
		Long: `Convert changes measurements between distance, pixels, percent, and area
units under the active display profile. Give a bare value to convert a
scalar, or --center/--size to convert a whole box. Boxes converted to
distance units snap to the alignment grid.`,
		Example: `  # 10 distance units in pixels under a 2x profile
  viewbox convert 10 --from distance --to pixels --profile tablet.toml

  # A whole box from pixels back to distance units
  viewbox convert --center 42,42 --size 42x42 --from pixels --to distance`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) == 1 {
				value = args[0]
			}
			return runConvert(cmd.Context(), value, opts)
		},
	}

	opts.box.register(cmd)
	cmd.Flags().StringVarP(&opts.from, "from", "f", "distance", "source unit (distance, pixels, percent, area)")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "pixels", "target unit (distance, pixels, percent, area)")
	return cmd
}

// runConvert executes the convert command with the given options.
func runConvert(ctx context.Context, value string, opts convertOpts) error {
	from, err := units.ParseUnit(opts.from)
	if err != nil {
		return err
	}
	to, err := units.ParseUnit(opts.to)
	if err != nil {
		return err
	}

	metrics := units.CurrentMetrics()
	loggerFromContext(ctx).Debugf("Converting %s to %s (factor %g)", from, to, metrics.Factor(from, to))

	if value != "" {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", value, err)
		}
		out := metrics.Convert(v, from, to)
		printKeyValue("result", fmt.Sprintf("%s %s = %s %s", formatScalar(v), from, formatScalar(out), to))
		printDetail("scale %g, screen %v", metrics.Scale, metrics.Screen)
		return nil
	}

	if opts.box.size == "" {
		return fmt.Errorf("%w: give a value or --size", errMissingValue)
	}
	box, err := opts.box.parse()
	if err != nil {
		return err
	}
	out := metrics.ConvertBox(box, from, to)

	fmt.Println(StyleTitle.Render("Convert"))
	printKeyValue("from", fmt.Sprintf("%v (%s)", box, from))
	printKeyValue("to", fmt.Sprintf("%v (%s)", out, to))
	printKeyValue("frame", out.Rect().String())
	if to == units.Distance {
		printDetail("distance boxes snap to the alignment grid")
	}
	printDetail("scale %g, screen %v", metrics.Scale, metrics.Screen)
	return nil
}
