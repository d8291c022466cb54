package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ericcole/ViewBox/pkg/host"
	"github.com/ericcole/ViewBox/pkg/units"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2026-08-20T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the viewbox CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (inspect, piece,
// convert, diagram, playground), configures logging based on the --verbose
// flag, and executes the command tree under ctx.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
//
// Process state:
//   - --profile loads a TOML display profile and installs its metrics and
//     layout direction before the command runs.
//   - --rtl overrides the layout direction regardless of the profile.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2026-08-20")
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	var (
		verbose bool
		profile string
		rtl     bool
	)

	root := &cobra.Command{
		Use:          "viewbox",
		Short:        "ViewBox is a calculator for center-based box layout",
		Long:         `ViewBox inspects and manipulates boxes stored as center plus size: read and pin properties, place anchors, carve out pieces, convert between display units, and draw quick SVG or PNG diagrams of the results.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)

			if profile != "" {
				p, err := units.LoadProfile(profile)
				if err != nil {
					return err
				}
				units.SetMetrics(p.Metrics)
				host.SetDirection(p.RightToLeft)
				loggerFromContext(ctx).Debugf("Loaded profile %q (scale %g, screen %gx%g)",
					p.Name, p.Metrics.Scale, p.Metrics.Screen.Width, p.Metrics.Screen.Height)
			}
			if cmd.Flags().Changed("rtl") {
				host.SetDirection(rtl)
			}
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("viewbox %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&profile, "profile", "", "path to a TOML display profile (scale, screen, direction)")
	root.PersistentFlags().BoolVar(&rtl, "rtl", false, "treat the layout direction as right-to-left")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newPieceCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newDiagramCmd())
	root.AddCommand(newPlaygroundCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
