// Package cli implements the viewbox command-line interface.
//
// This package provides commands for inspecting center-based box geometry,
// extracting pieces, converting between display units, and drawing quick
// diagrams of the results. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inspect: Print the properties and anchor points of a box
//   - piece: Extract a sub-box and print or draw it
//   - convert: Convert scalars or boxes between display units
//   - diagram: Render a scene of labeled boxes as SVG or PNG
//   - playground: Interactive TUI for poking at a box
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Every command also honors --profile (a
// TOML display profile) and --rtl, which seed the process-wide metrics and
// layout direction before the command runs.
//
// # Example
//
//	import "github.com/ericcole/ViewBox/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds a charm logger writing to w at the given level.
// Timestamps render as wall-clock time with centisecond precision
// ("15:04:05.00").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures the wall time of a command run. Create one when work
// starts and call done once at the end; not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock for a progress report.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the unexported key type for values this package stores in a
// context.
type ctxKey int

// loggerKey carries the active command logger.
const loggerKey ctxKey = 0

// withLogger attaches l to ctx for retrieval by subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default()
// when none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
