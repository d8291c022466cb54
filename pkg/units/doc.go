// Package units converts geometry between display unit systems.
//
// # Overview
//
// Four [Unit] systems are supported: Distance (the absolute layout unit
// everything else is defined against), Pixels (device pixels), Percent
// (percent of screen width), and Area (screen-height-relative, normalized
// to a 480-unit reference screen). Each unit has a scale factor against
// Distance derived from the current display [Metrics]:
//
//	Distance  1
//	Pixels    Metrics.Scale
//	Percent   Metrics.Screen.Width / 100
//	Area      Metrics.Screen.Height / 480
//
// Converting a value from one unit to another multiplies by the ratio of
// those factors. [Metrics.ConvertBox] scales both center and size of a
// [geo.Box]; when the target unit is [Distance] the result is snapped with
// [geo.Box.Aligned] so the box lands on the pixel grid it will be written
// back to.
//
// # Process metrics
//
// The package keeps one process-wide Metrics value ([SetMetrics],
// [CurrentMetrics]) that host code updates on display or scale change. The
// package-level [Factor], [Convert], and [ConvertBox] read it live on every
// call. The methods on [Metrics] are pure and never touch process state, so
// computations can also run against an explicit snapshot.
package units
