package units

import (
	"sync"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// Metrics describes the display a conversion runs against: the device pixel
// scale and the screen (or reference window) size in Distance units.
type Metrics struct {
	Scale  float64
	Screen geo.Size
}

// DefaultMetrics returns the metrics assumed before host code reports real
// ones: scale 1 on a 320 x 480 reference screen. Under these, Distance,
// Pixels, and Area coincide and only Percent differs.
func DefaultMetrics() Metrics {
	return Metrics{Scale: 1, Screen: geo.Sz(320, 480)}
}

// factor is the number of u units per Distance unit under m.
func (m Metrics) factor(u Unit) float64 {
	switch u {
	case Pixels:
		return m.Scale
	case Percent:
		return m.Screen.Width / 100
	case Area:
		return m.Screen.Height / 480
	default:
		return 1
	}
}

// Factor returns the multiplier that converts a value in from units to to
// units under m. Degenerate metrics (zero scale or screen) yield a
// non-finite factor rather than an error.
func (m Metrics) Factor(from, to Unit) float64 {
	return m.factor(to) / m.factor(from)
}

// Convert rescales a scalar from one unit to another under m.
func (m Metrics) Convert(v float64, from, to Unit) float64 {
	return v * m.Factor(from, to)
}

// ConvertBox rescales both center and size of b from one unit to another
// under m. When to is [Distance] the result is snapped with
// [geo.Box.Aligned], since a Distance box is about to meet the pixel grid.
func (m Metrics) ConvertBox(b geo.Box, from, to Unit) geo.Box {
	f := m.Factor(from, to)
	out := geo.Box{Center: b.Center.Mul(f), Size: b.Size.Mul(f)}
	if to == Distance {
		out = out.Aligned()
	}
	return out
}

var (
	current   = DefaultMetrics()
	metricsMu sync.RWMutex
)

// SetMetrics replaces the process-wide display metrics. Host code calls
// this on display change, scale change, or window move across screens.
// Conversions never cache metrics, so values computed before an update read
// correctly after it.
func SetMetrics(m Metrics) {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	current = m
}

// CurrentMetrics returns the process-wide display metrics.
func CurrentMetrics() Metrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return current
}

// Factor returns the conversion multiplier under the current process
// metrics.
func Factor(from, to Unit) float64 {
	return CurrentMetrics().Factor(from, to)
}

// Convert rescales a scalar under the current process metrics.
func Convert(v float64, from, to Unit) float64 {
	return CurrentMetrics().Convert(v, from, to)
}

// ConvertBox rescales a box under the current process metrics.
func ConvertBox(b geo.Box, from, to Unit) geo.Box {
	return CurrentMetrics().ConvertBox(b, from, to)
}
