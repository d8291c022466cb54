package geo

import "sync"

// Tolerance is the default slack for near-equality comparisons, chosen as a
// power of two so it composes exactly with binary floating point. It is
// roughly the sub-pixel error produced by a couple of rounding conversions.
const Tolerance = 1.0 / 256

var (
	rightToLeft bool
	directionMu sync.RWMutex
)

// SetRightToLeft switches the process-wide layout direction. Host code calls
// this when the effective locale or user override changes, typically once at
// startup and again on live locale switches.
//
// The flag feeds [Property.Concrete] and everything layered on it. Resolved
// edges are never cached, so boxes created before a switch read correctly
// after it.
func SetRightToLeft(rtl bool) {
	directionMu.Lock()
	defer directionMu.Unlock()
	rightToLeft = rtl
}

// RightToLeft reports the current process-wide layout direction.
func RightToLeft() bool {
	directionMu.RLock()
	defer directionMu.RUnlock()
	return rightToLeft
}
