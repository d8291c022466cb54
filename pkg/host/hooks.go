package host

import (
	"sync"

	"github.com/ericcole/ViewBox/pkg/geo"
)

// FrameHooks receives events from the host boundary. Implementations must
// be safe for concurrent use; callbacks run synchronously inside the
// triggering call.
type FrameHooks interface {
	// OnWrite records a frame write attempt. applied is false when the
	// write was coalesced away.
	OnWrite(frame geo.Rect, applied bool)

	// OnDirectionChange records a layout direction switch.
	OnDirectionChange(rtl bool)
}

// NoopFrameHooks is a no-op implementation of FrameHooks.
type NoopFrameHooks struct{}

func (NoopFrameHooks) OnWrite(geo.Rect, bool) {}
func (NoopFrameHooks) OnDirectionChange(bool) {}

var (
	frameHooks FrameHooks = NoopFrameHooks{}
	hooksMu    sync.RWMutex
)

// SetFrameHooks registers custom frame hooks. This should be called once
// at application startup before layout work begins; nil is ignored.
func SetFrameHooks(h FrameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		frameHooks = h
	}
}

// Frames returns the registered frame hooks.
func Frames() FrameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return frameHooks
}

// ResetHooks restores the no-op default. This is primarily useful for
// testing.
func ResetHooks() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	frameHooks = NoopFrameHooks{}
}
