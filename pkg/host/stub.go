package host

import "github.com/ericcole/ViewBox/pkg/geo"

var _ View = (*Stub)(nil)

// Stub is an in-memory View for tests and examples. The zero value is a
// frameless view with no intrinsic size.
type Stub struct {
	// Rect is the current frame, readable directly after writes.
	Rect geo.Rect
	// Intrinsic is reported by MinSize and is the SizeThatFits fallback.
	Intrinsic geo.Size
	// FitFunc, when set, answers SizeThatFits.
	FitFunc func(limit geo.Size) geo.Size
	// SetCount counts SetFrame calls, exposing write coalescing.
	SetCount int
}

func (s *Stub) Frame() geo.Rect { return s.Rect }

func (s *Stub) SetFrame(r geo.Rect) {
	s.Rect = r
	s.SetCount++
}

func (s *Stub) MinSize() geo.Size { return s.Intrinsic }

func (s *Stub) SizeThatFits(limit geo.Size) geo.Size {
	if s.FitFunc != nil {
		return s.FitFunc(limit)
	}
	return s.Intrinsic
}
