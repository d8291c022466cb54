package fynehost

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/ericcole/ViewBox/pkg/geo"
	"github.com/ericcole/ViewBox/pkg/host"
)

func TestViewFrameRoundTrip(t *testing.T) {
	rect := canvas.NewRectangle(color.White)
	v := Wrap(rect)

	v.SetFrame(geo.Rct(10, 20, 30, 40))
	if got, want := v.Frame(), geo.Rct(10, 20, 30, 40); !got.Near(want, 0) {
		t.Errorf("Frame = %v, want %v", got, want)
	}

	b := host.Read(v)
	if want := geo.NewBox(geo.Pt(25, 40), geo.Sz(30, 40)); !b.Equal(want) {
		t.Errorf("Read = %v, want %v", b, want)
	}
}

func TestWriteCoalescesThroughFyne(t *testing.T) {
	rect := canvas.NewRectangle(color.White)
	v := Wrap(rect)

	b := geo.BoxFromRect(geo.Rct(5, 5, 11, 11))
	if !host.Write(v, b) {
		t.Fatal("Write = false on first write, want true")
	}
	if host.Write(v, b) {
		t.Error("Write = true for an unchanged frame, want false")
	}
	if got, want := v.Frame(), geo.Rct(5, 5, 11, 11); !got.Near(want, 0) {
		t.Errorf("Frame = %v, want %v", got, want)
	}
}

func TestViewMinSize(t *testing.T) {
	rect := canvas.NewRectangle(color.White)
	rect.SetMinSize(fyne.NewSize(24, 16))
	v := Wrap(rect)

	if got := v.MinSize(); got != geo.Sz(24, 16) {
		t.Errorf("MinSize = %v, want %v", got, geo.Sz(24, 16))
	}
	if got := v.SizeThatFits(geo.Sz(100, 100)); got != geo.Sz(24, 16) {
		t.Errorf("SizeThatFits = %v, want %v", got, geo.Sz(24, 16))
	}
}

func TestDetectMetrics(t *testing.T) {
	test.NewApp()
	c := test.NewCanvas()
	c.Resize(fyne.NewSize(390, 844))

	m := DetectMetrics(c)
	if m.Scale <= 0 {
		t.Errorf("Scale = %g, want positive", m.Scale)
	}
	if m.Screen != geo.Sz(390, 844) {
		t.Errorf("Screen = %v, want %v", m.Screen, geo.Sz(390, 844))
	}
}
