package letterbox

import "github.com/hajimehoshi/ebiten/v2"

// DisplaySizer supplies the current physical display/window size. It is
// queried synchronously from Update; implementations must only change
// between Update calls.
type DisplaySizer interface {
	DisplaySize() (w, h float64)
}

// FixedDisplay is a DisplaySizer that always reports the same size.
// Useful in tests and for platforms with an immutable surface.
type FixedDisplay struct {
	W, H float64
}

// DisplaySize returns the fixed size.
func (d FixedDisplay) DisplaySize() (w, h float64) {
	return d.W, d.H
}

// WindowDisplay reports the current ebiten window size, falling back to the
// monitor size when the window size is unavailable (mobile targets report
// a zero window size).
type WindowDisplay struct{}

// DisplaySize returns the ebiten window size in device-independent pixels.
func (WindowDisplay) DisplaySize() (w, h float64) {
	iw, ih := ebiten.WindowSize()
	if iw <= 0 || ih <= 0 {
		iw, ih = ebiten.Monitor().Size()
	}
	return float64(iw), float64(ih)
}

// DisplaySizeFunc adapts a function to the DisplaySizer interface.
type DisplaySizeFunc func() (w, h float64)

// DisplaySize calls f.
func (f DisplaySizeFunc) DisplaySize() (w, h float64) {
	return f()
}
