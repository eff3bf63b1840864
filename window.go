package stage

import "github.com/hajimehoshi/ebiten/v2"

// Window is the application window as seen by actors and components: its
// logical size and the cursor position in screen coordinates.
type Window interface {
	Size() (width, height int)
	CursorPosition() Vec2
}

// EbitenWindow reads window state from ebiten. Width and Height, when set,
// are the logical screen size reported by Size; otherwise the OS window size
// is reported.
type EbitenWindow struct {
	Width, Height int
}

// Size returns the logical screen size.
func (w EbitenWindow) Size() (int, int) {
	if w.Width > 0 && w.Height > 0 {
		return w.Width, w.Height
	}
	return ebiten.WindowSize()
}

// CursorPosition returns the cursor position in screen coordinates.
func (w EbitenWindow) CursorPosition() Vec2 {
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}
}
