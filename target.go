package stage

import "github.com/hajimehoshi/ebiten/v2"

// Target is the rendering backend boundary. Render swaps the target's active
// view to the world's active camera, draws every renderable against it, and
// restores the previous view.
type Target interface {
	// View returns the active view. A nil view is the identity transform.
	View() *Camera
	// SetView installs v as the active view and returns the previous one.
	SetView(v *Camera) *Camera
	// DrawImage draws img with op, with the active view's matrix applied
	// after op.GeoM.
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
}

// ScreenTarget adapts an *ebiten.Image (typically the screen passed to
// ebiten.Game.Draw) to Target.
type ScreenTarget struct {
	image *ebiten.Image
	view  *Camera
}

// NewScreenTarget wraps img as a render target with the identity view.
func NewScreenTarget(img *ebiten.Image) *ScreenTarget {
	return &ScreenTarget{image: img}
}

// Image returns the wrapped image.
func (t *ScreenTarget) Image() *ebiten.Image {
	return t.image
}

// Reset rebinds the target to a new image, keeping the current view.
func (t *ScreenTarget) Reset(img *ebiten.Image) {
	t.image = img
}

// View returns the active view.
func (t *ScreenTarget) View() *Camera {
	return t.view
}

// SetView installs v and returns the previous view.
func (t *ScreenTarget) SetView(v *Camera) *Camera {
	prev := t.view
	t.view = v
	return prev
}

// DrawImage draws img through the active view.
func (t *ScreenTarget) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}
	if t.view != nil {
		op.GeoM.Concat(geoM(t.view.ViewMatrix()))
	}
	t.image.DrawImage(img, op)
}
