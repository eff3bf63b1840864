package stage

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a Renderable that draws an image at its owner's root transform.
// Offset shifts the image in the owner's local space before the transform
// is applied (e.g. {-w/2, -h} anchors the image at its bottom center), and
// ZBias is added to the owner's depth.
type Sprite struct {
	Owner  *RootComponent
	Image  *ebiten.Image
	Offset Vec2
	ZBias  float64
	// Hidden sprites stay registered but draw nothing.
	Hidden bool
}

// NewSprite creates a sprite for owner drawing img.
func NewSprite(owner *RootComponent, img *ebiten.Image) *Sprite {
	return &Sprite{Owner: owner, Image: img}
}

// Render draws the sprite through the target's active view.
func (s *Sprite) Render(t Target) {
	if s.Hidden || s.Image == nil {
		return
	}
	m := multiplyAffine(s.Owner.Transform(), [6]float64{1, 0, 0, 1, s.Offset.X, s.Offset.Y})
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(m)
	t.DrawImage(s.Image, op)
}

// FinalZ returns the owner's depth plus ZBias.
func (s *Sprite) FinalZ() float64 {
	return s.Owner.FinalZ() + s.ZBias
}

// FinalPosition returns the owner's position.
func (s *Sprite) FinalPosition() Vec2 {
	return s.Owner.FinalPosition()
}
