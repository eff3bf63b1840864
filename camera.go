package stage

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Positioner is anything with a world-space position a camera can follow.
// Every Renderable and every RootComponent satisfies it.
type Positioner interface {
	FinalPosition() Vec2
}

// follow is a camera's tracking state.
type follow struct {
	target Positioner
	offset Vec2
	lerp   float64
}

// scroll is an in-flight ScrollTo. Both axes share one duration.
type scroll struct {
	x, y *gween.Tween
}

// Camera is a view into the world. Render draws through the active camera:
// the point (X, Y) lands at the center of Viewport, scaled by Zoom and
// rotated by Rotation.
type Camera struct {
	Name string
	// X and Y are the world-space point at the viewport center.
	X, Y float64
	// Zoom > 1 magnifies.
	Zoom float64
	// Rotation in radians, clockwise.
	Rotation float64
	// Viewport is the screen-space rectangle the camera maps onto.
	Viewport Rect

	// BoundsEnabled keeps the visible area inside Bounds after every Tick.
	BoundsEnabled bool
	Bounds        Rect

	follow *follow
	scroll *scroll

	view, inv [6]float64
	dirty     bool
}

// NewCamera creates an unzoomed camera at the world origin.
func NewCamera(name string, viewport Rect) *Camera {
	return &Camera{Name: name, Zoom: 1, Viewport: viewport, dirty: true}
}

// SetPosition centers the camera on (x, y).
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	c.dirty = true
}

// Follow tracks target, offset by (offsetX, offsetY). Each Tick moves the
// camera by lerp of the remaining distance; 1 snaps.
func (c *Camera) Follow(target Positioner, offsetX, offsetY, lerp float64) {
	c.follow = &follow{target: target, offset: Vec2{offsetX, offsetY}, lerp: lerp}
}

// Unfollow stops tracking.
func (c *Camera) Unfollow() {
	c.follow = nil
}

// ScrollTo animates the camera center to (x, y) over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, fn ease.TweenFunc) {
	c.scroll = &scroll{
		x: gween.New(float32(c.X), float32(x), duration, fn),
		y: gween.New(float32(c.Y), float32(y), duration, fn),
	}
}

// Scrolling reports whether a ScrollTo is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// SetBounds enables clamping to bounds.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Tick advances follow, scroll, and bounds clamping.
func (c *Camera) Tick(dt time.Duration) {
	c.update(float32(dt.Seconds()))
}

func (c *Camera) update(dt float32) {
	before := [4]float64{c.X, c.Y, c.Zoom, c.Rotation}

	if f := c.follow; f != nil {
		goal := f.target.FinalPosition().Add(f.offset)
		c.X += (goal.X - c.X) * f.lerp
		c.Y += (goal.Y - c.Y) * f.lerp
	}

	if s := c.scroll; s != nil {
		x, doneX := s.x.Update(dt)
		y, doneY := s.y.Update(dt)
		c.X, c.Y = float64(x), float64(y)
		if doneX && doneY {
			c.scroll = nil
		}
	}

	if c.BoundsEnabled {
		c.X = clampAxis(c.X, c.Bounds.X, c.Bounds.Width, c.Viewport.Width/(2*c.Zoom))
		c.Y = clampAxis(c.Y, c.Bounds.Y, c.Bounds.Height, c.Viewport.Height/(2*c.Zoom))
	}

	if before != [4]float64{c.X, c.Y, c.Zoom, c.Rotation} {
		c.dirty = true
	}
}

// clampAxis keeps a center coordinate v within [lo+half, lo+size-half]. When
// the span is narrower than the view it centers on the span instead.
func clampAxis(v, lo, size, half float64) float64 {
	minV, maxV := lo+half, lo+size-half
	if minV > maxV {
		return lo + size/2
	}
	return math.Max(minV, math.Min(v, maxV))
}

// ViewMatrix returns the world-to-screen matrix:
//
//	Translate(viewport center) * Rotate(-Rotation) * Scale(Zoom) * Translate(-X, -Y)
//
// It is cached until the camera moves or MarkDirty is called.
func (c *Camera) ViewMatrix() [6]float64 {
	if c.dirty {
		center := c.Viewport.Center()
		toCenter := localTransform(center, Vec2{c.Zoom, c.Zoom}, -c.Rotation)
		c.view = multiplyAffine(toCenter, [6]float64{1, 0, 0, 1, -c.X, -c.Y})
		c.inv = invertAffine(c.view)
		c.dirty = false
	}
	return c.view
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.ViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.ViewMatrix()
	return transformPoint(c.inv, sx, sy)
}

// MarkDirty forces the view matrix to be rebuilt, e.g. after writing X, Y,
// Zoom, or Rotation directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
