package stage

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a RootComponent
// simultaneously. Create one via the convenience constructors and either call
// Update(dt) yourself or hand it to World.AddTween, which ticks it each frame
// and unregisters it once Done.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	world  *World
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Tick implements Tickable. When the group finishes it stages its own
// removal from the world that ticks it.
func (g *TweenGroup) Tick(dt time.Duration) {
	g.Update(float32(dt.Seconds()))
	if g.Done && g.world != nil {
		g.world.RemoveTickable(g)
		g.world = nil
	}
}

// AddTween stages g as a tickable. It is removed again automatically when
// it completes.
func (w *World) AddTween(g *TweenGroup) {
	g.world = w
	w.AddTickable(g)
}

// TweenPosition animates root.Position to (toX, toY).
func TweenPosition(root *RootComponent, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(root.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(root.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &root.Position.X
	g.fields[1] = &root.Position.Y
	return g
}

// TweenScale animates root.Scale to (toSX, toSY).
func TweenScale(root *RootComponent, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(root.Scale.X), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(root.Scale.Y), float32(toSY), duration, fn)
	g.fields[0] = &root.Scale.X
	g.fields[1] = &root.Scale.Y
	return g
}

// TweenRotation animates root.Rotation to the target value in radians.
func TweenRotation(root *RootComponent, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(root.Rotation), float32(to), duration, fn)
	g.fields[0] = &root.Rotation
	return g
}

// TweenDepth animates root.Z, changing the render order as it goes.
func TweenDepth(root *RootComponent, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(root.Z), float32(to), duration, fn)
	g.fields[0] = &root.Z
	return g
}
