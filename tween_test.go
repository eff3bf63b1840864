package stage

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestTweenPosition(t *testing.T) {
	root := NewRootComponent()
	g := TweenPosition(&root, 100, 200, 1.0, ease.Linear)

	g.Update(0.5)
	if !approxEqual(root.Position.X, 50, 1.0) || !approxEqual(root.Position.Y, 100, 1.0) {
		t.Errorf("halfway: position = %v, want ~(50,100)", root.Position)
	}
	if g.Done {
		t.Error("Done at halfway")
	}

	g.Update(0.5)
	if !approxEqual(root.Position.X, 100, 1e-3) || !approxEqual(root.Position.Y, 200, 1e-3) {
		t.Errorf("end: position = %v, want (100,200)", root.Position)
	}
	if !g.Done {
		t.Error("not Done at end")
	}
}

func TestTweenScaleRotationDepth(t *testing.T) {
	root := NewRootComponent()
	groups := []*TweenGroup{
		TweenScale(&root, 2, 3, 0.5, ease.Linear),
		TweenRotation(&root, math.Pi, 0.5, ease.Linear),
		TweenDepth(&root, 8, 0.5, ease.Linear),
	}
	for _, g := range groups {
		g.Update(1)
	}
	if !approxEqual(root.Scale.X, 2, 1e-3) || !approxEqual(root.Scale.Y, 3, 1e-3) {
		t.Errorf("Scale = %v, want (2,3)", root.Scale)
	}
	if !approxEqual(root.Rotation, math.Pi, 1e-3) {
		t.Errorf("Rotation = %f, want π", root.Rotation)
	}
	if !approxEqual(root.Z, 8, 1e-3) {
		t.Errorf("Z = %f, want 8", root.Z)
	}
}

func TestTweenUpdateAfterDoneIsNoOp(t *testing.T) {
	root := NewRootComponent()
	g := TweenDepth(&root, 4, 0.1, ease.Linear)
	g.Update(1)
	root.Z = 42
	g.Update(1)
	if root.Z != 42 {
		t.Errorf("finished tween wrote Z = %f", root.Z)
	}
}

func TestAddTweenRemovesItselfWhenDone(t *testing.T) {
	w := NewWorld()
	root := NewRootComponent()
	w.AddTween(TweenPosition(&root, 10, 0, 0.5, ease.Linear))

	w.Step(time.Second / 4)
	if w.TickableCount() != 1 {
		t.Fatalf("TickableCount = %d, want 1 while running", w.TickableCount())
	}
	w.Step(time.Second)
	if !approxEqual(root.Position.X, 10, 1e-3) {
		t.Errorf("X = %f, want 10", root.Position.X)
	}
	w.Update()
	if w.TickableCount() != 0 {
		t.Errorf("TickableCount = %d, want 0 after the tween finished", w.TickableCount())
	}
}
