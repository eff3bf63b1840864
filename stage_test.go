package stage

import "testing"

func TestVec2(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 5}
	if got := a.Add(b); got != (Vec2{4, 7}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(3); got != (Vec2{3, 6}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true}, // edge
		{30, 30, true}, // edge
		{9, 15, false},
		{15, 31, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects do not intersect")
	}
	if !r.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("adjacent rects should intersect")
	}
	if r.Intersects(Rect{X: 11, Y: 11, Width: 1, Height: 1}) {
		t.Error("disjoint rects intersect")
	}
	if c := r.Center(); c != (Vec2{5, 5}) {
		t.Errorf("Center = %v", c)
	}
}
