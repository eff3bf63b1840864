package stage

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay is a Tickable and Renderable that displays FPS, TPS, and the
// world's live set sizes in the top-left corner of the screen. It always
// draws last and ignores the active camera. The text refreshes every ~0.5s.
type StatsOverlay struct {
	world *World
	img   *ebiten.Image
	since time.Duration
}

// NewStatsOverlay creates an overlay reporting on w. Register it with both
// AddTickable and AddRenderable, or use World.ShowStats.
func NewStatsOverlay(w *World) *StatsOverlay {
	// 140x64 fits four debug-font lines.
	return &StatsOverlay{world: w, img: ebiten.NewImage(140, 64), since: time.Second}
}

// ShowStats creates a StatsOverlay and stages it as tickable and renderable.
func (w *World) ShowStats() *StatsOverlay {
	o := NewStatsOverlay(w)
	w.AddTickable(o)
	w.AddRenderable(o)
	return o
}

// Tick redraws the overlay text twice a second.
func (o *StatsOverlay) Tick(dt time.Duration) {
	o.since += dt
	if o.since < 500*time.Millisecond {
		return
	}
	o.since = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nActors: %d\nTicks: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), o.world.ActorCount(), o.world.TickableCount()))
}

// Render draws the overlay in screen space.
func (o *StatsOverlay) Render(t Target) {
	prev := t.SetView(nil)
	defer t.SetView(prev)
	t.DrawImage(o.img, &ebiten.DrawImageOptions{})
}

// FinalZ places the overlay above everything else.
func (o *StatsOverlay) FinalZ() float64 {
	return math.MaxFloat64
}

// FinalPosition is the overlay's screen-space origin.
func (o *StatsOverlay) FinalPosition() Vec2 {
	return Vec2{}
}
