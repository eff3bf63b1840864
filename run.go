package stage

import (
	"encoding/json"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	TPS        int    `json:"tps"`
	Fullscreen bool   `json:"fullscreen"`
	Resizable  bool   `json:"resizable"`
	Debug      bool   `json:"debug"`
	// ExitWhenScriptDone ends the game loop once an attached TestRunner has
	// executed every step.
	ExitWhenScriptDone bool `json:"exitWhenScriptDone"`
}

// ParseRunConfig decodes a JSON RunConfig and fills unset fields with
// defaults.
func ParseRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, eris.Wrap(err, "parse run config")
	}
	return cfg.withDefaults(), nil
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.TPS <= 0 {
		c.TPS = ebiten.DefaultTPS
	}
	return c
}

// Run opens a window and drives w with ebiten's game loop until the window
// is closed. Each ebiten tick commits the previous frame (World.Update),
// polls input into the event snapshot, and runs World.Tick; each ebiten draw
// runs World.Render on the screen.
func Run(w *World, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Debug {
		w.SetDebugMode(true)
	}
	if ew, ok := w.window.(EbitenWindow); ok && ew.Width == 0 {
		w.window = EbitenWindow{Width: cfg.Width, Height: cfg.Height}
	}

	if err := ebiten.RunGame(newGame(w, cfg)); err != nil {
		return eris.Wrap(err, "stage: run")
	}
	return nil
}

// game adapts a World to ebiten.Game.
type game struct {
	world  *World
	cfg    RunConfig
	dt     time.Duration
	poller inputPoller
	target ScreenTarget
}

func newGame(w *World, cfg RunConfig) *game {
	return &game{
		world: w,
		cfg:   cfg,
		dt:    time.Second / time.Duration(cfg.TPS),
	}
}

func (g *game) Update() error {
	g.world.advance(g.dt, g.poller.poll)
	return g.scriptResult()
}

// scriptResult ends the loop once the attached script has finished, when
// configured to.
func (g *game) scriptResult() error {
	r := g.world.testRunner
	if !g.cfg.ExitWhenScriptDone || r == nil || !r.Done() {
		return nil
	}
	if err := r.Err(); err != nil {
		return err
	}
	return ebiten.Termination
}

func (g *game) Draw(screen *ebiten.Image) {
	g.target.Reset(screen)
	g.world.Render(&g.target)
	g.world.flushScreenshots(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Step runs the logic half of one frame without a window: it commits staged
// changes, advances an attached TestRunner, delivers one injected event, and
// ticks. Call Render afterwards to draw the frame.
func (w *World) Step(dt time.Duration) {
	w.advance(dt, nil)
}

func (w *World) advance(dt time.Duration, poll func(*EventSnapshot)) {
	w.Update()
	if poll != nil {
		poll(&w.events)
	}
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.deliverInjected()
	w.Tick(dt)
}
