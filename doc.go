// Package stage is the actor registry and per-frame scheduler for
// [Ebitengine] simulations.
//
// A [World] owns three live sets: actors (persistent simulation state),
// tickables (per-frame logic), and renderables (per-frame drawing). Every
// addition and removal is staged and only applied at the commit point,
// [World.Update], so tick and render callbacks may freely add or remove
// objects while the sets are being iterated.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	w := stage.NewWorld(stage.WithLogger(stage.NewSlogLogger(nil)))
//	w.Factory().Register("crate", func() stage.Actor { return NewCrate() })
//	if err := w.Load("level.xml"); err != nil {
//		log.Fatal(err)
//	}
//	stage.Run(w, stage.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and drive the frame:
//
//	func (g *Game) Update() error {
//		g.world.Update()            // commit last frame's staged changes
//		// push input with g.world.AddEvent(...)
//		g.world.Tick(time.Second / 60)
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.world.Render(stage.NewScreenTarget(s)) }
//
// # Frame order
//
// Input events are pushed into the frame's [EventSnapshot], [World.Tick] runs
// the committed tickables, [World.Render] sorts the committed renderables by
// depth (FinalZ, then FinalPosition().Y) and draws them through the active
// camera, and [World.Update] clears the snapshot and commits staged
// renderables, tickables, and actors, in that order. Within one category
// additions are applied before removals, so an object added and removed in
// the same frame ends up absent.
//
// # Actors and persistence
//
// Actor types embed [RootComponent] and register a constructor with the
// world's [ActorFactory]. [World.Save] writes every committed actor to an XML
// document; [World.Load] reads one back, skipping records whose type is not
// registered:
//
//	<Actors>
//	  <Actor type="crate" hp="3">
//	    <Root id="..." x="10" y="20" z="0" rotation="0" sx="1" sy="1"/>
//	  </Actor>
//	</Actors>
//
// # Cameras
//
// The [CameraManager] owns the world's cameras. The active [Camera] is the
// view Render draws through; cameras support follow, animated scroll (via
// [gween]), zoom, rotation, and bounds clamping. Register the manager as a
// tickable to animate them.
//
// # ECS integration
//
// Actor commits can be mirrored into an ECS through an [EventSink]; the
// stage/ecs package provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package stage
