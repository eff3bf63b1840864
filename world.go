package stage

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Tickable is anything with per-frame logic. A World references tickables,
// it does not own them: removing one only drops the reference.
type Tickable interface {
	Tick(dt time.Duration)
}

// Renderable is anything drawn each frame. FinalZ is the depth key (lower is
// drawn first) and FinalPosition().Y breaks ties between equal depths.
// A World references renderables, it does not own them.
//
// Implementations must be comparable (normally pointers): removal finds the
// entry by equality.
type Renderable interface {
	Positioner
	Render(t Target)
	FinalZ() float64
}

const defaultSetCap = 64

// World is the registry and per-frame scheduler of a simulation. It owns the
// live actors, tickables, and renderables, and stages every addition and
// removal until the next Update so that tick and render callbacks can change
// the sets they are being iterated from.
//
// A frame runs Tick, then Render, then Update. Exactly one World is expected
// per running simulation; create it at the entry point and pass it to the
// code that needs it. Not safe for concurrent use.
type World struct {
	actors     *Collection[Actor]
	actorAdds  *Collection[Actor]
	actorDels  *Collection[Actor]
	ticks      *Collection[Tickable]
	tickAdds   *Collection[Tickable]
	tickDels   *Collection[Tickable]
	renders    *Collection[Renderable]
	renderAdds *Collection[Renderable]
	renderDels *Collection[Renderable]

	// Drained at commit while sink callbacks stage into actorAdds/actorDels.
	actorAddsSpare *Collection[Actor]
	actorDelsSpare *Collection[Actor]

	events  EventSnapshot
	cameras *CameraManager
	factory *ActorFactory

	resources *Resources
	window    Window
	sink      EventSink
	log       Logger
	debug     bool
	frame     uint64

	// Synthetic input and automation.
	injectQueue     []Event
	screenshotQueue []string
	testRunner      *TestRunner

	// ScreenshotDir is the directory queued screenshots are written to.
	ScreenshotDir string
}

// NewWorld creates an empty world. Without options the world has an empty
// factory, an empty camera manager, an empty resource cache, the ebiten
// window, and discards log output.
func NewWorld(opts ...Option) *World {
	w := &World{
		actors:         NewCollection[Actor](defaultSetCap),
		actorAdds:      NewCollection[Actor](defaultSetCap),
		actorDels:      NewCollection[Actor](defaultSetCap),
		actorAddsSpare: NewCollection[Actor](defaultSetCap),
		actorDelsSpare: NewCollection[Actor](defaultSetCap),
		ticks:          NewCollection[Tickable](defaultSetCap),
		tickAdds:       NewCollection[Tickable](defaultSetCap),
		tickDels:       NewCollection[Tickable](defaultSetCap),
		renders:        NewCollection[Renderable](defaultSetCap),
		renderAdds:     NewCollection[Renderable](defaultSetCap),
		renderDels:     NewCollection[Renderable](defaultSetCap),
		cameras:        NewCameraManager(),
		factory:        NewActorFactory(),
		resources:      NewResources(),
		window:         EbitenWindow{},
		log:            nopLogger{},
		ScreenshotDir:  "screenshots",
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and commit counts are logged at debug level.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// Frame returns the number of commits performed so far.
func (w *World) Frame() uint64 {
	return w.frame
}

// --- Staging ---

// AddActor stages actor for addition at the next Update. An actor whose root
// has no ID is given a fresh one.
func (w *World) AddActor(actor Actor) {
	if isNil(actor) || isNil(actor.Root()) {
		w.log.Warn("rejected nil actor")
		return
	}
	if root := actor.Root(); root.ID == uuid.Nil {
		root.ID = uuid.New()
	}
	w.actorAdds.Add(actor)
}

// RemoveActor stages actor for removal at the next Update.
func (w *World) RemoveActor(actor Actor) {
	if isNil(actor) {
		return
	}
	w.actorDels.Add(actor)
}

// AddTickable stages t for addition at the next Update.
func (w *World) AddTickable(t Tickable) {
	if isNil(t) {
		w.log.Warn("rejected nil tickable")
		return
	}
	w.tickAdds.Add(t)
}

// RemoveTickable stages t for removal at the next Update.
func (w *World) RemoveTickable(t Tickable) {
	if isNil(t) {
		return
	}
	w.tickDels.Add(t)
}

// AddRenderable stages r for addition at the next Update. Nil renderables
// are rejected so the live set never holds a nil entry.
func (w *World) AddRenderable(r Renderable) {
	if isNil(r) {
		w.log.Warn("rejected nil renderable")
		return
	}
	w.renderAdds.Add(r)
}

// RemoveRenderable stages r for removal at the next Update.
func (w *World) RemoveRenderable(r Renderable) {
	if isNil(r) {
		return
	}
	w.renderDels.Add(r)
}

// --- Frame ---

// Tick runs every committed tickable, in registration order. Tickables added
// or removed during the pass take effect at the next Update. A negative dt
// is treated as zero.
func (w *World) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}
	for _, t := range w.ticks.Items() {
		t.Tick(dt)
	}
	if w.debug {
		w.log.Debug("tick", "frame", w.frame, "tickables", w.ticks.Len(), "elapsed", time.Since(t0))
	}
}

// renderLess orders renderables back to front: ascending depth, then
// ascending screen-space Y. A nil operand orders first; AddRenderable keeps
// nil out of the live set.
func renderLess(a, b Renderable) bool {
	if isNil(a) || isNil(b) {
		return true
	}
	az, bz := a.FinalZ(), b.FinalZ()
	if az != bz {
		return az < bz
	}
	return a.FinalPosition().Y < b.FinalPosition().Y
}

// Render sorts the committed renderables and draws them into target through
// the active camera. The target's previous view is restored afterwards, even
// if a renderable panics.
func (w *World) Render(target Target) {
	var stats debugStats
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}

	w.renders.Sort(renderLess)

	if w.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	prev := target.SetView(w.cameras.Active())
	defer target.SetView(prev)

	for _, r := range w.renders.Items() {
		r.Render(target)
	}

	if w.debug {
		stats.drawTime = time.Since(t0)
		stats.renderables = w.renders.Len()
		w.debugLog(stats)
	}
}

// Update is the commit point of a frame. It clears the event snapshot, then
// applies staged renderable, tickable, and actor changes in that order; in
// each category additions are applied before deletions, so an object added
// and removed in the same frame ends up absent.
func (w *World) Update() {
	w.events.Clear()
	w.frame++

	commitStaged(w.renders, w.renderAdds, w.renderDels)
	commitStaged(w.ticks, w.tickAdds, w.tickDels)

	// Swap the actor buffers out first: sinks may stage more actors while
	// being notified, and those belong to the next commit.
	adds, dels := w.actorAdds, w.actorDels
	w.actorAdds, w.actorDels = w.actorAddsSpare, w.actorDelsSpare
	w.actorAddsSpare, w.actorDelsSpare = adds, dels

	added, removed := adds.Len(), dels.Len()
	for _, a := range adds.Items() {
		w.actors.Add(a)
		w.emitCommit(CommitActorAdded, a)
	}
	adds.Clear()
	for _, a := range dels.Items() {
		if w.actors.Remove(a) {
			w.emitCommit(CommitActorRemoved, a)
		}
	}
	dels.Clear()

	if w.debug && (added > 0 || removed > 0) {
		w.log.Debug("commit actors", "frame", w.frame, "added", added, "removed", removed, "live", w.actors.Len())
	}
}

// commitStaged drains adds into live, then dels out of live, and clears both
// staging buffers.
func commitStaged[T comparable](live, adds, dels *Collection[T]) {
	for _, item := range adds.Items() {
		live.Add(item)
	}
	adds.Clear()
	for _, item := range dels.Items() {
		live.Remove(item)
	}
	dels.Clear()
}

// --- Queries ---

// Actor returns the committed actor at index i, or nil and false when i is
// out of range.
func (w *World) Actor(i int) (Actor, bool) {
	return w.actors.At(i)
}

// FindActor returns the committed actor whose root has the given ID.
func (w *World) FindActor(id uuid.UUID) (Actor, bool) {
	for _, a := range w.actors.Items() {
		if a.Root().ID == id {
			return a, true
		}
	}
	return nil, false
}

// EachActor calls fn for every committed actor in index order.
func (w *World) EachActor(fn func(Actor)) {
	w.actors.Each(fn)
}

// ActorCount returns the number of committed actors.
func (w *World) ActorCount() int {
	return w.actors.Len()
}

// TickableCount returns the number of committed tickables.
func (w *World) TickableCount() int {
	return w.ticks.Len()
}

// RenderableCount returns the number of committed renderables.
func (w *World) RenderableCount() int {
	return w.renders.Len()
}

// --- Input ---

// AddEvent appends ev to the current frame's event snapshot.
func (w *World) AddEvent(ev Event) {
	w.events.Add(ev)
}

// TestAction reports whether any event of the current frame matches action.
func (w *World) TestAction(action Action) bool {
	return w.events.Test(action)
}

// Events returns the current frame's event snapshot.
func (w *World) Events() *EventSnapshot {
	return &w.events
}

// MousePositionScreen returns the cursor position in screen coordinates.
func (w *World) MousePositionScreen() Vec2 {
	return w.window.CursorPosition()
}

// MousePositionView returns the cursor position transformed into the active
// camera's world space. Without a camera it equals MousePositionScreen.
func (w *World) MousePositionView() Vec2 {
	p := w.window.CursorPosition()
	if cam := w.cameras.Active(); cam != nil {
		p.X, p.Y = cam.ScreenToWorld(p.X, p.Y)
	}
	return p
}

// --- Collaborators ---

// Cameras returns the world's camera manager.
func (w *World) Cameras() *CameraManager {
	return w.cameras
}

// Factory returns the actor factory used by Load.
func (w *World) Factory() *ActorFactory {
	return w.factory
}

// Resources returns the shared resource cache.
func (w *World) Resources() *Resources {
	return w.resources
}

// Window returns the application window.
func (w *World) Window() Window {
	return w.window
}

// isNil reports whether v is nil or an interface holding a nil pointer, map,
// slice, func, or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
