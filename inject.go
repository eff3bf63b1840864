package stage

import "github.com/hajimehoshi/ebiten/v2"

// InjectEvent queues a synthetic input event. Queued events are delivered one
// per frame, in order, into the event snapshot, after the frame's commit and
// before its tick.
func (w *World) InjectEvent(ev Event) {
	w.injectQueue = append(w.injectQueue, ev)
}

// InjectKey queues a key press followed by its release. Consumes two frames.
func (w *World) InjectKey(key ebiten.Key) {
	w.InjectEvent(Event{Type: EventKeyPressed, Key: key})
	w.InjectEvent(Event{Type: EventKeyReleased, Key: key})
}

// InjectClick queues a left-button press followed by a release at the given
// screen coordinates. Consumes two frames.
func (w *World) InjectClick(x, y float64) {
	w.InjectEvent(Event{Type: EventMousePressed, Button: MouseButtonLeft, X: x, Y: y})
	w.InjectEvent(Event{Type: EventMouseReleased, Button: MouseButtonLeft, X: x, Y: y})
}

// PendingInjected returns the number of queued synthetic events.
func (w *World) PendingInjected() int {
	return len(w.injectQueue)
}

// deliverInjected pops one event from the inject queue into the event
// snapshot. Returns true if an event was delivered.
func (w *World) deliverInjected() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	ev := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]
	w.events.Add(ev)
	return true
}
