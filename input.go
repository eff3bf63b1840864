package stage

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventType identifies a kind of raw input event.
type EventType uint8

const (
	EventKeyPressed     EventType = iota // key went down this frame
	EventKeyReleased                     // key went up this frame
	EventMousePressed                    // mouse button went down this frame
	EventMouseReleased                   // mouse button went up this frame
	EventMouseWheel                      // wheel scrolled this frame
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Event is one raw input event of the current frame. Key is meaningful for
// key events, Button for mouse button events, WheelX/WheelY for wheel events.
// X and Y hold the screen-space cursor position at the time of the event.
type Event struct {
	Type      EventType
	Key       ebiten.Key
	Button    MouseButton
	X, Y      float64
	WheelX    float64
	WheelY    float64
	Modifiers KeyModifiers
}

// Action is a logical input binding tested against the frame's events.
// An action matches an event of the same type with the same key (key events)
// or button (mouse events), whose modifiers include all of Modifiers.
type Action struct {
	Type      EventType
	Key       ebiten.Key
	Button    MouseButton
	Modifiers KeyModifiers
}

// KeyPressed returns an action matching a press of key.
func KeyPressed(key ebiten.Key) Action {
	return Action{Type: EventKeyPressed, Key: key}
}

// KeyReleased returns an action matching a release of key.
func KeyReleased(key ebiten.Key) Action {
	return Action{Type: EventKeyReleased, Key: key}
}

// MousePressed returns an action matching a press of button.
func MousePressed(button MouseButton) Action {
	return Action{Type: EventMousePressed, Button: button}
}

// MouseReleased returns an action matching a release of button.
func MouseReleased(button MouseButton) Action {
	return Action{Type: EventMouseReleased, Button: button}
}

// WithModifiers returns a copy of a that also requires mods to be held.
func (a Action) WithModifiers(mods KeyModifiers) Action {
	a.Modifiers = mods
	return a
}

// Matches reports whether ev satisfies the action.
func (a Action) Matches(ev Event) bool {
	if a.Type != ev.Type {
		return false
	}
	if ev.Modifiers&a.Modifiers != a.Modifiers {
		return false
	}
	switch a.Type {
	case EventKeyPressed, EventKeyReleased:
		return a.Key == ev.Key
	case EventMousePressed, EventMouseReleased:
		return a.Button == ev.Button
	default:
		return true
	}
}

// EventSnapshot holds the raw input events of the current frame. Events are
// valid until the next World.Update, which clears the snapshot.
type EventSnapshot struct {
	events []Event
}

// Add appends ev to the snapshot.
func (s *EventSnapshot) Add(ev Event) {
	s.events = append(s.events, ev)
}

// Test reports whether any event in the snapshot matches action.
func (s *EventSnapshot) Test(action Action) bool {
	for i := range s.events {
		if action.Matches(s.events[i]) {
			return true
		}
	}
	return false
}

// Len returns the number of events in the snapshot.
func (s *EventSnapshot) Len() int {
	return len(s.events)
}

// Events returns the events in arrival order. The returned slice MUST NOT be
// mutated.
func (s *EventSnapshot) Events() []Event {
	return s.events
}

// Clear drops every event, keeping the allocated capacity.
func (s *EventSnapshot) Clear() {
	s.events = s.events[:0]
}

// --- Polling ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// inputPoller converts ebiten's polled input state into frame events.
// Its key buffer is reused across frames.
type inputPoller struct {
	keyBuf []ebiten.Key
}

// poll appends this frame's key, mouse button, and wheel transitions to dst.
func (p *inputPoller) poll(dst *EventSnapshot) {
	mods := readModifiers()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		dst.Add(Event{Type: EventKeyPressed, Key: k, X: x, Y: y, Modifiers: mods})
	}
	p.keyBuf = inpututil.AppendJustReleasedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		dst.Add(Event{Type: EventKeyReleased, Key: k, X: x, Y: y, Modifiers: mods})
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			dst.Add(Event{Type: EventMousePressed, Button: mb.btn, X: x, Y: y, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			dst.Add(Event{Type: EventMouseReleased, Button: mb.btn, X: x, Y: y, Modifiers: mods})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		dst.Add(Event{Type: EventMouseWheel, X: x, Y: y, WheelX: wx, WheelY: wy, Modifiers: mods})
	}
}
