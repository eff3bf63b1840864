package stage

// Option configures a World at construction.
type Option func(*World)

// WithLogger routes world diagnostics to l.
func WithLogger(l Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithFactory uses f to construct actors during Load.
func WithFactory(f *ActorFactory) Option {
	return func(w *World) {
		if f != nil {
			w.factory = f
		}
	}
}

// WithResources shares an existing resource cache with the world.
func WithResources(r *Resources) Option {
	return func(w *World) {
		if r != nil {
			w.resources = r
		}
	}
}

// WithWindow replaces the ebiten-backed window, e.g. with a fake in tests.
func WithWindow(win Window) Option {
	return func(w *World) {
		if win != nil {
			w.window = win
		}
	}
}

// WithEventSink forwards actor commit notifications to sink.
func WithEventSink(sink EventSink) Option {
	return func(w *World) {
		w.sink = sink
	}
}

// WithDebug enables debug mode from construction.
func WithDebug(enabled bool) Option {
	return func(w *World) {
		w.debug = enabled
	}
}
