package stage

import "sort"

// ActorConstructor creates a new, zero-state actor of one type.
type ActorConstructor func() Actor

// ActorFactory maps type names to constructors. World.Load uses it to
// instantiate actors by the type attribute of each record.
type ActorFactory struct {
	ctors map[string]ActorConstructor
}

// NewActorFactory creates an empty factory.
func NewActorFactory() *ActorFactory {
	return &ActorFactory{ctors: make(map[string]ActorConstructor)}
}

// Register binds typeName to ctor, replacing any previous binding.
func (f *ActorFactory) Register(typeName string, ctor ActorConstructor) {
	f.ctors[typeName] = ctor
}

// Unregister removes the binding for typeName, if any.
func (f *ActorFactory) Unregister(typeName string) {
	delete(f.ctors, typeName)
}

// Contains reports whether typeName has a constructor.
func (f *ActorFactory) Contains(typeName string) bool {
	_, ok := f.ctors[typeName]
	return ok
}

// New constructs an actor of typeName. Returns nil and false when the type is
// not registered.
func (f *ActorFactory) New(typeName string) (Actor, bool) {
	ctor, ok := f.ctors[typeName]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Types returns the registered type names in sorted order.
func (f *ActorFactory) Types() []string {
	names := make([]string, 0, len(f.ctors))
	for name := range f.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
