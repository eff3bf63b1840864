package stage

import "github.com/google/uuid"

// EventSink is the optional bridge for commit notifications. When set on a
// World, every actor that becomes live or is removed during Update is
// reported to it.
type EventSink interface {
	EmitCommit(event CommitEvent)
}

// CommitKind identifies what happened to an actor during a commit.
type CommitKind uint8

const (
	CommitActorAdded   CommitKind = iota // actor joined the live set
	CommitActorRemoved                   // actor left the live set
)

// String returns the kind's name.
func (k CommitKind) String() string {
	switch k {
	case CommitActorAdded:
		return "actor-added"
	case CommitActorRemoved:
		return "actor-removed"
	default:
		return "unknown"
	}
}

// CommitEvent describes one actor change applied by World.Update.
type CommitEvent struct {
	Kind    CommitKind
	Frame   uint64
	ActorID uuid.UUID
	Type    string
	Actor   Actor
}

// SetEventSink sets the optional commit bridge. Pass nil to disable it.
func (w *World) SetEventSink(sink EventSink) {
	w.sink = sink
}

func (w *World) emitCommit(kind CommitKind, a Actor) {
	if w.sink == nil {
		return
	}
	w.sink.EmitCommit(CommitEvent{
		Kind:    kind,
		Frame:   w.frame,
		ActorID: a.Root().ID,
		Type:    a.Type(),
		Actor:   a,
	})
}
