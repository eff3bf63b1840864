package ecs

import (
	"github.com/phanxgames/stage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CommitEventType is the Donburi event type for stage commit events.
// Subscribe to this in your ECS systems to mirror actors into the ECS.
var CommitEventType = events.NewEventType[stage.CommitEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Commit events are published to CommitEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) stage.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCommit(event stage.CommitEvent) {
	CommitEventType.Publish(s.world, event)
}
