// Package ecs provides ECS adapters for stage's commit notifications.
//
// The primary adapter is [NewDonburiSink], which bridges actor commit events
// (an actor becoming live or being removed during World.Update) into a
// [Donburi] world as typed events. Subscribe to [CommitEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	w := stage.NewWorld(stage.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
