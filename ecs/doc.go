// Package ecs provides ECS adapters for sprig's collision events.
//
// The primary adapter is [NewDonburiSink], which bridges resolved contacts
// from a [sprig.World] into a [Donburi] world as typed events. Subscribe to
// [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	simWorld.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
