// Package ecs provides ECS adapters for vrcursor's cursor event stream.
//
// The primary adapter is [NewDonburiSink], which bridges published cursor
// updates into a [Donburi] world as typed events. Subscribe to
// [CursorEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	controller.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
