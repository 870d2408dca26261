package ecs

import (
	"github.com/phi-lira/vrcursor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CursorEventType is the Donburi event type for published cursor updates.
// Subscribe to this in your ECS systems to track cursor position and active
// state per controller.
var CursorEventType = events.NewEventType[vrcursor.CursorEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Cursor
// updates are published to CursorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) vrcursor.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCursorEvent(event vrcursor.CursorEvent) {
	CursorEventType.Publish(s.world, event)
}
