package ecs

import (
	"testing"

	"github.com/phi-lira/vrcursor"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitCursorEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []vrcursor.CursorEvent
	CursorEventType.Subscribe(world, func(w donburi.World, e vrcursor.CursorEvent) {
		received = append(received, e)
	})

	sink.EmitCursorEvent(vrcursor.CursorEvent{
		ID:       0,
		Type:     vrcursor.CursorMouse,
		Position: vrcursor.Vec3{X: 1.5, Y: -0.5, Z: -2},
		Active:   true,
	})

	sink.EmitCursorEvent(vrcursor.CursorEvent{
		ID:       3,
		Type:     vrcursor.CursorMouse,
		Position: vrcursor.Vec3{Z: -1},
	})

	// Events are queued — process them.
	CursorEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.ID != 0 || !e0.Active {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position != (vrcursor.Vec3{X: 1.5, Y: -0.5, Z: -2}) {
		t.Errorf("event 0 position: %+v", e0.Position)
	}

	e1 := received[1]
	if e1.ID != 3 || e1.Active {
		t.Errorf("event 1: %+v", e1)
	}
}
