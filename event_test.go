package vrcursor

import "testing"

func TestObtainMotionEventCopies(t *testing.T) {
	src := &MotionEvent{
		Action:  ActionMove,
		X:       100,
		Y:       200,
		RangeX:  MotionRange{Max: 1023},
		RangeY:  MotionRange{Max: 767},
		History: []MotionSample{{X: 90, Y: 190, Timestamp: 1}, {X: 95, Y: 195, Timestamp: 2}},
	}

	clone := obtainMotionEvent(src)
	if clone.X != 100 || clone.Y != 200 || clone.Action != ActionMove {
		t.Errorf("clone fields = %+v", clone)
	}
	if len(clone.History) != 2 {
		t.Fatalf("clone history length = %d, want 2", len(clone.History))
	}

	// The caller may reuse its event immediately: mutating the source must
	// not reach the clone.
	src.X = -1
	src.History[0].X = -1
	if clone.X != 100 {
		t.Error("clone aliases source fields")
	}
	if clone.History[0].X != 90 {
		t.Error("clone aliases source history")
	}
	recycleMotionEvent(clone)
}

func TestRecycleMotionEventResets(t *testing.T) {
	src := &MotionEvent{
		Action:  ActionScroll,
		ScrollY: 2,
		History: []MotionSample{{X: 1}},
	}
	clone := obtainMotionEvent(src)
	recycleMotionEvent(clone)

	// A recycled event comes back zeroed regardless of pool behavior.
	next := obtainMotionEvent(&MotionEvent{X: 5})
	if next.ScrollY != 0 || len(next.History) != 0 {
		t.Errorf("recycled event carried state: %+v", next)
	}
	if next.X != 5 {
		t.Errorf("X = %f, want 5", next.X)
	}
	recycleMotionEvent(next)
}
