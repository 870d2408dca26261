package vrcursor

import "sync"

// MotionSample is one intermediate position recorded between event
// dispatches. High-frequency pointing devices batch these onto the next
// MotionEvent so intermediate motion is not lost.
type MotionSample struct {
	X, Y      float64
	Timestamp int64 // milliseconds since an arbitrary epoch
}

// MotionEvent is a raw pointing-device sample as delivered by the host.
//
// X and Y are in device units within the reported ranges. History holds
// intermediate samples recorded since the last dispatch, oldest first; the
// event's own X/Y is the most recent position and is processed last.
//
// Events handed to DispatchMotionEvent may be reused by the caller as soon as
// the call returns: the worker operates on an internal copy.
type MotionEvent struct {
	Action    Action
	X, Y      float64
	RangeX    MotionRange // device-reported extent of the X axis
	RangeY    MotionRange // device-reported extent of the Y axis
	ScrollY   float64     // wheel delta, positive = scroll up
	Button    MouseButton
	Modifiers KeyModifiers
	Timestamp int64
	History   []MotionSample
}

// KeyEvent is a raw key sample. The built-in mouse controller does not
// consume key events; the type exists for controller implementations that do.
type KeyEvent struct {
	Code      int
	Action    KeyAction
	Modifiers KeyModifiers
	Timestamp int64
}

// --- Event pooling ---

// Queued events are pooled so a steady stream of mouse motion does not churn
// the allocator. submit obtains a clone, the worker recycles it after
// dispatch.
var motionEventPool = sync.Pool{New: func() any { return &MotionEvent{} }}

// obtainMotionEvent returns a pooled copy of ev. The History slice is deep
// copied so the clone never aliases caller memory.
func obtainMotionEvent(ev *MotionEvent) *MotionEvent {
	clone := motionEventPool.Get().(*MotionEvent)
	history := clone.History[:0]

	*clone = *ev
	clone.History = append(history, ev.History...)
	return clone
}

// recycleMotionEvent returns a clone to the pool. The History backing array
// is kept for reuse.
func recycleMotionEvent(ev *MotionEvent) {
	history := ev.History[:0]
	*ev = MotionEvent{History: history}
	motionEventPool.Put(ev)
}
