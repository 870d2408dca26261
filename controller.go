package vrcursor

import (
	"sync"
	"sync/atomic"
)

// Controller is the capability surface the owning subsystem holds for one
// cursor device. Implementations route raw events to the event worker and
// publish a 3D position for the render path to read.
type Controller interface {
	// ID returns the controller's registry id.
	ID() int
	// Type returns the kind of device backing this controller.
	Type() CursorType
	// DispatchMotionEvent queues a raw motion sample. It returns false when
	// the event is not consumed (wrong device kind or worker not running).
	DispatchMotionEvent(ev *MotionEvent) bool
	// DispatchKeyEvent queues a raw key sample. It returns false when the
	// controller does not consume key events.
	DispatchKeyEvent(ev *KeyEvent) bool
	// SetPosition overrides the published cursor position directly.
	SetPosition(x, y, z float64)
	// Position returns the last published cursor position. Safe to call
	// from any goroutine.
	Position() Vec3
	// Active reports whether the cursor is in its active (button held)
	// state. Safe to call from any goroutine.
	Active() bool
}

// --- Published state ---

// cursorState is one immutable published snapshot. The worker goroutine is
// the only writer during event processing; readers load the pointer without
// locking.
type cursorState struct {
	pos    Vec3
	active bool
}

// --- Callback registry ---

type cursorHandler struct {
	id uint32
	fn func(CursorEvent)
}

// CallbackHandle allows removing a registered cursor callback.
type CallbackHandle struct {
	id uint32
	c  *MouseController
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.c == nil {
		return
	}
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	for i := range h.c.handlers {
		if h.c.handlers[i].id == h.id {
			// Build a fresh slice: publish iterates a snapshot of the old
			// one outside the lock.
			next := make([]cursorHandler, 0, len(h.c.handlers)-1)
			next = append(next, h.c.handlers[:i]...)
			next = append(next, h.c.handlers[i+1:]...)
			h.c.handlers = next
			return
		}
	}
}

// --- Mouse controller ---

// MouseController projects normalized mouse samples onto a plane inside the
// active camera's frustum and publishes the resulting position.
//
// Create controllers through MouseDeviceManager.CreateController.
type MouseController struct {
	id       int
	mgr      *MouseDeviceManager
	provider SceneProvider

	state atomic.Pointer[cursorState]

	mu        sync.Mutex
	nearDepth float64
	farDepth  float64
	handlers  []cursorHandler
	nextID    uint32
	sink      EventSink
}

func newMouseController(id int, mgr *MouseDeviceManager, provider SceneProvider) *MouseController {
	c := &MouseController{
		id:        id,
		mgr:       mgr,
		provider:  provider,
		nearDepth: DefaultNearDepth,
		farDepth:  DefaultFarDepth,
	}
	c.state.Store(&cursorState{pos: Vec3{Z: DefaultNearDepth}})
	return c
}

// ID returns the controller's registry id.
func (c *MouseController) ID() int { return c.id }

// Type returns CursorMouse.
func (c *MouseController) Type() CursorType { return CursorMouse }

// DispatchMotionEvent queues a raw motion sample for background processing.
// The event may be reused by the caller as soon as the call returns. Returns
// false when the worker is not running; the sample is then dropped.
func (c *MouseController) DispatchMotionEvent(ev *MotionEvent) bool {
	if ev == nil {
		return false
	}
	return c.mgr.submit(c.id, ev)
}

// DispatchKeyEvent returns false: the mouse controller does not consume key
// events.
func (c *MouseController) DispatchKeyEvent(ev *KeyEvent) bool {
	return false
}

// Position returns the last published cursor position.
func (c *MouseController) Position() Vec3 {
	return c.state.Load().pos
}

// Active reports whether the cursor is in its active state.
func (c *MouseController) Active() bool {
	return c.state.Load().active
}

// NearDepth returns the near depth bound.
func (c *MouseController) NearDepth() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nearDepth
}

// SetNearDepth sets the near depth bound (the closest the cursor may come to
// the camera, as a signed distance along the view axis).
func (c *MouseController) SetNearDepth(depth float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nearDepth = depth
}

// FarDepth returns the far depth bound.
func (c *MouseController) FarDepth() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.farDepth
}

// SetFarDepth sets the far depth bound (the furthest the cursor may move
// from the camera, as a signed distance along the view axis).
func (c *MouseController) SetFarDepth(depth float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.farDepth = depth
}

// OnCursorChange registers a callback fired on every published cursor
// update. Callbacks run on the event worker goroutine (or on the caller of
// SetPosition) and must not block.
func (c *MouseController) OnCursorChange(fn func(CursorEvent)) CallbackHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.handlers = append(c.handlers, cursorHandler{id: c.nextID, fn: fn})
	return CallbackHandle{id: c.nextID, c: c}
}

// SetEventSink routes published cursor updates to an external sink (e.g. the
// Donburi adapter in vrcursor/ecs). A nil sink disables routing.
func (c *MouseController) SetEventSink(sink EventSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = sink
}

// SetPosition overrides the published cursor position. The active flag is
// left unchanged.
func (c *MouseController) SetPosition(x, y, z float64) {
	c.mu.Lock()
	st := *c.state.Load()
	st.pos = Vec3{X: x, Y: y, Z: z}
	handlers, sink := c.storeLocked(st)
	c.mu.Unlock()

	c.fire(st, handlers, sink)
}

// applySample projects one normalized sample. Called only from the event
// worker goroutine.
//
// The candidate depth is the current depth stepped by the sample's scroll
// direction. Inside the [far, near] bounds the cursor lands on the frustum
// plane at that depth; outside, position is frozen and only the active flag
// is applied. Without a live scene or camera rig the position is likewise
// left untouched.
func (c *MouseController) applySample(s normalizedSample) {
	c.mu.Lock()
	st := *c.state.Load()

	if cam := c.centerCamera(); cam != nil {
		depth := st.pos.Z + s.zDir
		if depth <= c.nearDepth && depth >= c.farDepth {
			frustumHeight := cam.FrustumHeightAt(depth)
			frustumWidth := frustumHeight * cam.AspectRatio
			st.pos = Vec3{
				X: frustumWidth * -s.x,
				Y: frustumHeight * -s.y,
				Z: depth,
			}
		}
	}
	st.active = s.active
	handlers, sink := c.storeLocked(st)
	c.mu.Unlock()

	c.fire(st, handlers, sink)
}

// centerCamera resolves the active center camera, or nil when no scene or
// rig is live. Caller holds c.mu.
func (c *MouseController) centerCamera() *Camera {
	if c.provider == nil {
		return nil
	}
	scene := c.provider.MainScene()
	if scene == nil {
		return nil
	}
	rig := scene.MainCameraRig()
	if rig == nil {
		return nil
	}
	return rig.CenterCamera()
}

// storeLocked publishes st and snapshots the callback targets. Caller holds
// c.mu; the returned slice is safe to iterate after unlocking because
// removal always builds a fresh slice.
func (c *MouseController) storeLocked(st cursorState) ([]cursorHandler, EventSink) {
	c.state.Store(&st)
	return c.handlers, c.sink
}

func (c *MouseController) fire(st cursorState, handlers []cursorHandler, sink EventSink) {
	if len(handlers) == 0 && sink == nil {
		return
	}
	ev := CursorEvent{
		ID:       c.id,
		Type:     CursorMouse,
		Position: st.pos,
		Active:   st.active,
	}
	for _, h := range handlers {
		h.fn(ev)
	}
	if sink != nil {
		sink.EmitCursorEvent(ev)
	}
}
