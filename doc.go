// Package vrcursor translates raw pointing-device motion into normalized 3D
// cursor positions for a VR scene graph.
//
// The package is a thin bridge between a host platform's input delivery and a
// renderer's controller abstraction. Raw samples are queued to a dedicated
// background worker so input decoding never runs on the render loop; the
// worker normalizes each sample into [-1, 1] axes and projects it onto a
// plane inside the active camera's view frustum.
//
// # Quick start
//
// Create a [MouseDeviceManager] with a [SceneProvider] and ask it for a
// controller:
//
//	mgr := vrcursor.NewMouseDeviceManager(provider)
//	ctl := mgr.CreateController()
//
//	// From the platform's input-delivery thread:
//	ctl.DispatchMotionEvent(ev)
//
//	// From the render loop, any frame:
//	pos := ctl.Position()
//
// The first CreateController starts the event worker; removing the last
// controller stops it. Dispatch is fire-and-forget: it returns false when the
// worker is not running and true once the sample is queued.
//
// # Projection
//
// A normalized sample (dx, dy in [-1, 1], scroll direction dz) moves the
// cursor on a plane at depth z inside the frustum. The frustum height at a
// depth is 2*tan(fovY/2)*depth and the width is height times the aspect
// ratio, both read from the scene's center camera. Scrolling steps the depth
// by one unit per notch, clamped to the controller's [far, near] bounds;
// samples that would leave the bounds freeze the position and only update the
// active flag.
//
// # Host sources
//
// Any code path that produces a [MotionEvent] can drive a controller. For
// Ebitengine applications, [EbitenSource] polls the mouse once per update
// tick and synthesizes the events. [Glide] offers optional render-path
// easing of the published position (via [gween]).
//
// ECS integration lives in vrcursor/ecs ([Donburi] adapter).
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package vrcursor
