package vrcursor

// Vec3 is a 3D vector in scene units. The coordinate system is right-handed
// with the camera at the origin looking down -Z: negative Z is in front of
// the camera.
type Vec3 struct {
	X, Y, Z float64
}

// MotionRange is the device-reported extent of one input axis.
// A range with Max <= Min carries no usable information and any sample
// referencing it is dropped during normalization.
type MotionRange struct {
	Min, Max float64
}

// Valid reports whether the range describes a usable axis extent.
func (r MotionRange) Valid() bool {
	return r.Max > r.Min
}

// CursorType identifies the kind of pointing device backing a controller.
type CursorType uint8

const (
	CursorMouse   CursorType = iota // 2D pointing device with buttons and a wheel
	CursorGamepad                   // game controller thumbstick cursor
	CursorGaze                      // head-orientation gaze cursor
)

// String returns the cursor type name for diagnostics.
func (c CursorType) String() string {
	switch c {
	case CursorMouse:
		return "mouse"
	case CursorGamepad:
		return "gamepad"
	case CursorGaze:
		return "gaze"
	default:
		return "unknown"
	}
}

// Action identifies what a raw motion sample reports.
type Action uint8

const (
	ActionMove      Action = iota // position change with a button held
	ActionDown                    // button press transition
	ActionUp                      // button release transition
	ActionScroll                  // scroll wheel movement
	ActionHoverMove               // position change with no button held
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyAction identifies a key event transition.
type KeyAction uint8

const (
	KeyActionDown KeyAction = iota // key press
	KeyActionUp                    // key release
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Default depth bounds for a newly created controller. Depths are signed
// distances along the view axis: nearer to the camera is less negative.
const (
	DefaultNearDepth = -1.0
	DefaultFarDepth  = -10.0
)

// CursorEvent describes one published cursor update for external consumers
// (e.g. the ECS bridge in vrcursor/ecs).
type CursorEvent struct {
	ID       int
	Type     CursorType
	Position Vec3
	Active   bool
}

// EventSink receives cursor updates as they are published. Set one on a
// controller with SetEventSink. Emit is called from the event worker
// goroutine; implementations must not block.
type EventSink interface {
	EmitCursorEvent(event CursorEvent)
}
