package vrcursor

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSource drives a mouse controller from Ebitengine's input state. Call
// Update once per game tick; the source polls the cursor, buttons, and wheel
// and synthesizes the corresponding MotionEvents.
//
// The device motion range is the window layout size; keep it current with
// SetLayout from ebiten.Game.Layout.
type EbitenSource struct {
	controller *MouseController
	rangeX     MotionRange
	rangeY     MotionRange

	lastX, lastY int
	pressed      bool
	button       MouseButton
	primed       bool
}

// NewEbitenSource creates a source feeding c, with the device range set to
// the given layout size in pixels.
func NewEbitenSource(c *MouseController, width, height int) *EbitenSource {
	s := &EbitenSource{controller: c}
	s.SetLayout(width, height)
	return s
}

// SetLayout updates the device motion range to the current layout size.
func (s *EbitenSource) SetLayout(width, height int) {
	s.rangeX = MotionRange{Max: float64(width - 1)}
	s.rangeY = MotionRange{Max: float64(height - 1)}
}

// Update polls ebiten's mouse state and dispatches any resulting events.
// Call from ebiten.Game.Update.
func (s *EbitenSource) Update() {
	x, y := ebiten.CursorPosition()

	// Detect which button is pressed. Once down, keep the button captured at
	// press time for the rest of the interaction.
	var pressed bool
	button := s.button
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if !s.pressed {
			if left {
				button = MouseButtonLeft
			} else if right {
				button = MouseButtonRight
			} else {
				button = MouseButtonMiddle
			}
		}
	}

	_, wheelY := ebiten.Wheel()
	s.step(x, y, pressed, button, wheelY, readModifiers(), time.Now().UnixMilli())
}

// step runs the per-tick transition logic. Split from Update so it can be
// exercised without an ebiten event loop.
func (s *EbitenSource) step(x, y int, pressed bool, button MouseButton, wheelY float64, mods KeyModifiers, now int64) {
	ev := MotionEvent{
		X:         float64(x),
		Y:         float64(y),
		RangeX:    s.rangeX,
		RangeY:    s.rangeY,
		Button:    button,
		Modifiers: mods,
		Timestamp: now,
	}

	moved := s.primed && (x != s.lastX || y != s.lastY)

	switch {
	case pressed && !s.pressed:
		ev.Action = ActionDown
		s.controller.DispatchMotionEvent(&ev)
	case !pressed && s.pressed:
		ev.Action = ActionUp
		s.controller.DispatchMotionEvent(&ev)
	case moved && pressed:
		ev.Action = ActionMove
		s.controller.DispatchMotionEvent(&ev)
	case moved:
		ev.Action = ActionHoverMove
		s.controller.DispatchMotionEvent(&ev)
	}

	if wheelY != 0 {
		scroll := ev
		scroll.Action = ActionScroll
		scroll.ScrollY = wheelY
		s.controller.DispatchMotionEvent(&scroll)
	}

	s.lastX, s.lastY = x, y
	s.pressed = pressed
	s.button = button
	s.primed = true
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
