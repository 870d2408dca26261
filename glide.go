package vrcursor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide eases a controller's published position for the render path. The
// controller keeps publishing raw positions; a Glide tracks them and
// produces an interpolated cursor position each frame, re-targeting its
// tweens whenever the published position moves.
//
// Update runs on the render loop; the Glide itself is not goroutine-safe.
type Glide struct {
	controller *MouseController
	duration   float32
	easeFn     ease.TweenFunc

	target  Vec3
	current Vec3
	tweenX  *gween.Tween
	tweenY  *gween.Tween
	tweenZ  *gween.Tween
	started bool
}

// NewGlide creates a Glide easing c's position over duration seconds with
// the given easing function (e.g. ease.OutQuad).
func NewGlide(c *MouseController, duration float32, easeFn ease.TweenFunc) *Glide {
	return &Glide{
		controller: c,
		duration:   duration,
		easeFn:     easeFn,
	}
}

// Update advances the glide by dt seconds and returns the eased cursor
// position for this frame. The first call snaps to the controller's current
// position.
func (g *Glide) Update(dt float32) Vec3 {
	pos := g.controller.Position()

	if !g.started {
		g.started = true
		g.current = pos
		g.target = pos
		return g.current
	}

	if pos != g.target {
		g.target = pos
		g.tweenX = gween.New(float32(g.current.X), float32(pos.X), g.duration, g.easeFn)
		g.tweenY = gween.New(float32(g.current.Y), float32(pos.Y), g.duration, g.easeFn)
		g.tweenZ = gween.New(float32(g.current.Z), float32(pos.Z), g.duration, g.easeFn)
	}

	if g.tweenX != nil {
		vx, doneX := g.tweenX.Update(dt)
		vy, _ := g.tweenY.Update(dt)
		vz, _ := g.tweenZ.Update(dt)
		g.current = Vec3{X: float64(vx), Y: float64(vy), Z: float64(vz)}
		if doneX {
			// Land exactly on the target; tween output is float32.
			g.current = g.target
			g.tweenX, g.tweenY, g.tweenZ = nil, nil, nil
		}
	}
	return g.current
}

// Position returns the eased position from the last Update.
func (g *Glide) Position() Vec3 {
	return g.current
}
