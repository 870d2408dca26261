package vrcursor

import "math"

// DefaultCameraSeparation is the default interpupillary distance between the
// left and right eye cameras, in scene units.
const DefaultCameraSeparation = 0.062

// Camera describes one perspective camera of the rig. Only the vertical
// field of view and aspect ratio participate in cursor projection.
type Camera struct {
	// FovY is the vertical field of view in degrees.
	FovY float64
	// AspectRatio is width divided by height.
	AspectRatio float64
}

// FrustumHeightAt returns the height of the view frustum at the given depth
// along the view axis. Depth is signed; a negative depth (in front of the
// camera) yields a negative height, which the projection sign convention
// relies on.
//
// See http://docs.unity3d.com/Manual/FrustumSizeAtDistance.html
func (c *Camera) FrustumHeightAt(depth float64) float64 {
	return 2 * math.Tan(c.FovY/2*math.Pi/180) * depth
}

// FrustumWidthAt returns the width of the view frustum at the given depth.
func (c *Camera) FrustumWidthAt(depth float64) float64 {
	return c.FrustumHeightAt(depth) * c.AspectRatio
}

// CameraRig holds the left, right, and center cameras of a stereo rig.
// Cursor projection reads the center camera, which spans the combined view
// of both eyes.
type CameraRig struct {
	left, right, center *Camera
	separation          float64
}

// NewCameraRig creates a rig whose three cameras share the given field of
// view and aspect ratio, with the default camera separation.
func NewCameraRig(fovY, aspectRatio float64) *CameraRig {
	shared := Camera{FovY: fovY, AspectRatio: aspectRatio}
	left, right, center := shared, shared, shared
	return &CameraRig{
		left:       &left,
		right:      &right,
		center:     &center,
		separation: DefaultCameraSeparation,
	}
}

// LeftCamera returns the left eye camera.
func (r *CameraRig) LeftCamera() *Camera { return r.left }

// RightCamera returns the right eye camera.
func (r *CameraRig) RightCamera() *Camera { return r.right }

// CenterCamera returns the camera spanning both eyes.
func (r *CameraRig) CenterCamera() *Camera { return r.center }

// CameraSeparation returns the distance between the eye cameras.
func (r *CameraRig) CameraSeparation() float64 { return r.separation }

// SetCameraSeparation sets the distance between the eye cameras.
func (r *CameraRig) SetCameraSeparation(d float64) { r.separation = d }

// Scene is the minimal scene surface the cursor adapter needs: access to the
// main camera rig.
type Scene struct {
	rig *CameraRig
}

// NewScene creates a scene with the given main camera rig. A nil rig is
// allowed; controllers then skip position recalculation.
func NewScene(rig *CameraRig) *Scene {
	return &Scene{rig: rig}
}

// MainCameraRig returns the scene's main camera rig, or nil.
func (s *Scene) MainCameraRig() *CameraRig {
	return s.rig
}

// SetMainCameraRig replaces the scene's main camera rig.
func (s *Scene) SetMainCameraRig(rig *CameraRig) {
	s.rig = rig
}

// SceneProvider exposes whichever scene is currently active. Queried once
// per accepted position update, from the event worker goroutine. MainScene
// may return nil when no scene is live; controllers then apply the active
// flag but leave their position untouched.
type SceneProvider interface {
	MainScene() *Scene
}

// SceneProviderFunc adapts a function to the SceneProvider interface.
type SceneProviderFunc func() *Scene

// MainScene calls f.
func (f SceneProviderFunc) MainScene() *Scene { return f() }
