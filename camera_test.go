package vrcursor

import (
	"math"
	"testing"
)

func TestFrustumHeightAt(t *testing.T) {
	tests := []struct {
		name  string
		fovY  float64
		depth float64
		want  float64
	}{
		{"90 degrees at -1", 90, -1, -2},
		{"90 degrees at -3", 90, -3, -6},
		{"60 degrees at -3", 60, -3, -2 * math.Tan(math.Pi/6) * 3},
		{"zero depth", 90, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := &Camera{FovY: tt.fovY, AspectRatio: 1}
			if got := cam.FrustumHeightAt(tt.depth); !approxEqual(got, tt.want, 1e-6) {
				t.Errorf("FrustumHeightAt(%v) = %f, want %f", tt.depth, got, tt.want)
			}
		})
	}
}

func TestFrustumWidthAt(t *testing.T) {
	cam := &Camera{FovY: 90, AspectRatio: 16.0 / 9}
	want := -2 * 16.0 / 9
	if got := cam.FrustumWidthAt(-1); !approxEqual(got, want, 1e-6) {
		t.Errorf("FrustumWidthAt(-1) = %f, want %f", got, want)
	}
}

func TestNewCameraRig(t *testing.T) {
	rig := NewCameraRig(90, 1.5)

	for _, cam := range []*Camera{rig.LeftCamera(), rig.RightCamera(), rig.CenterCamera()} {
		if cam == nil {
			t.Fatal("rig camera is nil")
		}
		if cam.FovY != 90 || cam.AspectRatio != 1.5 {
			t.Errorf("camera = %+v, want FovY 90 aspect 1.5", cam)
		}
	}
	if rig.CameraSeparation() != DefaultCameraSeparation {
		t.Errorf("separation = %f, want %f", rig.CameraSeparation(), DefaultCameraSeparation)
	}

	rig.SetCameraSeparation(0.07)
	if rig.CameraSeparation() != 0.07 {
		t.Errorf("separation after set = %f, want 0.07", rig.CameraSeparation())
	}
}

func TestRigCamerasIndependent(t *testing.T) {
	rig := NewCameraRig(90, 1)
	rig.LeftCamera().FovY = 95
	if rig.CenterCamera().FovY != 90 {
		t.Error("center camera shares storage with the left camera")
	}
}

func TestSceneMainCameraRig(t *testing.T) {
	rig := NewCameraRig(90, 1)
	scene := NewScene(rig)
	if scene.MainCameraRig() != rig {
		t.Error("MainCameraRig did not return the constructed rig")
	}

	other := NewCameraRig(60, 2)
	scene.SetMainCameraRig(other)
	if scene.MainCameraRig() != other {
		t.Error("SetMainCameraRig did not replace the rig")
	}
}

func TestSceneProviderFunc(t *testing.T) {
	scene := NewScene(nil)
	p := SceneProviderFunc(func() *Scene { return scene })
	if p.MainScene() != scene {
		t.Error("SceneProviderFunc did not pass through")
	}
}

func TestMotionRangeValid(t *testing.T) {
	tests := []struct {
		name string
		r    MotionRange
		want bool
	}{
		{"normal", MotionRange{Min: 0, Max: 1023}, true},
		{"zero", MotionRange{}, false},
		{"inverted", MotionRange{Min: 5, Max: 1}, false},
		{"degenerate", MotionRange{Min: 3, Max: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
