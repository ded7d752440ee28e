package raytrace

import (
	"math"
	"testing"
)

func TestNewCameraRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewCamera(CameraConfig{Width: 0, Height: 100}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewCamera(CameraConfig{Width: 100, Height: -1}); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestNewCameraDefaultsFOV(t *testing.T) {
	cam, err := NewCamera(CameraConfig{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	want, _ := NewCamera(CameraConfig{Width: 100, Height: 100, FOVDegrees: DefaultFOVDegrees})
	if cam.fovScale != want.fovScale {
		t.Errorf("fovScale = %v, want %v (default FOV)", cam.fovScale, want.fovScale)
	}
}

func TestNewCameraRejectsNegativeFOV(t *testing.T) {
	if _, err := NewCamera(CameraConfig{Width: 100, Height: 100, FOVDegrees: -10}); err == nil {
		t.Error("expected error for negative FOV")
	}
}

func TestPrimaryRayCenterPixelPointsForward(t *testing.T) {
	cam, err := NewCamera(CameraConfig{Width: 100, Height: 100, FOVDegrees: 90})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	// The pixel grid has no true center column/row at 100x100, but the ray
	// through pixel (50, 50), sampled at (50.5, 50.5), is half a pixel off
	// the image center and should point almost straight down -Z.
	ray := cam.PrimaryRay(50, 50)
	if math.Abs(ray.Direction.X) > 0.05 || math.Abs(ray.Direction.Y) > 0.05 {
		t.Errorf("center ray direction = %v, want close to (0,0,-1)", ray.Direction)
	}
	if ray.Direction.Z >= 0 {
		t.Errorf("center ray Z = %v, want negative (facing -Z)", ray.Direction.Z)
	}
}

func TestPrimaryRayTopLeftPointsUpAndLeft(t *testing.T) {
	cam, err := NewCamera(CameraConfig{Width: 100, Height: 100, FOVDegrees: 90})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	ray := cam.PrimaryRay(0, 0)
	if ray.Direction.X >= 0 {
		t.Errorf("top-left ray X = %v, want negative", ray.Direction.X)
	}
	if ray.Direction.Y <= 0 {
		t.Errorf("top-left ray Y = %v, want positive", ray.Direction.Y)
	}
}

func TestPrimaryRayAspectRatioScalesX(t *testing.T) {
	cam, err := NewCamera(CameraConfig{Width: 200, Height: 100, FOVDegrees: 90})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	ray := cam.PrimaryRay(199, 50)
	square, _ := NewCamera(CameraConfig{Width: 100, Height: 100, FOVDegrees: 90})
	squareRay := square.PrimaryRay(99, 50)
	if math.Abs(ray.Direction.X) <= math.Abs(squareRay.Direction.X) {
		t.Error("expected a wider aspect ratio to stretch the edge ray further along X")
	}
}
