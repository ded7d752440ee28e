package raytrace

import (
	"math"
	"testing"

	"github.com/taigrr/raytrace/pkg/math3d"
)

func TestWorldPositionIdentityTranslate(t *testing.T) {
	wp := Identity()
	p := math3d.V3(1, 2, 3)
	got := wp.Translate(p)
	if got.Distance(p) > 1e-12 {
		t.Errorf("Translate(%v) = %v, want %v", p, got, p)
	}
}

func TestWorldPositionAtTranslatesLocalOrigin(t *testing.T) {
	wp := At(math3d.V3(0, 0, -5))
	got := wp.Translate(math3d.Zero3())
	want := math3d.V3(0, 0, -5)
	if got.Distance(want) > 1e-12 {
		t.Errorf("Translate(origin) = %v, want %v", got, want)
	}
}

func TestWorldPositionScaleAppliesBeforeTranslation(t *testing.T) {
	wp := At(math3d.V3(10, 0, 0))
	wp.Scale = 2
	got := wp.Translate(math3d.V3(1, 0, 0))
	want := math3d.V3(12, 0, 0)
	if got.Distance(want) > 1e-9 {
		t.Errorf("Translate = %v, want %v", got, want)
	}
}

func TestWorldPositionRotateDirectionIgnoresScaleAndTranslation(t *testing.T) {
	wp := At(math3d.V3(10, 20, 30))
	wp.Scale = 5
	wp.Rotation = math3d.QuaternionFromAxisAngle(math3d.V3(0, 1, 0), math.Pi/2)

	got := wp.RotateDirection(math3d.V3(0, 0, -1))
	// Rotating (0,0,-1) by +90 degrees about Y yields (-1,0,0).
	want := math3d.V3(-1, 0, 0)
	if got.Distance(want) > 1e-9 {
		t.Errorf("RotateDirection = %v, want %v", got, want)
	}
}
