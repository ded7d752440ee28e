package raytrace

import (
	"math"
	"testing"

	"github.com/taigrr/raytrace/pkg/math3d"
)

func TestEmptySceneTraceMisses(t *testing.T) {
	sc := NewSceneBuilder().Build()
	ray := NewRay(math3d.Zero3(), math3d.V3(0, 0, -1), Prime)
	if _, ok := sc.Trace(ray); ok {
		t.Error("expected no hit in an empty scene")
	}
}

func TestSceneTraceFindsNearestObject(t *testing.T) {
	mat := NewDiffuseMaterial(FlatColoration{Color: math3d.White()}, 0.5)
	sc := NewSceneBuilder().
		AddObject(NewObject(NewSphere(1), mat, At(math3d.V3(0, 0, -10)))).
		AddObject(NewObject(NewSphere(1), mat, At(math3d.V3(0, 0, -5)))).
		Build()

	ray := NewRay(math3d.Zero3(), math3d.V3(0, 0, -1), Prime)
	hit, ok := sc.Trace(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("distance = %v, want 4 (nearer sphere)", hit.Distance)
	}
}

func TestSceneTraceTieBreaksByInsertionOrder(t *testing.T) {
	matA := NewDiffuseMaterial(FlatColoration{Color: math3d.NewColor(1, 0, 0)}, 0.5)
	matB := NewDiffuseMaterial(FlatColoration{Color: math3d.NewColor(0, 1, 0)}, 0.5)
	// Two coincident spheres at the same distance; the first one added
	// should win the tie.
	sc := NewSceneBuilder().
		AddObject(NewObject(NewSphere(1), matA, At(math3d.V3(0, 0, -5)))).
		AddObject(NewObject(NewSphere(1), matB, At(math3d.V3(0, 0, -5)))).
		Build()

	ray := NewRay(math3d.Zero3(), math3d.V3(0, 0, -1), Prime)
	hit, ok := sc.Trace(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Surface.Color != matA.At(0, 0).Color {
		t.Error("expected the first-inserted object to win the tie")
	}
}

func TestSceneTraceIgnoresSelfIntersection(t *testing.T) {
	mat := NewDiffuseMaterial(FlatColoration{Color: math3d.White()}, 0.5)
	sc := NewSceneBuilder().
		AddObject(NewObject(NewSphere(1), mat, At(math3d.V3(0, 0, -5)))).
		Build()

	// A ray starting essentially on the sphere's surface, pointed away from
	// it, must not immediately re-hit itself at t~0.
	ray := NewRay(math3d.V3(0, 0, -4), math3d.V3(0, 0, 1), Prime)
	if _, ok := sc.Trace(ray); ok {
		t.Error("expected no hit: ray points away from the sphere")
	}
}

func TestSceneLightsReturnsAddedLights(t *testing.T) {
	l := NewDirectionalLight(math3d.V3(0, -1, 0), math3d.White(), 1.0)
	sc := NewSceneBuilder().AddLight(l).Build()
	lights := sc.Lights()
	if len(lights) != 1 {
		t.Fatalf("len(Lights()) = %d, want 1", len(lights))
	}
	if lights[0].Direction != l.Direction {
		t.Errorf("light direction = %v, want %v", lights[0].Direction, l.Direction)
	}
}
