package raytrace

import "github.com/taigrr/raytrace/pkg/math3d"

// Light is a directional light at infinity: all its rays are parallel,
// pointing along Direction.
type Light struct {
	Direction math3d.Vec3
	Color     math3d.Color
	Intensity float64
}

// NewDirectionalLight returns a Light pointing along direction (need not be
// pre-normalized).
func NewDirectionalLight(direction math3d.Vec3, color math3d.Color, intensity float64) Light {
	return Light{Direction: direction.Normalize(), Color: color, Intensity: intensity}
}
