package raytrace

import (
	"fmt"
	"math"

	"github.com/taigrr/raytrace/pkg/math3d"
)

// DefaultFOVDegrees is the vertical field of view used when a
// CameraConfig leaves FOVDegrees at its zero value.
const DefaultFOVDegrees = 90.0

// CameraConfig configures a pinhole Camera.
type CameraConfig struct {
	Width      int
	Height     int
	FOVDegrees float64
}

// Camera is a pinhole camera fixed at the world origin looking down -Z,
// generating primary rays from pixel coordinates.
type Camera struct {
	width, height int
	fovScale      float64
	aspect        float64
}

// NewCamera validates cfg and returns a Camera. Width and Height must be
// positive; FOVDegrees must be positive if set, and defaults to
// DefaultFOVDegrees when zero.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("raytrace: camera dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	fov := cfg.FOVDegrees
	if fov == 0 {
		fov = DefaultFOVDegrees
	}
	if fov <= 0 {
		return nil, fmt.Errorf("raytrace: camera fov must be positive, got %v", fov)
	}
	return &Camera{
		width:    cfg.Width,
		height:   cfg.Height,
		fovScale: math.Tan(fov * math.Pi / 360),
		aspect:   float64(cfg.Width) / float64(cfg.Height),
	}, nil
}

// Width returns the image width in pixels.
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels.
func (c *Camera) Height() int { return c.height }

// PrimaryRay returns the ray through the center of pixel (x, y).
func (c *Camera) PrimaryRay(x, y int) Ray {
	return c.primaryRayAt(float64(x)+0.5, float64(y)+0.5)
}

// primaryRayAt returns the ray through subpixel coordinate (px, py),
// letting callers (e.g. super-sampling) offset within a pixel.
func (c *Camera) primaryRayAt(px, py float64) Ray {
	sx := (px/float64(c.width)*2 - 1) * c.aspect * c.fovScale
	sy := (1 - py/float64(c.height)*2) * c.fovScale
	dir := math3d.V3(sx, sy, -1)
	return NewRay(math3d.Zero3(), dir, Prime)
}
