package raytrace

import (
	"math"

	"github.com/taigrr/raytrace/pkg/math3d"
)

// MaxReflectionDepth caps recursive mirror reflection, guaranteeing Cast
// terminates regardless of scene geometry.
const MaxReflectionDepth = 32

// shadowBias offsets shadow and reflection ray origins off the surface
// along its normal, avoiding immediate self-intersection.
const shadowBias = 1e-13

// Cast traces ray through scene and shades the nearest hit, recursing into
// mirror reflections up to MaxReflectionDepth. Rays that hit nothing, and
// rays at or past the depth cap, return black.
func Cast(scene *Scene, ray Ray, depth int) math3d.Color {
	if depth >= MaxReflectionDepth {
		return math3d.Black()
	}
	hit, ok := scene.Trace(ray)
	if !ok {
		return math3d.Black()
	}
	return shade(scene, ray, hit, depth)
}

// shade computes the Lambertian diffuse contribution of every unshadowed
// light, then blends in a mirror reflection term for Reflective surfaces.
func shade(scene *Scene, ray Ray, hit IntersectionResult, depth int) math3d.Color {
	result := math3d.Black()

	for _, light := range scene.Lights() {
		toLight := light.Direction.Negate()
		power := hit.Normal.Dot(toLight)
		if power <= 0 {
			continue
		}

		shadowOrigin := hit.Point.Add(hit.Normal.Scale(shadowBias))
		shadowRay := NewRay(shadowOrigin, toLight, Shadow)
		if _, blocked := scene.Trace(shadowRay); blocked {
			continue
		}

		reflected := hit.Surface.Albedo / math.Pi
		diffuse := hit.Surface.Color.Mul(light.Color).Scale(power * light.Intensity * reflected)
		result = result.Add(diffuse)
	}

	if hit.Surface.Reflectivity != nil {
		r := *hit.Surface.Reflectivity
		reflectDir := ray.Direction.Reflect(hit.Normal)
		reflectOrigin := hit.Point.Add(hit.Normal.Scale(shadowBias))
		reflectRay := NewRay(reflectOrigin, reflectDir, Reflection)
		reflectionColor := Cast(scene, reflectRay, depth+1).Scale(r)
		result = result.Scale(1 - r).Add(reflectionColor)
	}

	return result
}
