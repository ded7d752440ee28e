package raytrace

// selfIntersectGuard discards intersections closer than this distance,
// preventing a ray from re-hitting the surface it was just cast from due
// to floating point error.
const selfIntersectGuard = 1e-13

// Scene is an immutable collection of Objects and Lights, built by
// SceneBuilder.
type Scene struct {
	objects []Object
	lights  []Light
}

// Trace finds the nearest Object intersection along ray, ignoring hits
// closer than selfIntersectGuard. Ties are broken by insertion order: the
// first object added that achieves the minimum distance wins.
func (s *Scene) Trace(ray Ray) (IntersectionResult, bool) {
	var best IntersectionResult
	found := false
	for _, obj := range s.objects {
		hit, ok := obj.Intersect(ray)
		if !ok || hit.Distance <= selfIntersectGuard {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// Lights returns the scene's directional lights.
func (s *Scene) Lights() []Light {
	return s.lights
}

// SceneBuilder accumulates Objects and Lights before freezing them into a
// Scene.
type SceneBuilder struct {
	objects []Object
	lights  []Light
}

// NewSceneBuilder returns an empty SceneBuilder.
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{}
}

// AddObject appends an Object and returns the builder for chaining.
func (b *SceneBuilder) AddObject(o Object) *SceneBuilder {
	b.objects = append(b.objects, o)
	return b
}

// AddLight appends a Light and returns the builder for chaining.
func (b *SceneBuilder) AddLight(l Light) *SceneBuilder {
	b.lights = append(b.lights, l)
	return b
}

// Build freezes the accumulated objects and lights into a Scene. An empty
// scene (no objects, no lights) is valid and renders as black.
func (b *SceneBuilder) Build() *Scene {
	return &Scene{objects: b.objects, lights: b.lights}
}
