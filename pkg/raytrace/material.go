package raytrace

import (
	"image/color"

	"github.com/taigrr/raytrace/pkg/math3d"
)

// TextureSampler is the capability a mesh/image source must provide for a
// Material to sample a texture-backed Coloration. render.Texture satisfies
// this directly.
type TextureSampler interface {
	Width() int
	Height() int
	GetPixel(x, y int) color.RGBA
}

// Coloration resolves a surface color from UV coordinates. A flat
// Coloration ignores its arguments.
type Coloration interface {
	ColorAt(u, v float64) math3d.Color
}

// FlatColoration is a Coloration with a single constant color.
type FlatColoration struct {
	Color math3d.Color
}

// ColorAt returns the constant color, ignoring u and v.
func (f FlatColoration) ColorAt(u, v float64) math3d.Color {
	return f.Color
}

// TextureColoration samples a texture, wrapping UV coordinates by integer
// modulo so that negative wrapped coordinates shift up by the bound rather
// than clamping or reflecting.
type TextureColoration struct {
	Sampler TextureSampler
}

// ColorAt samples the backing texture at (u, v), wrapping to the texture
// bounds.
func (t TextureColoration) ColorAt(u, v float64) math3d.Color {
	w := t.Sampler.Width()
	h := t.Sampler.Height()
	x := wrapIndex(int(u*float64(w)), w)
	y := wrapIndex(int(v*float64(h)), h)
	px := t.Sampler.GetPixel(x, y)
	return math3d.NewColor(float64(px.R)/255, float64(px.G)/255, float64(px.B)/255)
}

func wrapIndex(i, bound int) int {
	if bound <= 0 {
		return 0
	}
	m := i % bound
	if m < 0 {
		m += bound
	}
	return m
}

// SurfaceKind distinguishes the two supported shading behaviors.
type SurfaceKind int

const (
	// Diffuse surfaces are shaded with Lambertian reflectance only.
	Diffuse SurfaceKind = iota
	// Reflective surfaces additionally cast a mirror reflection ray and
	// blend it with the diffuse term by reflectivity.
	Reflective
)

// reflectivityFloor is the threshold below which a Reflective material is
// treated as Diffuse: a reflectivity that numerically rounds to zero costs
// a recursive ray for no visible effect.
const reflectivityFloor = 1e-10

// Material binds a Coloration, a diffuse albedo, and (optionally) a mirror
// reflectivity to an Object.
type Material struct {
	Coloration   Coloration
	Albedo       float64
	kind         SurfaceKind
	reflectivity float64
}

// NewDiffuseMaterial returns a purely Lambertian Material.
func NewDiffuseMaterial(c Coloration, albedo float64) Material {
	return Material{Coloration: c, Albedo: albedo, kind: Diffuse}
}

// NewReflectiveMaterial returns a Material that blends a diffuse term with
// a mirror reflection weighted by reflectivity. A reflectivity below
// reflectivityFloor degrades to Diffuse.
func NewReflectiveMaterial(c Coloration, albedo, reflectivity float64) Material {
	if reflectivity < reflectivityFloor {
		return NewDiffuseMaterial(c, albedo)
	}
	return Material{Coloration: c, Albedo: albedo, kind: Reflective, reflectivity: reflectivity}
}

// Kind reports whether the material is Diffuse or Reflective.
func (m Material) Kind() SurfaceKind {
	return m.kind
}

// Reflectivity returns the mirror reflectivity. Only meaningful when
// Kind() == Reflective.
func (m Material) Reflectivity() float64 {
	return m.reflectivity
}

// SurfaceProperties is the resolved, per-hit shading input: a color,
// albedo, and (for Reflective materials) a reflectivity.
type SurfaceProperties struct {
	Color        math3d.Color
	Albedo       float64
	Reflectivity *float64
}

// At resolves the material's surface properties at UV coordinates (u, v).
func (m Material) At(u, v float64) SurfaceProperties {
	sp := SurfaceProperties{
		Color:  m.Coloration.ColorAt(u, v),
		Albedo: m.Albedo,
	}
	if m.kind == Reflective {
		r := m.reflectivity
		sp.Reflectivity = &r
	}
	return sp
}
