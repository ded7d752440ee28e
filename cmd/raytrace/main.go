// raytrace - Offline CPU ray tracer demo
//
// Renders a built-in demo scene, or a loaded OBJ/glTF mesh, to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/raytrace/pkg/math3d"
	"github.com/taigrr/raytrace/pkg/meshio"
	"github.com/taigrr/raytrace/pkg/raytrace"
	"github.com/taigrr/raytrace/pkg/render"
)

var (
	outPath     = flag.String("out", "render.png", "Output PNG path")
	width       = flag.Int("width", 800, "Image width in pixels")
	height      = flag.Int("height", 600, "Image height in pixels")
	fov         = flag.Float64("fov", raytrace.DefaultFOVDegrees, "Vertical field of view, in degrees")
	tileSize    = flag.Int("tile", raytrace.DefaultTileSize, "Render tile edge length, in pixels")
	workers     = flag.Int("workers", 0, "Worker pool size (0 = number of CPUs)")
	superSample = flag.Bool("supersample", false, "Enable 2x2-plus-center super-sampling")
	scene       = flag.String("scene", "shadow", "Built-in demo scene: sphere, shadow, mirror, texture (ignored if -mesh is set)")
	meshPath    = flag.String("mesh", "", "Path to an OBJ or glTF/GLB mesh to render instead of a built-in scene")
	texturePath = flag.String("texture", "", "Path to an image file to texture the -scene=texture sphere with (default: a procedural checkerboard)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "raytrace - Offline CPU ray tracer demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raytrace [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("raytrace: %v", err)
	}
}

func run() error {
	cam, err := raytrace.NewCamera(raytrace.CameraConfig{
		Width:      *width,
		Height:     *height,
		FOVDegrees: *fov,
	})
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	sc, err := buildScene()
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	cfg := raytrace.DefaultRenderConfig()
	cfg.TileSize = *tileSize
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.SuperSample = *superSample

	log.Printf("rendering %dx%d (tile=%d workers=%d supersample=%v)", *width, *height, cfg.TileSize, cfg.Workers, cfg.SuperSample)

	fb, err := raytrace.Render(context.Background(), sc, cam, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := fb.SavePNG(*outPath); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	log.Printf("wrote %s", *outPath)
	return nil
}

func buildScene() (*raytrace.Scene, error) {
	if *meshPath != "" {
		return buildMeshScene(*meshPath)
	}
	switch *scene {
	case "sphere":
		return buildSphereScene(), nil
	case "mirror":
		return buildMirrorScene(), nil
	case "shadow":
		return buildShadowScene(), nil
	case "texture":
		return buildTextureScene()
	default:
		return nil, fmt.Errorf("unknown demo scene %q (want sphere, shadow, mirror, or texture)", *scene)
	}
}

func buildSphereScene() *raytrace.Scene {
	b := raytrace.NewSceneBuilder()
	red := raytrace.NewDiffuseMaterial(raytrace.FlatColoration{Color: math3d.NewColor(0.8, 0.2, 0.2)}, 0.8)
	b.AddObject(raytrace.NewObject(raytrace.NewSphere(1), red, raytrace.At(math3d.V3(0, 0, -5))))
	b.AddLight(raytrace.NewDirectionalLight(math3d.V3(-1, -1, -1), math3d.White(), 1.0))
	return b.Build()
}

func buildShadowScene() *raytrace.Scene {
	b := raytrace.NewSceneBuilder()
	sphereMat := raytrace.NewDiffuseMaterial(raytrace.FlatColoration{Color: math3d.NewColor(0.3, 0.6, 0.9)}, 0.7)
	groundMat := raytrace.NewDiffuseMaterial(raytrace.FlatColoration{Color: math3d.NewColor(0.5, 0.5, 0.5)}, 0.8)

	b.AddObject(raytrace.NewObject(raytrace.NewSphere(1), sphereMat, raytrace.At(math3d.V3(0, 1, -5))))
	// The plane's stored normal is its back side; a floor visible from
	// above stores Down and reports Up as its shading normal.
	b.AddObject(raytrace.NewObject(raytrace.NewPlane(math3d.V3(0, -1, 0)), groundMat, raytrace.At(math3d.V3(0, 0, 0))))
	b.AddLight(raytrace.NewDirectionalLight(math3d.V3(-0.5, -1, -0.3), math3d.White(), 1.0))
	return b.Build()
}

func buildMirrorScene() *raytrace.Scene {
	b := raytrace.NewSceneBuilder()
	mirror := raytrace.NewReflectiveMaterial(raytrace.FlatColoration{Color: math3d.NewColor(0.9, 0.9, 0.9)}, 0.3, 0.85)
	groundMat := raytrace.NewDiffuseMaterial(raytrace.FlatColoration{Color: math3d.NewColor(0.4, 0.4, 0.45)}, 0.8)

	b.AddObject(raytrace.NewObject(raytrace.NewSphere(1), mirror, raytrace.At(math3d.V3(0, 1, -5))))
	b.AddObject(raytrace.NewObject(raytrace.NewPlane(math3d.V3(0, -1, 0)), groundMat, raytrace.At(math3d.V3(0, 0, 0))))
	b.AddLight(raytrace.NewDirectionalLight(math3d.V3(-0.5, -1, -0.3), math3d.White(), 1.0))
	return b.Build()
}

// buildTextureScene renders a sphere whose Coloration samples a
// render.Texture: -texture loads an image file, otherwise a procedural
// checkerboard is used so the demo has no external asset dependency.
func buildTextureScene() (*raytrace.Scene, error) {
	var tex *render.Texture
	if *texturePath != "" {
		loaded, err := render.LoadTexture(*texturePath)
		if err != nil {
			return nil, fmt.Errorf("load texture: %w", err)
		}
		tex = loaded
	} else {
		tex = render.NewCheckerTexture(256, 256, 32,
			color.RGBA{R: 220, G: 220, B: 220, A: 255},
			color.RGBA{R: 40, G: 40, B: 40, A: 255})
	}

	b := raytrace.NewSceneBuilder()
	mat := raytrace.NewDiffuseMaterial(raytrace.TextureColoration{Sampler: tex}, 0.8)
	b.AddObject(raytrace.NewObject(raytrace.NewSphere(1), mat, raytrace.At(math3d.V3(0, 0, -5))))
	b.AddLight(raytrace.NewDirectionalLight(math3d.V3(-0.5, -1, -0.3), math3d.White(), 1.0))
	return b.Build(), nil
}

func buildMeshScene(path string) (*raytrace.Scene, error) {
	src, err := loadMeshSource(path)
	if err != nil {
		return nil, err
	}

	mesh, err := raytrace.BuildMesh(src, raytrace.At(math3d.V3(0, 0, -5)), raytrace.DefaultLeafThreshold)
	if err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}

	b := raytrace.NewSceneBuilder()
	meshMat := raytrace.NewDiffuseMaterial(raytrace.FlatColoration{Color: math3d.NewColor(0.7, 0.7, 0.7)}, 0.8)
	b.AddObject(raytrace.NewObject(mesh, meshMat, raytrace.Identity()))
	b.AddLight(raytrace.NewDirectionalLight(math3d.V3(-0.5, -1, -0.3), math3d.White(), 1.0))
	return b.Build(), nil
}

func loadMeshSource(path string) (raytrace.MeshSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return meshio.LoadOBJ(path)
	case ".glb", ".gltf":
		return meshio.LoadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q (use .obj, .glb, or .gltf)", path)
	}
}
