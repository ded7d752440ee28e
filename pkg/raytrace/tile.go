package raytrace

import (
	"context"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/raytrace/pkg/render"
)

// DefaultTileSize is the edge length, in pixels, of a render tile.
const DefaultTileSize = 128

// RenderConfig configures the tiled parallel renderer.
type RenderConfig struct {
	// TileSize is the edge length of each square tile. DefaultTileSize is
	// used when <= 0.
	TileSize int
	// Workers is the size of the fixed worker pool. runtime.NumCPU() is
	// used when <= 0.
	Workers int
	// SuperSample enables 2x2-plus-center super-sampling: 5 primary rays
	// per pixel, averaged as RGBA bytes.
	SuperSample bool
}

// DefaultRenderConfig returns the conventional tile size and worker count.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{TileSize: DefaultTileSize, Workers: runtime.NumCPU()}
}

type tileJob struct {
	x0, y0, x1, y1 int
}

type tileResult struct {
	x0, y0 int
	w, h   int
	pixels []color.RGBA
}

// Render partitions the camera's frame into square tiles, shades them
// concurrently across a fixed worker pool, and blits each finished tile
// into a Framebuffer as it completes. A worker never suspends mid-tile: if
// ctx is canceled, in-flight tiles still finish and are blitted, but no
// new tiles are dispatched, and Render returns the cancellation error
// instead of the Framebuffer.
func Render(ctx context.Context, scene *Scene, cam *Camera, cfg RenderConfig) (*render.Framebuffer, error) {
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := buildTileJobs(cam.Width(), cam.Height(), tileSize)
	jobCh := make(chan tileJob, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	resultCh := make(chan tileResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for job := range jobCh {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				resultCh <- renderTile(scene, cam, job, cfg.SuperSample)
			}
			return nil
		})
	}

	fb := render.NewFramebuffer(cam.Width(), cam.Height())
	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range resultCh {
			blit(fb, res)
		}
	}()

	err := g.Wait()
	close(resultCh)
	<-done
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func buildTileJobs(width, height, tileSize int) []tileJob {
	var jobs []tileJob
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			x1 := x + tileSize
			if x1 > width {
				x1 = width
			}
			y1 := y + tileSize
			if y1 > height {
				y1 = height
			}
			jobs = append(jobs, tileJob{x0: x, y0: y, x1: x1, y1: y1})
		}
	}
	return jobs
}

func renderTile(scene *Scene, cam *Camera, job tileJob, superSample bool) tileResult {
	w := job.x1 - job.x0
	h := job.y1 - job.y0
	pixels := make([]color.RGBA, w*h)
	for y := job.y0; y < job.y1; y++ {
		for x := job.x0; x < job.x1; x++ {
			var c color.RGBA
			if superSample {
				c = shadeSuperSampled(scene, cam, x, y)
			} else {
				c = Cast(scene, cam.PrimaryRay(x, y), 0).ToRGBA8()
			}
			pixels[(y-job.y0)*w+(x-job.x0)] = c
		}
	}
	return tileResult{x0: job.x0, y0: job.y0, w: w, h: h, pixels: pixels}
}

// supersampleOffsets are the four corner offsets plus the pixel center.
var supersampleOffsets = [5][2]float64{
	{-0.25, -0.25}, {0.25, -0.25},
	{-0.25, 0.25}, {0.25, 0.25},
	{0, 0},
}

// shadeSuperSampled casts one ray per offset in supersampleOffsets and
// averages the resulting RGBA byte quadruples.
func shadeSuperSampled(scene *Scene, cam *Camera, x, y int) color.RGBA {
	var rSum, gSum, bSum int
	for _, off := range supersampleOffsets {
		ray := cam.primaryRayAt(float64(x)+0.5+off[0], float64(y)+0.5+off[1])
		c := Cast(scene, ray, 0).ToRGBA8()
		rSum += int(c.R)
		gSum += int(c.G)
		bSum += int(c.B)
	}
	n := len(supersampleOffsets)
	return color.RGBA{R: uint8(rSum / n), G: uint8(gSum / n), B: uint8(bSum / n), A: 0}
}

func blit(fb *render.Framebuffer, res tileResult) {
	for ty := 0; ty < res.h; ty++ {
		for tx := 0; tx < res.w; tx++ {
			fb.SetPixel(res.x0+tx, res.y0+ty, res.pixels[ty*res.w+tx])
		}
	}
}
