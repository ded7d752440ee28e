package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
)

// Texture holds a 2D image and implements the core ray tracer's
// TextureSampler capability (Width, Height, GetPixel). Wrap-repeat
// addressing of UV coordinates is performed by the caller
// (raytrace.TextureColoration), not by Texture itself.
type Texture struct {
	width  int
	height int
	Pixels []color.RGBA // Row-major pixel data
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// NewTexture creates an empty texture with the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{
		width:  width,
		height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// LoadTexture loads a texture from an image file (PNG or JPEG).
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	tex := NewTexture(width, height)
	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			// RGBA returns 16-bit values, scale to 8-bit
			tex.SetPixel(x, y, color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			})
		}
	}

	return tex, nil
}

// NewCheckerTexture creates a procedural checkerboard texture, useful for
// demo scenes that don't want to depend on an external image file.
func NewCheckerTexture(width, height, checkSize int, c1, c2 color.RGBA) *Texture {
	tex := NewTexture(width, height)
	for y := range height {
		for x := range width {
			cx := x / checkSize
			cy := y / checkSize
			if (cx+cy)%2 == 0 {
				tex.SetPixel(x, y, c1)
			} else {
				tex.SetPixel(x, y, c2)
			}
		}
	}
	return tex
}

// SetPixel sets a pixel in the texture.
func (t *Texture) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.Pixels[y*t.width+x] = c
}

// GetPixel returns the pixel at (x, y) with bounds checking.
func (t *Texture) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return color.RGBA{}
	}
	return t.Pixels[y*t.width+x]
}
