package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Raster is a decoded image. Row 0 is the top of the image and channel
// values are already scaled to [0, 1].
type Raster interface {
	Width() int
	Height() int
	At(x, y int) core.Vec3
}

// MissingTextureColor is returned by a texture whose image failed to decode
var MissingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	raster Raster // nil when decoding failed
}

// NewImageTexture creates a new image texture. A nil or empty raster has
// nothing to sample and gives the failed-decode texture.
func NewImageTexture(raster Raster) *ImageTexture {
	if raster == nil || raster.Width() <= 0 || raster.Height() <= 0 {
		return NewFailedImageTexture()
	}
	return &ImageTexture{raster: raster}
}

// NewFailedImageTexture creates a texture for an image that could not be
// decoded. It always evaluates to MissingTextureColor.
func NewFailedImageTexture() *ImageTexture {
	return &ImageTexture{}
}

// Failed reports whether the texture is the decode-failure placeholder
func (t *ImageTexture) Failed() bool {
	return t.raster == nil
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.raster == nil {
		return MissingTextureColor
	}

	width := t.raster.Width()
	height := t.raster.Height()

	u := clamp01(uv.X)
	// V=0 is bottom, V=1 is top; image rows run top to bottom
	v := 1.0 - clamp01(uv.Y)

	x := min(int(u*float64(width)), width-1)
	y := min(int(v*float64(height)), height-1)

	return t.raster.At(x, y)
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}

// PixelRaster is an in-memory Raster stored row-major: Pixels[y*W + x]
type PixelRaster struct {
	W, H   int
	Pixels []core.Vec3
}

// NewPixelRaster wraps a row-major pixel slice
func NewPixelRaster(width, height int, pixels []core.Vec3) *PixelRaster {
	return &PixelRaster{W: width, H: height, Pixels: pixels}
}

func (r *PixelRaster) Width() int  { return r.W }
func (r *PixelRaster) Height() int { return r.H }

// At returns the pixel at column x, row y
func (r *PixelRaster) At(x, y int) core.Vec3 {
	return r.Pixels[y*r.W+x]
}
