package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// LoadOptions controls how texture images are decoded
type LoadOptions struct {
	MaxTextureSize  int  // Longest allowed side in pixels; larger images are down-sampled (0 = no limit)
	AutoOrientation bool // Apply EXIF orientation when decoding JPEG
}

// DefaultLoadOptions returns sensible default values
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		MaxTextureSize:  2048,
		AutoOrientation: true,
	}
}

// ImageData contains loaded image data as Vec3 color array.
// Row 0 is the top of the image and channels are in [0, 1].
type ImageData struct {
	W      int
	H      int
	Pixels []core.Vec3
}

// Width returns the image width in pixels
func (d *ImageData) Width() int { return d.W }

// Height returns the image height in pixels
func (d *ImageData) Height() int { return d.H }

// At returns the color of pixel (x, y)
func (d *ImageData) At(x, y int) core.Vec3 {
	return d.Pixels[y*d.W+x]
}

// LoadImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file into a Vec3 color array
func LoadImage(filename string, opts LoadOptions) (*ImageData, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(opts.AutoOrientation))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return FromImage(img, opts), nil
}

// FromImage converts a decoded image, applying the size limit in opts
func FromImage(img image.Image, opts LoadOptions) *ImageData {
	if limit := opts.MaxTextureSize; limit > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > limit || bounds.Dy() > limit {
			img = resize.Thumbnail(uint(limit), uint(limit), img, resize.Bilinear)
		}
	}

	nrgba := imaging.Clone(img)
	width := nrgba.Bounds().Dx()
	height := nrgba.Bounds().Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			// 8-bit channels map to [0, 1] by dividing by 255
			pixels[y*width+x] = core.NewVec3(
				float64(row[x*4])/255.0,
				float64(row[x*4+1])/255.0,
				float64(row[x*4+2])/255.0,
			)
		}
	}

	return &ImageData{
		W:      width,
		H:      height,
		Pixels: pixels,
	}
}

// LoadImageTexture loads filename as an image texture. Decode failures are
// logged and produce the failed-texture sentinel instead of an error.
func LoadImageTexture(filename string, opts LoadOptions, logger core.Logger) *material.ImageTexture {
	logger = core.LoggerOrNop(logger)

	data, err := LoadImage(filename, opts)
	if err != nil {
		logger.Printf("Warning: %v, using missing texture color\n", err)
		return material.NewFailedImageTexture()
	}

	logger.Printf("Loaded texture %s (%dx%d)\n", filename, data.W, data.H)
	return material.NewImageTexture(data)
}
