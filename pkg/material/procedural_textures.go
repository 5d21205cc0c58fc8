package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewGradientRaster creates a vertical gradient from top (row 0) to bottom
func NewGradientRaster(width, height int, top, bottom core.Vec3) *PixelRaster {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		color := top.Multiply(1.0 - t).Add(bottom.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewPixelRaster(width, height, pixels)
}

// NewUVDebugRaster creates a raster whose red channel is U and green channel is V,
// so that sampling it as a texture shows the surface parametrization
func NewUVDebugRaster(width, height int) *PixelRaster {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			v := 1.0 - float64(y)/float64(max(1, height-1))
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewPixelRaster(width, height, pixels)
}
