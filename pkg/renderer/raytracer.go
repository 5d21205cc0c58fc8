package renderer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for every traced ray,
// so a bounce never re-hits the surface it left from
const ShadowAcneEpsilon = 0.001

var (
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
	skyTop    = core.NewVec3(0.5, 0.75, 1.0)
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed; each pixel derives its own stream from it
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           426,
		Height:          239, // 16:9
		SamplesPerPixel: 25,
		MaxDepth:        10,
		Seed:            42,
	}
}

// MergeSamplingConfig returns defaults with every non-zero field of override applied
func MergeSamplingConfig(defaults, override SamplingConfig) SamplingConfig {
	result := defaults
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Validate checks that every size and count is positive
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// Scene is the read-only view of a built scene that rendering needs
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetSamplingConfig() SamplingConfig
}

// Raytracer estimates radiance along rays. It holds no mutable state and is
// shared by all workers.
type Raytracer struct {
	camera *Camera
	world  geometry.Shape
	config SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		camera: scene.GetCamera(),
		world:  scene.GetWorld(),
		config: scene.GetSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration. Not safe to call
// during a render.
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// GetSamplingConfig returns the active sampling configuration
func (rt *Raytracer) GetSamplingConfig() SamplingConfig {
	return rt.config
}

// RayColor returns the radiance carried back along r after depth bounces.
// Paths are cut off (black) once depth reaches MaxDepth.
func (rt *Raytracer) RayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	if depth >= rt.config.MaxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := rt.world.Hit(r, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return BackgroundColor(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth+1, sampler))
}

// BackgroundColor returns the sky gradient, the only light source:
// white looking straight down, sky blue looking straight up
func BackgroundColor(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}

// PixelSeed derives the random stream seed for one pixel, so a pixel's
// samples do not depend on which worker renders it. Streams of different
// base seeds do not overlap.
func PixelSeed(seed int64, x, y, width int) int64 {
	return core.DeriveSeed(seed, uint64(y)*uint64(width)+uint64(x))
}

// SamplePixel accumulates SamplesPerPixel estimates for image pixel (x, y).
// Row y = 0 is the top of the image, which is camera t near 1.
func (rt *Raytracer) SamplePixel(x, y int) PixelStats {
	sampler := core.NewSeededSampler(PixelSeed(rt.config.Seed, x, y, rt.config.Width))
	row := rt.config.Height - 1 - y

	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		s := (float64(x) + jitter.X) / float64(rt.config.Width)
		t := (float64(row) + jitter.Y) / float64(rt.config.Height)

		ray := rt.camera.GetRay(s, t, sampler)
		ps.AddSample(rt.RayColor(ray, 0, sampler))
	}

	return ps
}

// vec3ToColor converts an averaged linear color to 8-bit RGBA:
// gamma 2 (square root), clamp to [0, 0.999], scale by 256
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: quantize(colorVec.X),
		G: quantize(colorVec.Y),
		B: quantize(colorVec.Z),
		A: 255,
	}
}

func quantize(c float64) uint8 {
	return uint8(256 * mgl64.Clamp(c, 0, 0.999))
}
