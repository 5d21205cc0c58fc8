package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const smallSphereRadius = 0.2

// layoutStream selects the random stream for scene layout. Pixel streams use
// indices below width*height, so this one never coincides with them.
const layoutStream uint64 = math.MaxUint64

// NewRandomScene creates the "final render" scene: a 22x22 grid of small
// randomly placed spheres around three large ones. The layout is drawn from
// the sampling seed, so the same seed always builds the same scene.
func NewRandomScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
	}
	s := newScene(cameraConfig, renderer.DefaultSamplingConfig(), opts)

	sampler := core.NewSeededSampler(core.DeriveSeed(s.SamplingConfig.Seed, layoutStream))

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	clearing := core.NewVec3(4, smallSphereRadius, 0)
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				smallSphereRadius,
				float64(b)+0.9*sampler.Get1D(),
			)

			// Keep the area around the large metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(randomColor(sampler))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(0.5, 1.0, sampler)
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				mat = glass
			}
			s.Add(geometry.NewSphere(center, smallSphereRadius, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// randomColor returns a diffuse albedo biased toward darker values
func randomColor(sampler core.Sampler) core.Vec3 {
	a := sampler.Get3D()
	b := sampler.Get3D()
	return a.MultiplyVec(b)
}
