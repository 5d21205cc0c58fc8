package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// defaultCameraConfig frames the large spheres standing on the ground sphere
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(5, 1, 3),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          70,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
	}
}

// NewDefaultScene creates a scene with a mirror, a green and a blue sphere on a grey ground
func NewDefaultScene(opts Options) *Scene {
	s := newScene(defaultCameraConfig(), renderer.DefaultSamplingConfig(), opts)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	mirror := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	green := material.NewLambertian(core.NewVec3(0.2, 0.6, 0.2))
	blue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.7))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(-4, 2, 0), 2, mirror),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, green),
		geometry.NewSphere(core.NewVec3(3, 1, 0), 1, blue),
	)

	return s
}
