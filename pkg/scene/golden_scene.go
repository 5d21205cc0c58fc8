package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewGoldenScene creates a tiny regression scene: one diffuse sphere in
// front of a pinhole camera, one sample and one bounce per pixel
func NewGoldenScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   2,
		Aperture:      0,
		FocusDistance: 1,
	}
	samplingConfig := renderer.SamplingConfig{
		Width:           32,
		Height:          16,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		Seed:            42,
	}
	s := newScene(cameraConfig, samplingConfig, opts)

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	return s
}
