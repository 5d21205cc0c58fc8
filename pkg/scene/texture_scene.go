package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureScene creates a scene demonstrating textures: a checkered ground,
// an image-mapped globe, a glass sphere and a brushed metal sphere.
// Without a texture path the globe shows a UV debug pattern.
func NewTextureScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 2, 8),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.0, // No DOF for texture clarity
		FocusDistance: 8,
	}
	s := newScene(cameraConfig, renderer.DefaultSamplingConfig(), opts)

	checkers := material.NewSolidCheckers(
		core.NewVec3(0.2, 0.3, 0.1), // Dark green
		core.NewVec3(0.9, 0.9, 0.9), // White
	)

	var globe material.ColorSource
	if opts.TexturePath != "" {
		globe = loaders.LoadImageTexture(opts.TexturePath, loaders.DefaultLoadOptions(), opts.Logger)
	} else {
		globe = material.NewImageTexture(material.NewUVDebugRaster(256, 128))
	}

	sky := material.NewImageTexture(material.NewGradientRaster(64, 64,
		core.NewVec3(0.9, 0.4, 0.2), // Orange (top)
		core.NewVec3(0.2, 0.4, 0.9), // Blue (bottom)
	))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checkers)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewTexturedLambertian(globe)),
		geometry.NewSphere(core.NewVec3(-2.2, 0.7, 0.5), 0.7, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(2.2, 0.7, 0.5), 0.7, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.2)),
		geometry.NewSphere(core.NewVec3(0.9, 0.3, 1.8), 0.3, material.NewTexturedLambertian(sky)),
	)

	return s
}
