package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.HitList // Objects in the scene
	SamplingConfig renderer.SamplingConfig
}

// Options adjusts a built-in scene. Zero fields keep the scene's defaults.
type Options struct {
	Sampling    renderer.SamplingConfig // Size, sample count, depth and seed overrides
	Camera      renderer.CameraConfig   // Camera overrides
	TexturePath string                  // Image for textured scenes
	Logger      core.Logger             // Receives load warnings; nil discards them
}

// newScene builds an empty scene from defaults and caller overrides.
// A size override without an explicit aspect ratio reshapes the viewport to match.
func newScene(defaultCamera renderer.CameraConfig, defaultSampling renderer.SamplingConfig, opts Options) *Scene {
	samplingConfig := renderer.MergeSamplingConfig(defaultSampling, opts.Sampling)

	cameraConfig := renderer.MergeCameraConfig(defaultCamera, opts.Camera)
	if (opts.Sampling.Width != 0 || opts.Sampling.Height != 0) && opts.Camera.AspectRatio == 0 {
		cameraConfig.AspectRatio = float64(samplingConfig.Width) / float64(samplingConfig.Height)
	}

	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewHitList(),
		SamplingConfig: samplingConfig,
	}
}

// Add appends a shape to the world. Only call this while building the scene.
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the shapes to intersect
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetSamplingConfig returns the scene's sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
