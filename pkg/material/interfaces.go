package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how a ray continues after striking a surface.
// Implementations are immutable and shared by every hit and every worker.
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false when
	// the ray is absorbed and the path contributes no radiance.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always opposing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // True when the ray arrived from outside the surface
	UV        core.Vec2 // Surface coordinates
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
