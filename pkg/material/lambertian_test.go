package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertianScatter(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.3, 0.3)
	lambertian := NewLambertian(albedo)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// (0, 0.5) maps to the unit vector (1, 0, 0)
	result, scattered := lambertian.Scatter(ray, hit, newFixedSampler(0, 0.5))
	if !scattered {
		t.Fatal("Lambertian should always scatter")
	}

	if result.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
	}
	if result.Scattered.Origin != hit.Point {
		t.Errorf("Scattered ray should start at hit point, got %v", result.Scattered.Origin)
	}
	if !near(result.Scattered.Direction, core.NewVec3(1, 1, 0)) {
		t.Errorf("Expected direction normal + unit vector (1,1,0), got %v", result.Scattered.Direction)
	}
}

func TestLambertianScatterStaysAboveSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		result, _ := lambertian.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v points into the surface", result.Scattered.Direction)
		}
	}
}

func TestTexturedLambertianUsesHitCoordinates(t *testing.T) {
	odd := core.NewVec3(1, 0, 0)
	even := core.NewVec3(0, 0, 1)
	lambertian := NewTexturedLambertian(NewSolidCheckers(odd, even))

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"positive octant", core.NewVec3(0.1, 0.1, 0.1), even},
		{"negative x", core.NewVec3(-0.1, 0.1, 0.1), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{Point: tt.point, Normal: core.NewVec3(0, 1, 0), FrontFace: true}
			result, _ := lambertian.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, newFixedSampler(0.3, 0.7))
			if result.Attenuation != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result.Attenuation)
			}
		})
	}
}
