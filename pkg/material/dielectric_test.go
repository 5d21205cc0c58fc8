package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectricNormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)

	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0.5),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1.5,
		FrontFace: true,
		Material:  glass,
	}

	// At cos=1 Schlick gives exactly R0 = ((1-1.5)/(1+1.5))^2 = 0.04
	reflectance := Reflectance(1.0, 1.5)
	if math.Abs(reflectance-0.04) > 1e-12 {
		t.Fatalf("Expected reflectance 0.04, got %v", reflectance)
	}

	tests := []struct {
		name     string
		sample   float64
		expected core.Vec3
	}{
		{"reflect below reflectance", 0.039, core.NewVec3(0, 0, 1)},
		{"refract above reflectance", 0.041, core.NewVec3(0, 0, -1)},
		{"refract at high sample", 0.9, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := newFixedSampler(tt.sample)
			result, scattered := glass.Scatter(ray, hit, sampler)
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}
			if sampler.draws != 1 {
				t.Errorf("Expected exactly one sample drawn, got %d", sampler.draws)
			}
			if !near(result.Scattered.Direction, tt.expected) {
				t.Errorf("Expected direction %v, got %v", tt.expected, result.Scattered.Direction)
			}
			if result.Scattered.Origin != hit.Point {
				t.Errorf("Expected origin %v, got %v", hit.Point, result.Scattered.Origin)
			}
			if result.Attenuation != core.NewVec3(1, 1, 1) {
				t.Errorf("Expected white attenuation, got %v", result.Attenuation)
			}
		})
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving the glass 60 degrees off the normal: 1.5 * sin(60°) > 1
	sin60 := math.Sqrt(3) / 2
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(sin60, -0.5, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}

	// Total internal reflection draws no sample
	result, scattered := glass.Scatter(ray, hit, noSampler{t})
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}

	expected := core.NewVec3(sin60, 0.5, 0)
	if !near(result.Scattered.Direction, expected) {
		t.Errorf("Expected mirror direction %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestDielectricRefractionFollowsSnell(t *testing.T) {
	const ior = 1.5
	glass := NewDielectric(ior)

	incoming := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 1, 0), incoming)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	result, _ := glass.Scatter(ray, hit, newFixedSampler(0.999))
	refracted := result.Scattered.Direction

	if math.Abs(refracted.Length()-1) > 1e-9 {
		t.Errorf("Refracted direction should be unit length, got %v", refracted.Length())
	}
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", refracted)
	}

	sinIn := math.Abs(incoming.X)
	sinOut := math.Abs(refracted.X)
	if math.Abs(sinIn/ior-sinOut) > 1e-9 {
		t.Errorf("Snell's law violated: sinIn/ior=%v sinOut=%v", sinIn/ior, sinOut)
	}
}

func TestDielectricBothBranchesReachable(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0.5), Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	sampler := core.NewSeededSampler(42)
	reflections, refractions := 0, 0
	const n = 20000
	for i := 0; i < n; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Z > 0 {
			reflections++
		} else {
			refractions++
		}
	}

	if reflections == 0 || refractions == 0 {
		t.Fatalf("Expected both branches, got %d reflections and %d refractions", reflections, refractions)
	}

	ratio := float64(reflections) / n
	if math.Abs(ratio-0.04) > 0.01 {
		t.Errorf("Reflection ratio %v far from Schlick reflectance 0.04", ratio)
	}
}

func TestReflectanceGrazing(t *testing.T) {
	if r := Reflectance(0, 1.5); math.Abs(r-1) > 1e-12 {
		t.Errorf("Expected full reflectance at grazing angle, got %v", r)
	}
}
