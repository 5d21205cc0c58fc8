package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetalPerfectMirrorIsDeterministic(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.6, 0.5)
	metal := NewMetal(albedo, 0.0)

	tests := []struct {
		name      string
		direction core.Vec3
		normal    core.Vec3
	}{
		{"45 degrees", core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0)},
		{"normal incidence", core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1)},
		{"tilted normal", core.NewVec3(0.2, -1, 0.4), core.NewVec3(0.3, 1, 0).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 1, 0), tt.direction)
			hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: tt.normal, FrontFace: true}

			// noSampler fails the test if any random number is drawn
			result, scattered := metal.Scatter(ray, hit, noSampler{t})
			if !scattered {
				t.Fatal("Mirror reflection above the surface should scatter")
			}

			unit := tt.direction.Normalize()
			expected := unit.Subtract(tt.normal.Multiply(2 * unit.Dot(tt.normal)))
			if !near(result.Scattered.Direction, expected) {
				t.Errorf("Expected mirror direction %v, got %v", expected, result.Scattered.Direction)
			}
			if result.Attenuation != albedo {
				t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
			}
		})
	}
}

func TestMetalFuzzBelowSurfaceIsAbsorbed(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)

	// Grazing ray; the fuzz offset (0, -0.9, 0) pushes it under the surface
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	_, scattered := metal.Scatter(ray, hit, newFixedSampler(0.5, 0.05, 0.5))
	if scattered {
		t.Error("Expected fuzzed reflection below the surface to be absorbed")
	}
}

func TestMetalFuzzPerturbsReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	// Unit-sphere sample (0.5, 0, 0) scaled by fuzz 0.5
	result, scattered := metal.Scatter(ray, hit, newFixedSampler(0.75, 0.5, 0.5))
	if !scattered {
		t.Fatal("Expected scatter")
	}
	expected := core.NewVec3(0.25, 1, 0)
	if !near(result.Scattered.Direction, expected) {
		t.Errorf("Expected %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestNewMetalClampsFuzz(t *testing.T) {
	tests := []struct {
		input, expected float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{2.0, 1.0},
	}

	for _, tt := range tests {
		metal := NewMetal(core.NewVec3(1, 1, 1), tt.input)
		if math.Abs(metal.Fuzzness-tt.expected) > 1e-12 {
			t.Errorf("NewMetal(fuzz=%v): expected %v, got %v", tt.input, tt.expected, metal.Fuzzness)
		}
	}
}
