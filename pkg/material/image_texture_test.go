package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestImageTextureSampling(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)

	// Row 0 is the top of the image
	raster := NewPixelRaster(2, 2, []core.Vec3{
		white, red,
		green, blue,
	})
	texture := NewImageTexture(raster)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left", core.NewVec2(0, 0), green},
		{"bottom-right", core.NewVec2(0.75, 0.25), blue},
		{"top-left", core.NewVec2(0.25, 0.75), white},
		{"top-right corner clamps to last pixel", core.NewVec2(1, 1), red},
		{"out of range clamps", core.NewVec2(-3, 7), white},
		{"far out of range clamps", core.NewVec2(5, -5), blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texture.Evaluate(tt.uv, core.Vec3{})
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFailedImageTextureIsCyan(t *testing.T) {
	texture := NewFailedImageTexture()
	if !texture.Failed() {
		t.Error("Expected Failed() to be true")
	}

	for _, uv := range []core.Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: 1, Y: 1}} {
		if got := texture.Evaluate(uv, core.NewVec3(1, 2, 3)); got != core.NewVec3(0, 1, 1) {
			t.Errorf("Expected cyan at %v, got %v", uv, got)
		}
	}
}

func TestEmptyRasterIsTreatedAsFailed(t *testing.T) {
	tests := []struct {
		name   string
		raster Raster
	}{
		{"nil", nil},
		{"zero by zero", NewPixelRaster(0, 0, nil)},
		{"zero height", NewPixelRaster(4, 0, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texture := NewImageTexture(tt.raster)
			if !texture.Failed() {
				t.Error("Expected empty raster to give the failed texture")
			}
			if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != MissingTextureColor {
				t.Errorf("Expected %v, got %v", MissingTextureColor, got)
			}
		})
	}
}

func TestCheckersEvaluate(t *testing.T) {
	odd := core.NewVec3(0.2, 0.3, 0.1)
	even := core.NewVec3(0.9, 0.9, 0.9)
	checkers := NewSolidCheckers(odd, even)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"all positive sines", core.NewVec3(0.1, 0.1, 0.1), even},
		{"one negative sine", core.NewVec3(0.1, -0.1, 0.1), odd},
		{"two negative sines", core.NewVec3(-0.1, -0.1, 0.1), even},
		{"zero product counts as even", core.NewVec3(0, 0.1, 0.1), even},
		{"next cell along x", core.NewVec3(0.1+3.14159/10, 0.1, 0.1), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// UV must not affect the pattern
			for _, uv := range []core.Vec2{{X: 0, Y: 0}, {X: 0.7, Y: 0.2}} {
				if got := checkers.Evaluate(uv, tt.point); got != tt.expected {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestSolidColorIgnoresInputs(t *testing.T) {
	color := core.NewVec3(0.1, 0.2, 0.3)
	solid := NewSolidColor(color)
	if got := solid.Evaluate(core.NewVec2(0.9, 0.1), core.NewVec3(100, -4, 2)); got != color {
		t.Errorf("Expected %v, got %v", color, got)
	}
}

func TestProceduralRasters(t *testing.T) {
	gradient := NewGradientRaster(4, 3, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	if gradient.At(2, 0) != core.NewVec3(1, 1, 1) || gradient.At(2, 2) != core.NewVec3(0, 0, 0) {
		t.Errorf("Gradient endpoints wrong: top %v bottom %v", gradient.At(2, 0), gradient.At(2, 2))
	}

	debug := NewUVDebugRaster(3, 3)
	texture := NewImageTexture(debug)
	// Bottom-left of the UV debug image is (u=0, v=0)
	if got := texture.Evaluate(core.NewVec2(0, 0), core.Vec3{}); got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected (0,0,0) at uv origin, got %v", got)
	}
	if got := texture.Evaluate(core.NewVec2(1, 1), core.Vec3{}); got != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected (1,1,0) at uv (1,1), got %v", got)
	}
}
