package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Errorf("Empty pixel should be black, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if expected := core.NewVec3(0.5, 0.5, 0); ps.GetColor() != expected {
		t.Errorf("Expected %v, got %v", expected, ps.GetColor())
	}

	// Averages are readable straight off a returned value
	if got := (PixelStats{ColorAccum: core.NewVec3(2, 4, 8), SampleCount: 4}).GetColor(); got != core.NewVec3(0.5, 1, 2) {
		t.Errorf("Expected (0.5,1,2), got %v", got)
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	fill := func(c color.RGBA) *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		return img
	}

	tests := []struct {
		name     string
		img      *image.RGBA
		expected float64
	}{
		{"black", fill(color.RGBA{0, 0, 0, 255}), 0},
		{"white", fill(color.RGBA{255, 255, 255, 255}), 1},
		{"pure green", fill(color.RGBA{0, 255, 0, 255}), 0.7152},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAverageLuminance(tt.img); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRenderStatsMerge(t *testing.T) {
	stats := RenderStats{Tiles: 2}
	stats.Merge(RenderStats{TotalPixels: 10, TotalSamples: 40})
	stats.Merge(RenderStats{TotalPixels: 6, TotalSamples: 24})

	if stats.TotalPixels != 16 || stats.TotalSamples != 64 || stats.Tiles != 2 {
		t.Errorf("Unexpected merged stats %+v", stats)
	}
	if stats.AverageSamples() != 4 {
		t.Errorf("Expected 4 average samples, got %v", stats.AverageSamples())
	}
}
