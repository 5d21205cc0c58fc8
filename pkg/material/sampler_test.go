package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler replays a fixed sequence of values, wrapping around
type fixedSampler struct {
	values []float64
	draws  int
}

func newFixedSampler(values ...float64) *fixedSampler {
	return &fixedSampler{values: values}
}

func (s *fixedSampler) Get1D() float64 {
	v := s.values[s.draws%len(s.values)]
	s.draws++
	return v
}

func (s *fixedSampler) Get2D() core.Vec2 { return core.NewVec2(s.Get1D(), s.Get1D()) }
func (s *fixedSampler) Get3D() core.Vec3 { return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D()) }

// noSampler fails the test if any randomness is consumed
type noSampler struct{ t *testing.T }

func (s noSampler) Get1D() float64   { s.t.Fatal("unexpected Get1D"); return 0 }
func (s noSampler) Get2D() core.Vec2 { s.t.Fatal("unexpected Get2D"); return core.Vec2{} }
func (s noSampler) Get3D() core.Vec3 { s.t.Fatal("unexpected Get3D"); return core.Vec3{} }

func near(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}
