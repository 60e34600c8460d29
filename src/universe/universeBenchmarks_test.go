package universe

import (
	"math/rand/v2"
	"testing"
)

const (
	width  = 200
	height = 200
)

func newBenchStepper(b *testing.B) *Stepper {
	s := NewStepper(height, width)
	s.Current().Randomize(DefDensity, rand.New(rand.NewPCG(1, 0)))
	b.ReportAllocs()
	b.ResetTimer()
	return s
}

func Benchmark_Step(b *testing.B) {
	s := newBenchStepper(b)
	for i := 0; i < b.N; i++ {
		s.Step()
	}
}

func Benchmark_CountLiveNeighbors(b *testing.B) {
	s := newBenchStepper(b)
	g := s.Current()
	for i := 0; i < b.N; i++ {
		CountLiveNeighbors(g, i%height, i%width)
	}
}

func Benchmark_Controller(b *testing.B) {
	o := DefaultOptions
	o.Rows, o.Cols, o.Seed = height, width, 1
	c := NewController(&o)
	c.Randomize()
	c.ToggleRun()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Tick()
	}
}
