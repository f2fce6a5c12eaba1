package simplecanvas

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestEmitterDefaults(t *testing.T) {
	e := NewSmokeEmitter()
	if e.radius != DefaultParticleRadius {
		t.Errorf("radius = %v, want %v", e.radius, DefaultParticleRadius)
	}
	if _, ok := e.rng.(globalRand); !ok {
		t.Errorf("rng = %T, want globalRand", e.rng)
	}
	if e.Live() != 0 || e.Capacity() != 0 {
		t.Errorf("new emitter live/cap = %d/%d, want 0/0", e.Live(), e.Capacity())
	}
}

func TestWithRand(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	if e := NewSmokeEmitter(WithRand(r)); e.rng != RandSource(r) {
		t.Errorf("WithRand: rng = %T, want injected source", e.rng)
	}
	if e := NewSmokeEmitter(WithRand(nil)); e.rng == nil {
		t.Error("WithRand(nil) cleared the source")
	}
}

func TestWithRadius(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.5, 2.5},
		{0, DefaultParticleRadius},
		{-3, DefaultParticleRadius},
		{math.Inf(1), DefaultParticleRadius},
		{math.NaN(), DefaultParticleRadius},
	}
	for _, tt := range tests {
		if got := NewSmokeEmitter(WithRadius(tt.in)).radius; got != tt.want {
			t.Errorf("WithRadius(%v) radius = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithCapacityDoesNotAddSlots(t *testing.T) {
	e := NewSmokeEmitter(WithCapacity(128), WithCapacity(-1))
	if e.Capacity() != 0 {
		t.Errorf("Capacity() = %d, want 0 before any spawn", e.Capacity())
	}
}
