package simplecanvas

// EmitterOption configures a SmokeEmitter during creation.
//
// Example:
//
//	// Deterministic emitter for tests or replays
//	e := simplecanvas.NewSmokeEmitter(
//	    simplecanvas.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
type EmitterOption func(*emitterOptions)

type emitterOptions struct {
	rng      RandSource
	radius   float64
	capacity int
}

func defaultEmitterOptions() emitterOptions {
	return emitterOptions{
		rng:      globalRand{},
		radius:   DefaultParticleRadius,
		capacity: 64,
	}
}

// WithRand sets the random source used for particle colors and drift.
// A nil source keeps the default.
func WithRand(r RandSource) EmitterOption {
	return func(o *emitterOptions) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithRadius sets the radius particles are drawn with. Non-positive or
// non-finite values keep the default of 5.
func WithRadius(r float64) EmitterOption {
	return func(o *emitterOptions) {
		if r > 0 && isFinite(r) {
			o.radius = r
		}
	}
}

// WithCapacity preallocates room for n particles.
func WithCapacity(n int) EmitterOption {
	return func(o *emitterOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}
