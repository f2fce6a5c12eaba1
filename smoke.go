package simplecanvas

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/simplecanvas/internal/slots"
)

// DefaultParticleRadius is the radius smoke particles are drawn with.
const DefaultParticleRadius = 5

// WindDirection is the side the wind pushes smoke towards.
type WindDirection uint8

const (
	// WindLeft subtracts the wind speed from every horizontal step.
	WindLeft WindDirection = iota
	// WindRight adds the wind speed to every horizontal step.
	WindRight
)

func (d WindDirection) String() string {
	switch d {
	case WindLeft:
		return "left"
	case WindRight:
		return "right"
	default:
		return fmt.Sprintf("WindDirection(%d)", d)
	}
}

// ParseWindDirection accepts "left" or "right", ignoring case and
// surrounding space. Anything else is an error.
func ParseWindDirection(s string) (WindDirection, error) {
	switch cases.Fold().String(strings.TrimSpace(s)) {
	case "left":
		return WindLeft, nil
	case "right":
		return WindRight, nil
	}
	return WindLeft, fmt.Errorf("simplecanvas: unknown wind direction %q", s)
}

// SmokeParams drives one smoke step.
//
// Start from DefaultSmokeParams: the zero value has Precision 0, which is
// valid but maximally jittery.
type SmokeParams struct {
	// OriginX and OriginY are where new particles appear.
	OriginX, OriginY float64

	// SpawnCount is the number of particles added per step.
	SpawnCount int

	// RiseSlope divides RiseRate to get the horizontal wander. Must not be 0.
	RiseSlope float64

	// RiseRate is the largest upward move of a particle per step.
	RiseRate float64

	Wind      WindDirection
	WindSpeed float64

	// Precision in [0, 1] damps the random part of each move.
	// 1 moves every particle by exactly RiseRate; 0 is maximal jitter.
	Precision float64
}

// DefaultSmokeParams returns params with left wind, no wind speed and a
// precision of 0.8.
func DefaultSmokeParams() SmokeParams {
	return SmokeParams{
		Wind:      WindLeft,
		WindSpeed: 0,
		Precision: 0.8,
	}
}

func (p SmokeParams) validate(op string) error {
	if err := requireFinite(op,
		numArg{"originX", p.OriginX},
		numArg{"originY", p.OriginY},
		numArg{"riseSlope", p.RiseSlope},
		numArg{"riseRate", p.RiseRate},
		numArg{"windSpeed", p.WindSpeed},
		numArg{"precision", p.Precision},
	); err != nil {
		return err
	}
	switch {
	case p.SpawnCount < 0:
		return invalid(op, "spawn count is negative (%d)", p.SpawnCount)
	case p.RiseSlope == 0:
		return invalid(op, "rise slope is zero")
	case p.Precision < 0 || p.Precision > 1:
		return invalid(op, "precision %v is outside [0, 1]", p.Precision)
	case p.Wind != WindLeft && p.Wind != WindRight:
		return invalid(op, "unknown wind direction %v", p.Wind)
	}
	return nil
}

// Particle is one puff of smoke.
type Particle struct {
	X, Y  float64
	Color color.RGBA
}

// ColorHex returns the particle color as "#rrggbb".
func (p Particle) ColorHex() string { return hexString(p.Color) }

// outside reports whether p has left the visible area. Particles are never
// culled for falling below the bottom edge.
func (p *Particle) outside(width float64) bool {
	return p.X < 0 || p.X > width || p.Y < 0
}

// SmokeEmitter owns the particle pool of one smoke effect.
// Use one emitter per effect; an emitter must not be stepped concurrently.
type SmokeEmitter struct {
	pool   *slots.Pool[Particle]
	rng    RandSource
	radius float64
	staged []Particle
	ticks  uint64
}

// NewSmokeEmitter creates an emitter with an empty pool.
func NewSmokeEmitter(opts ...EmitterOption) *SmokeEmitter {
	o := defaultEmitterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SmokeEmitter{
		pool:   slots.New[Particle](o.capacity),
		rng:    o.rng,
		radius: o.radius,
	}
}

// Step advances the effect by one tick and draws it on s:
//
//  1. particles outside the surface (x < 0, x > width, y < 0) are removed
//  2. p.SpawnCount particles with random colors are staged at the origin
//  3. every pooled particle drifts; staged ones stay at the origin
//  4. staged particles fill the earliest free slots, then grow the pool
//  5. every live particle is drawn as a filled circle
//
// Invalid params or a nil surface leave the emitter untouched and return an
// *OpError wrapping ErrInvalidArgument.
func (e *SmokeEmitter) Step(s Surface, p SmokeParams) error {
	const op = "drawSmoke"
	if s == nil {
		return invalid(op, "surface is nil")
	}
	if err := p.validate(op); err != nil {
		return err
	}

	culled := e.cull(float64(s.Width()))
	e.spawn(p)
	e.drift(p)
	for _, np := range e.staged {
		e.pool.Insert(np)
	}
	e.ticks++

	Logger().Debug("simplecanvas: smoke step",
		"tick", e.ticks,
		"culled", culled,
		"spawned", len(e.staged),
		"live", e.pool.Live(),
		"capacity", e.pool.Cap())

	return e.render(s)
}

// cull tombstones every particle outside the surface.
func (e *SmokeEmitter) cull(width float64) int {
	n := 0
	for i, pt := range e.pool.All() {
		if pt.outside(width) {
			e.pool.Remove(i)
			n++
		}
	}
	return n
}

// spawn stages new particles at the origin. The staging buffer is reused
// between steps.
func (e *SmokeEmitter) spawn(p SmokeParams) {
	e.staged = e.staged[:0]
	for i := 0; i < p.SpawnCount; i++ {
		e.staged = append(e.staged, Particle{
			X:     p.OriginX,
			Y:     p.OriginY,
			Color: e.randomColor(),
		})
	}
}

func (e *SmokeEmitter) randomColor() color.RGBA {
	return color.RGBA{
		R: e.randomByte(),
		G: e.randomByte(),
		B: e.randomByte(),
		A: 0xff,
	}
}

func (e *SmokeEmitter) randomByte() uint8 {
	v := math.Floor(e.rng.Float64() * 256)
	return uint8(min(max(v, 0), 255))
}

// drift moves every pooled particle. Random draws per particle, in order:
// horizontal factor, vertical factor, direction coin.
func (e *SmokeEmitter) drift(p SmokeParams) {
	for _, pt := range e.pool.All() {
		dx := p.RiseRate / p.RiseSlope * driftFactor(e.rng.Float64(), p.Precision)
		dy := p.RiseRate * driftFactor(e.rng.Float64(), p.Precision)

		if int(math.Floor(e.rng.Float64()*2))%2 == 0 {
			dx = -dx
		}

		if p.Wind == WindLeft {
			dx -= p.WindSpeed
		} else {
			dx += p.WindSpeed
		}

		pt.X += dx
		pt.Y -= dy
	}
}

// driftFactor maps a uniform draw u to the fraction of a full step a
// particle moves: 1 - floor(u * (100 - precision*100)) / 100.
func driftFactor(u, precision float64) float64 {
	return 1 - math.Floor(u*(100-precision*100))/100
}

func (e *SmokeEmitter) render(s Surface) error {
	for _, pt := range e.pool.All() {
		if err := fillCircle(s, pt.X, pt.Y, e.radius, pt.Color); err != nil {
			return fmt.Errorf("drawSmoke: render: %w", err)
		}
	}
	return nil
}

// Particles returns a copy of the live particles in pool order.
func (e *SmokeEmitter) Particles() []Particle {
	out := make([]Particle, 0, e.pool.Live())
	for _, pt := range e.pool.All() {
		out = append(out, *pt)
	}
	return out
}

// Live returns the number of live particles.
func (e *SmokeEmitter) Live() int { return e.pool.Live() }

// Capacity returns the number of pool slots, live or free. It never
// shrinks.
func (e *SmokeEmitter) Capacity() int { return e.pool.Cap() }

// Ticks returns the number of successful steps.
func (e *SmokeEmitter) Ticks() uint64 { return e.ticks }

// Reset removes every particle. Pool capacity is kept.
func (e *SmokeEmitter) Reset() {
	e.pool.Reset()
	e.ticks = 0
}

// DrawSmoke steps emitter e on the surface registered as id.
func (r *Registry) DrawSmoke(id string, e *SmokeEmitter, p SmokeParams) error {
	const op = "drawSmoke"
	if e == nil {
		return invalid(op, "emitter is nil")
	}
	if id == "" {
		return invalid(op, "surface id is empty")
	}
	if err := p.validate(op); err != nil {
		return err
	}
	s, err := r.resolve(op, id)
	if err != nil {
		return err
	}
	return e.Step(s, p)
}
