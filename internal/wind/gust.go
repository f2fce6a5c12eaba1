// Package wind produces a wind that swings smoothly between blowing left
// and blowing right, for hosts that animate smoke with evolving
// parameters.
package wind

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/simplecanvas"
)

// Gust eases the signed wind speed from -Max to +Max and back again,
// one leg per Period seconds. Negative speeds blow left.
type Gust struct {
	max    float32
	period float32
	tween  *gween.Tween
	rising bool
	value  float32
}

// NewGust creates a gust starting at full left wind. A non-positive
// period is treated as one second.
func NewGust(maxSpeed, period float64) *Gust {
	if period <= 0 {
		period = 1
	}
	g := &Gust{max: float32(maxSpeed), period: float32(period), rising: true, value: -float32(maxSpeed)}
	g.tween = gween.New(-g.max, g.max, g.period, ease.InOutSine)
	return g
}

// Update advances the gust by dt seconds and returns the wind to use for
// the next smoke step.
func (g *Gust) Update(dt float64) (simplecanvas.WindDirection, float64) {
	v, done := g.tween.Update(float32(dt))
	g.value = v
	if done {
		g.rising = !g.rising
		if g.rising {
			g.tween = gween.New(-g.max, g.max, g.period, ease.InOutSine)
		} else {
			g.tween = gween.New(g.max, -g.max, g.period, ease.InOutSine)
		}
	}
	return g.Wind()
}

// Wind returns the current direction and non-negative speed.
func (g *Gust) Wind() (simplecanvas.WindDirection, float64) {
	if g.value < 0 {
		return simplecanvas.WindLeft, float64(-g.value)
	}
	return simplecanvas.WindRight, float64(g.value)
}

// Apply writes the current wind into p.
func (g *Gust) Apply(p *simplecanvas.SmokeParams) {
	p.Wind, p.WindSpeed = g.Wind()
}
