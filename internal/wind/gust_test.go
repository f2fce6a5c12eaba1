package wind

import (
	"math"
	"testing"

	"github.com/gogpu/simplecanvas"
)

func TestGustStartsLeft(t *testing.T) {
	g := NewGust(2, 1)
	dir, speed := g.Wind()
	if dir != simplecanvas.WindLeft || speed != 2 {
		t.Errorf("Wind() = %v %v, want left 2", dir, speed)
	}
}

func TestGustSwingsBothWays(t *testing.T) {
	g := NewGust(2, 1)

	dir, speed := g.Update(1)
	if dir != simplecanvas.WindRight || math.Abs(speed-2) > 1e-4 {
		t.Errorf("after one period Wind = %v %v, want right 2", dir, speed)
	}

	dir, speed = g.Update(0.5)
	if math.Abs(speed) > 1e-3 {
		t.Errorf("half way back Wind = %v %v, want ~0", dir, speed)
	}

	dir, speed = g.Update(0.5)
	if dir != simplecanvas.WindLeft || math.Abs(speed-2) > 1e-4 {
		t.Errorf("after two periods Wind = %v %v, want left 2", dir, speed)
	}
}

func TestGustApply(t *testing.T) {
	g := NewGust(3, 0)
	p := simplecanvas.DefaultSmokeParams()
	p.Wind = simplecanvas.WindRight
	g.Apply(&p)
	if p.Wind != simplecanvas.WindLeft || p.WindSpeed != 3 {
		t.Errorf("Apply() = %v %v, want left 3", p.Wind, p.WindSpeed)
	}
}
