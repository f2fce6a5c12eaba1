package ebitensurface

import (
	"image/color"
	"testing"
)

// These tests stay off the GPU: they only touch path bookkeeping, which
// does not need a running ebiten game.

func TestPathBookkeeping(t *testing.T) {
	s := New(nil)
	s.BeginPath()
	s.Rect(1, 2, 3, 4)
	s.Circle(5, 6, 7)

	want := []shape{
		{kind: shapeRect, x: 1, y: 2, w: 3, h: 4},
		{kind: shapeCircle, x: 5, y: 6, w: 7},
	}
	if len(s.path) != len(want) {
		t.Fatalf("path = %+v, want %+v", s.path, want)
	}
	for i := range want {
		if s.path[i] != want[i] {
			t.Errorf("path[%d] = %+v, want %+v", i, s.path[i], want[i])
		}
	}

	s.BeginPath()
	if len(s.path) != 0 {
		t.Errorf("BeginPath left %d shapes", len(s.path))
	}
}

func TestStyleState(t *testing.T) {
	s := New(nil)
	red := color.RGBA{R: 255, A: 255}
	s.SetFillColor(red)
	s.SetStrokeColor(color.White)
	s.SetLineWidth(2)
	s.SetAntialias(false)

	if s.fill != red || s.stroke != color.White || s.lineWidth != 2 || s.antialias {
		t.Errorf("state = fill %v stroke %v width %v aa %v", s.fill, s.stroke, s.lineWidth, s.antialias)
	}
}
