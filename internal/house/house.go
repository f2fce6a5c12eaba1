// Package house lays out the demo house scene shared by the host
// programs.
package house

import "github.com/gogpu/simplecanvas"

// Layout positions the house parts relative to the surface size.
type Layout struct {
	Width, Height float64
}

// NewLayout returns a layout for a w x h surface.
func NewLayout(w, h int) Layout {
	return Layout{Width: float64(w), Height: float64(h)}
}

func (l Layout) wall() (x, y, w, h float64) {
	w, h = l.Width*0.5, l.Height*0.4
	return (l.Width - w) / 2, l.Height - h - l.Height*0.05, w, h
}

func (l Layout) chimney() (x, y, w, h float64) {
	wx, wy, ww, _ := l.wall()
	w, h = ww*0.12, l.Height*0.18
	return wx + ww*0.7, wy - h, w, h
}

// SmokeOrigin returns the top centre of the chimney.
func (l Layout) SmokeOrigin() (x, y float64) {
	cx, cy, cw, _ := l.chimney()
	return cx + cw/2, cy
}

// Draw clears the surface and paints the house on it.
func (l Layout) Draw(reg *simplecanvas.Registry, id string) error {
	if err := reg.Clear(id); err != nil {
		return err
	}

	wx, wy, ww, wh := l.wall()
	cx, cy, cw, ch := l.chimney()
	roofH := l.Height * 0.08

	steps := []func() error{
		func() error { return reg.DrawChimney(id, cx, cy, cw, ch, "brown", "#3b1f0e") },
		func() error { return reg.DrawWall(id, wx, wy, ww, wh, "burlywood", "#5c3a1e") },
		func() error { return reg.DrawRoof(id, wx-ww*0.05, wy-roofH, ww*1.1, roofH, "firebrick", "black") },
		func() error { return reg.DrawWindow(id, wx+ww*0.1, wy+wh*0.2, ww*0.2, wh*0.3, "lightblue", "white") },
		func() error { return reg.DrawWindow(id, wx+ww*0.7, wy+wh*0.2, ww*0.2, wh*0.3, "lightblue", "white") },
		func() error {
			dw, dh := ww*0.18, wh*0.55
			return reg.DrawDoor(id, wx+(ww-dw)/2, wy+wh-dh, dw, dh, "saddlebrown", "black", "gold")
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
