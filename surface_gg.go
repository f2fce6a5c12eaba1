package simplecanvas

import (
	"image/color"

	"github.com/gogpu/gg"
)

// GGSurface adapts a gg.Context to Surface.
//
// gg shares one brush between fill and stroke, so GGSurface keeps the two
// colors itself and installs the right one right before painting.
//
// Example:
//
//	dc := gg.NewContext(400, 300)
//	reg := simplecanvas.NewRegistry()
//	reg.Register("house", simplecanvas.NewGGSurface(dc))
type GGSurface struct {
	dc     *gg.Context
	fill   gg.RGBA
	stroke gg.RGBA
}

var _ Surface = (*GGSurface)(nil)

// NewGGSurface wraps dc. Fill and stroke colors start as opaque black.
func NewGGSurface(dc *gg.Context) *GGSurface {
	return &GGSurface{dc: dc, fill: gg.Black, stroke: gg.Black}
}

// Context returns the wrapped drawing context.
func (s *GGSurface) Context() *gg.Context { return s.dc }

func (s *GGSurface) Width() int  { return s.dc.Width() }
func (s *GGSurface) Height() int { return s.dc.Height() }

func (s *GGSurface) Clear() { s.dc.Clear() }

func (s *GGSurface) BeginPath() { s.dc.ClearPath() }

func (s *GGSurface) Rect(x, y, w, h float64) { s.dc.DrawRectangle(x, y, w, h) }

func (s *GGSurface) Circle(x, y, r float64) { s.dc.DrawCircle(x, y, r) }

func (s *GGSurface) SetFillColor(c color.Color)   { s.fill = gg.FromColor(c) }
func (s *GGSurface) SetStrokeColor(c color.Color) { s.stroke = gg.FromColor(c) }
func (s *GGSurface) SetLineWidth(w float64)       { s.dc.SetLineWidth(w) }

// Fill paints the current path with the fill color and keeps the path.
func (s *GGSurface) Fill() error {
	s.dc.SetFillBrush(gg.Solid(s.fill))
	return s.dc.FillPreserve()
}

// Stroke outlines the current path with the stroke color and keeps the path.
func (s *GGSurface) Stroke() error {
	s.dc.SetStrokeBrush(gg.Solid(s.stroke))
	return s.dc.StrokePreserve()
}
