// Package ebitensurface draws simplecanvas shapes on an ebiten image, for
// hosts that run inside an ebiten game loop.
//
//	canvas := ebiten.NewImage(640, 480)
//	reg.Register("scene", ebitensurface.New(canvas))
//
// Paths hold axis-aligned rectangles and full circles, which is all the
// simplecanvas helpers emit; they are painted with ebiten's vector package.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/simplecanvas"
)

type shapeKind uint8

const (
	shapeRect shapeKind = iota
	shapeCircle
)

type shape struct {
	kind       shapeKind
	x, y, w, h float32 // w is the radius for circles
}

// Surface implements simplecanvas.Surface on top of an *ebiten.Image.
type Surface struct {
	img       *ebiten.Image
	path      []shape
	fill      color.Color
	stroke    color.Color
	lineWidth float32
	antialias bool
}

var _ simplecanvas.Surface = (*Surface)(nil)

// New wraps img with antialiasing on.
func New(img *ebiten.Image) *Surface {
	return &Surface{
		img:       img,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		antialias: true,
	}
}

// SetAntialias toggles antialiased edges.
func (s *Surface) SetAntialias(on bool) { s.antialias = on }

// Image returns the target image.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

func (s *Surface) Clear() { s.img.Clear() }

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) Rect(x, y, w, h float64) {
	s.path = append(s.path, shape{kind: shapeRect, x: float32(x), y: float32(y), w: float32(w), h: float32(h)})
}

func (s *Surface) Circle(x, y, r float64) {
	s.path = append(s.path, shape{kind: shapeCircle, x: float32(x), y: float32(y), w: float32(r)})
}

func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetLineWidth(w float64)       { s.lineWidth = float32(w) }

// Fill paints every shape of the current path with the fill color.
func (s *Surface) Fill() error {
	for _, sh := range s.path {
		switch sh.kind {
		case shapeRect:
			vector.DrawFilledRect(s.img, sh.x, sh.y, sh.w, sh.h, s.fill, s.antialias)
		case shapeCircle:
			vector.DrawFilledCircle(s.img, sh.x, sh.y, sh.w, s.fill, s.antialias)
		}
	}
	return nil
}

// Stroke outlines every shape of the current path with the stroke color.
func (s *Surface) Stroke() error {
	for _, sh := range s.path {
		switch sh.kind {
		case shapeRect:
			vector.StrokeRect(s.img, sh.x, sh.y, sh.w, sh.h, s.lineWidth, s.stroke, s.antialias)
		case shapeCircle:
			vector.StrokeCircle(s.img, sh.x, sh.y, sh.w, s.lineWidth, s.stroke, s.antialias)
		}
	}
	return nil
}
