package simplecanvas

import (
	"image/color"
	"math"
)

// OutlineWidth is the stroke width of every rectangle shape.
const OutlineWidth = 2

type numArg struct {
	name string
	v    float64
}

type colorArg struct {
	name string
	s    string
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requireFinite(op string, args ...numArg) error {
	for _, a := range args {
		if !isFinite(a.v) {
			return invalid(op, "%s is not a finite number (%v)", a.name, a.v)
		}
	}
	return nil
}

func requireColors(op string, args ...colorArg) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(args))
	for i, a := range args {
		c, err := ParseColor(a.s)
		if err != nil {
			return nil, invalid(op, "%s: %v", a.name, err)
		}
		out[i] = c
	}
	return out, nil
}

// Clear erases the whole surface registered as id.
func (r *Registry) Clear(id string) error {
	s, err := r.resolve("clear", id)
	if err != nil {
		return err
	}
	s.Clear()
	return nil
}

// DrawCircle fills a circle of the given radius centred on (x, y).
// The circle is not stroked.
func DrawCircle(s Surface, x, y, radius float64, col string) error {
	const op = "drawCircle"
	if s == nil {
		return invalid(op, "surface is nil")
	}
	if err := requireFinite(op, numArg{"x", x}, numArg{"y", y}, numArg{"radius", radius}); err != nil {
		return err
	}
	if radius < 0 {
		return invalid(op, "radius is negative (%v)", radius)
	}
	cs, err := requireColors(op, colorArg{"color", col})
	if err != nil {
		return err
	}
	return fillCircle(s, x, y, radius, cs[0])
}

// DrawRectangleShape fills a rectangle and outlines it with a 2 unit
// stroke. Windows, walls, roofs and chimneys are all drawn this way.
func (r *Registry) DrawRectangleShape(id string, x, y, width, height float64, fill, stroke string) error {
	return r.drawRectangle("drawRectangleShape", id, x, y, width, height, fill, stroke)
}

// DrawWindow draws a window panel with its frame.
func (r *Registry) DrawWindow(id string, x, y, width, height float64, panel, frame string) error {
	return r.drawRectangle("drawWindow", id, x, y, width, height, panel, frame)
}

// DrawWall draws a wall.
func (r *Registry) DrawWall(id string, x, y, width, height float64, primary, secondary string) error {
	return r.drawRectangle("drawWall", id, x, y, width, height, primary, secondary)
}

// DrawRoof draws a roof.
func (r *Registry) DrawRoof(id string, x, y, width, height float64, primary, secondary string) error {
	return r.drawRectangle("drawRoof", id, x, y, width, height, primary, secondary)
}

// DrawChimney draws a chimney.
func (r *Registry) DrawChimney(id string, x, y, width, height float64, primary, secondary string) error {
	return r.drawRectangle("drawChimney", id, x, y, width, height, primary, secondary)
}

// DrawDoor draws a door panel with its frame and a round knob.
// The knob sits at (x + width/5, y + height/2) with radius width/10,
// so width must not be negative.
func (r *Registry) DrawDoor(id string, x, y, width, height float64, panel, frame, knob string) error {
	const op = "drawDoor"
	if id == "" {
		return invalid(op, "surface id is empty")
	}
	if err := requireFinite(op,
		numArg{"x", x}, numArg{"y", y}, numArg{"width", width}, numArg{"height", height}); err != nil {
		return err
	}
	if width < 0 {
		return invalid(op, "width is negative (%v)", width)
	}
	cs, err := requireColors(op,
		colorArg{"panel color", panel}, colorArg{"frame color", frame}, colorArg{"knob color", knob})
	if err != nil {
		return err
	}
	s, err := r.resolve(op, id)
	if err != nil {
		return err
	}

	if err := outlinedRect(s, x, y, width, height, cs[0], cs[1]); err != nil {
		return err
	}
	return fillCircle(s, x+width/5, y+height/2, width/10, cs[2])
}

func (r *Registry) drawRectangle(op, id string, x, y, width, height float64, fill, stroke string) error {
	if id == "" {
		return invalid(op, "surface id is empty")
	}
	if err := requireFinite(op,
		numArg{"x", x}, numArg{"y", y}, numArg{"width", width}, numArg{"height", height}); err != nil {
		return err
	}
	cs, err := requireColors(op, colorArg{"fill color", fill}, colorArg{"stroke color", stroke})
	if err != nil {
		return err
	}
	s, err := r.resolve(op, id)
	if err != nil {
		return err
	}
	return outlinedRect(s, x, y, width, height, cs[0], cs[1])
}

func outlinedRect(s Surface, x, y, width, height float64, fill, stroke color.Color) error {
	s.BeginPath()
	s.Rect(x, y, width, height)
	s.SetFillColor(fill)
	if err := s.Fill(); err != nil {
		return err
	}
	s.SetLineWidth(OutlineWidth)
	s.SetStrokeColor(stroke)
	return s.Stroke()
}

func fillCircle(s Surface, x, y, radius float64, c color.Color) error {
	s.BeginPath()
	s.Circle(x, y, radius)
	s.SetFillColor(c)
	return s.Fill()
}
