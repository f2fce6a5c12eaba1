package simplecanvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/gogpu/simplecanvas/internal/cache"
)

// colorCacheSize bounds the memoised color strings. Redraw loops repeat
// the same handful of colors every frame.
const colorCacheSize = 256

var (
	colorCache = cache.New[string, color.RGBA](colorCacheSize)

	// foldCase is stateful; parseColor only runs under colorCache's lock.
	foldCase = cases.Fold()
)

// ParseColor parses a CSS style color string.
//
// Accepted forms:
//   - "#rgb" and "#rrggbb" hex notation
//   - CSS/SVG named colors such as "brown" or "SteelBlue" (case-insensitive)
//
// The returned color is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	return colorCache.GetOrLoad(s, parseColor)
}

func parseColor(s string) (color.RGBA, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return color.RGBA{}, fmt.Errorf("simplecanvas: empty color")
	}

	if trimmed[0] == '#' {
		// colorful.Hex ignores trailing input, so pin the length first.
		if n := len(trimmed); n != 4 && n != 7 {
			return color.RGBA{}, fmt.Errorf("simplecanvas: invalid hex color %q", s)
		}
		c, err := colorful.Hex(trimmed)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("simplecanvas: invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	if c, ok := colornames.Map[foldCase.String(trimmed)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("simplecanvas: unknown color %q", s)
}

// hexString formats c as "#rrggbb".
func hexString(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
