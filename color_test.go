package simplecanvas

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff8800", color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}},
		{"#FF8800", color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}},
		{"#f80", color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}},
		{"#000000", color.RGBA{A: 0xff}},
		{"brown", color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}},
		{"SteelBlue", color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}},
		{"  white ", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "#", "#12", "#12345", "#gggggg", "notacolor", "rgb(1,2,3)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) error = nil, want error", in)
		}
	}
}

func TestParseColorCached(t *testing.T) {
	colorCache.Clear()
	for i := 0; i < 3; i++ {
		if _, err := ParseColor("tomato"); err != nil {
			t.Fatal(err)
		}
	}
	st := colorCache.Stats()
	if st.Len != 1 || st.Hits != 2 {
		t.Errorf("cache stats = %+v, want 1 entry and 2 hits", st)
	}
}
