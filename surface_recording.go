package simplecanvas

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// RecordingSurface captures drawing as gg recording commands instead of
// pixels. Finish returns a recording that can be played back to any
// recording backend (raster, PDF, SVG).
//
// Clear discards everything recorded so far, so a recording always holds
// a single frame.
type RecordingSurface struct {
	width, height int
	rec           *recording.Recorder
	lineWidth     float64
}

var _ Surface = (*RecordingSurface)(nil)

// NewRecordingSurface creates a recording surface of the given size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{
		width:     width,
		height:    height,
		rec:       recording.NewRecorder(width, height),
		lineWidth: 1,
	}
}

func (s *RecordingSurface) Width() int  { return s.width }
func (s *RecordingSurface) Height() int { return s.height }

func (s *RecordingSurface) Clear() {
	s.rec = recording.NewRecorder(s.width, s.height)
	s.rec.SetLineWidth(s.lineWidth)
}

func (s *RecordingSurface) BeginPath() { s.rec.ClearPath() }

func (s *RecordingSurface) Rect(x, y, w, h float64) { s.rec.DrawRectangle(x, y, w, h) }

func (s *RecordingSurface) Circle(x, y, r float64) { s.rec.DrawCircle(x, y, r) }

func (s *RecordingSurface) SetFillColor(c color.Color) {
	s.rec.SetFillStyle(recording.NewSolidBrush(gg.FromColor(c)))
}

func (s *RecordingSurface) SetStrokeColor(c color.Color) {
	s.rec.SetStrokeStyle(recording.NewSolidBrush(gg.FromColor(c)))
}

func (s *RecordingSurface) SetLineWidth(w float64) {
	s.lineWidth = w
	s.rec.SetLineWidth(w)
}

func (s *RecordingSurface) Fill() error {
	s.rec.FillPreserve()
	return nil
}

func (s *RecordingSurface) Stroke() error {
	s.rec.StrokePreserve()
	return nil
}

// Finish freezes the commands recorded since the last Clear.
// The surface keeps recording into a fresh recorder afterwards.
func (s *RecordingSurface) Finish() *recording.Recording {
	r := s.rec.FinishRecording()
	s.Clear()
	return r
}
