package sketch

import (
	"image/color"
	"math"
	"testing"
)

type fixedMeasure struct{}

func (fixedMeasure) Metrics(size float64) FontMetrics        { return FontMetrics{Ascent: size, Descent: 1} }
func (fixedMeasure) TextWidth(s string, size float64) float64 { return 7 }

func TestRecorderClearStartsFrame(t *testing.T) {
	rec := NewRecorder(100, 50)
	rec.FillRect(0, 0, 10, 10, White)
	rec.Clear(color.Black)
	rec.DrawText("x", 1, 2, 14, White)

	if len(rec.Ops) != 2 {
		t.Fatalf("Ops = %+v, want clear + text", rec.Ops)
	}
	if rec.Ops[0].Kind != OpClear || rec.Ops[0].Color != "#000000" || rec.Ops[0].Alpha != 1 {
		t.Errorf("clear op = %+v", rec.Ops[0])
	}
}

func TestRecorderTranslucentColor(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.FillRect(0, 0, 1, 1, OverlayBackground)
	op := rec.Ops[0]
	if op.Color != "#000000" {
		t.Errorf("color = %q, want #000000", op.Color)
	}
	if op.Alpha < 0.09 || op.Alpha > 0.11 {
		t.Errorf("alpha = %v, want ~0.1", op.Alpha)
	}
}

func TestRecorderMeasure(t *testing.T) {
	rec := NewRecorder(10, 10)
	if got := rec.TextWidth("abcd", 10); math.Abs(got-22) > 1e-9 {
		t.Errorf("synthetic TextWidth = %v, want 22", got)
	}

	rec.Measure = fixedMeasure{}
	if got := rec.TextWidth("abcd", 10); got != 7 {
		t.Errorf("measured TextWidth = %v, want 7", got)
	}
	if m := rec.Metrics(30); m.Ascent != 30 || m.Descent != 1 {
		t.Errorf("measured Metrics = %+v", m)
	}
}
