package sink

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/runegrid/pkg/asset"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

func TestCanvasClearAndFill(t *testing.T) {
	c := NewCanvas(40, 20, nil)
	c.Clear(color.NRGBA{R: 40, G: 42, B: 61, A: 255})
	// corners given bottom-right first
	c.FillRect(40, 20, 20, 10, color.White)

	img := c.Image()
	if r, g, b, _ := img.At(5, 5).RGBA(); r>>8 != 40 || g>>8 != 42 || b>>8 != 61 {
		t.Errorf("background pixel = (%d,%d,%d), want (40,42,61)", r>>8, g>>8, b>>8)
	}
	if r, _, _, _ := img.At(30, 15).RGBA(); r>>8 != 255 {
		t.Errorf("filled pixel red = %d, want 255", r>>8)
	}
}

func TestCanvasDrawImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	c := NewCanvas(20, 20, nil)
	c.Clear(color.Black)
	c.DrawImage(asset.FromImage("red.png", src), 10, 10)
	c.DrawImage(asset.NewImage("pending.png"), 0, 0)

	img := c.Image()
	if r, _, _, _ := img.At(11, 11).RGBA(); r>>8 != 255 {
		t.Errorf("pixel inside image red = %d, want 255", r>>8)
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0 {
		t.Errorf("pending image should not draw, red = %d", r>>8)
	}
}

func TestCanvasMetrics(t *testing.T) {
	c := NewCanvas(10, 10, nil)
	m := c.Metrics(100)
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics(100) = %+v, want positive", m)
	}
	if c.TextWidth("Precision", 100) <= c.TextWidth("Pre", 100) {
		t.Error("TextWidth should grow with the string")
	}
}

func TestRenderPNG(t *testing.T) {
	c := NewCanvas(60, 30, nil)
	c.Clear(color.White)
	c.DrawText("hi", 2, 20, 14, color.Black)

	data, err := RenderPNG(c)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 30 {
		t.Errorf("bounds = %v, want 60x30", b)
	}

	scaled, err := RenderPNG(c, WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG(scale 2) error: %v", err)
	}
	img, _ = png.Decode(bytes.NewReader(scaled))
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 60 {
		t.Errorf("scaled bounds = %v, want 120x60", b)
	}
}

func TestTeeForwardsAndMeasuresFromFirst(t *testing.T) {
	c := NewCanvas(100, 50, nil)
	rec := sketch.NewRecorder(100, 50)
	rec.Measure = c

	out := Tee(c, rec)
	out.Clear(color.Black)
	out.DrawText("Resolve", 0, 40, 20, color.White)

	if w, h := out.Size(); w != 100 || h != 50 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if out.Metrics(20) != c.Metrics(20) {
		t.Error("Tee metrics should come from the first canvas")
	}
	if rec.Metrics(20) != c.Metrics(20) {
		t.Error("recorder with Measure should report the raster metrics")
	}
	if len(rec.Filter(sketch.OpText)) != 1 {
		t.Errorf("recorder ops = %+v", rec.Ops)
	}
}

func TestRenderJSON(t *testing.T) {
	rec := sketch.NewRecorder(1200, 600)
	rec.Clear(color.Black)
	rec.DrawImage(asset.FromImage("a.png", image.NewNRGBA(image.Rect(0, 0, 20, 20))), 0, 0)

	data, err := RenderJSON(rec, WithRunID("run-1"), WithFrame(3), WithPaths([]string{"Precision"}))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Width != 1200 || out.Height != 600 {
		t.Errorf("size = %dx%d, want 1200x600", out.Width, out.Height)
	}
	if out.RunID != "run-1" || out.Frame != 3 {
		t.Errorf("run/frame = %q/%d", out.RunID, out.Frame)
	}
	if len(out.Paths) != 1 || out.Paths[0] != "Precision" {
		t.Errorf("Paths = %v", out.Paths)
	}
	if len(out.Ops) != 2 || out.Ops[1].Src != "a.png" || out.Ops[1].W != 20 {
		t.Errorf("Ops = %+v", out.Ops)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(sketch.NewRecorder(10, 10))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"ops": []`)) {
		t.Errorf("empty recorder should export an empty ops array, got %s", data)
	}
}
