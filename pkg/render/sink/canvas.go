package sink

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/runegrid/pkg/asset"
	"github.com/matzehuels/runegrid/pkg/fonts"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

// Canvas is a [sketch.Canvas] backed by a gg raster context.
type Canvas struct {
	dc   *gg.Context
	font *fonts.Font
}

// NewCanvas creates a w×h canvas drawing text with f.
// A nil font uses [fonts.Fallback].
func NewCanvas(w, h int, f *fonts.Font) *Canvas {
	if f == nil {
		f = fonts.Fallback()
	}
	return &Canvas{dc: gg.NewContext(w, h), font: f}
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	x, y := math.Min(x0, x1), math.Min(y0, y1)
	c.dc.DrawRectangle(x, y, math.Abs(x1-x0), math.Abs(y1-y0))
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *Canvas) DrawText(s string, x, y, size float64, col color.Color) {
	c.dc.SetFontFace(c.font.Face(size))
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

func (c *Canvas) DrawImage(img *asset.Image, x, y float64) {
	if px := img.Pixels(); px != nil {
		c.dc.DrawImage(px, int(math.Round(x)), int(math.Round(y)))
	}
}

func (c *Canvas) Metrics(size float64) sketch.FontMetrics {
	a, d := c.font.Metrics(size)
	return sketch.FontMetrics{Ascent: a, Descent: d}
}

func (c *Canvas) TextWidth(s string, size float64) float64 {
	return c.font.TextWidth(s, size)
}

// Image returns the current frame.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// tee fans draw calls out to several canvases. Size and measurements come
// from the first.
type tee []sketch.Canvas

// Tee returns a canvas that forwards every draw call to each of cs in order.
func Tee(cs ...sketch.Canvas) sketch.Canvas {
	return tee(cs)
}

func (t tee) Size() (int, int) { return t[0].Size() }

func (t tee) Clear(col color.Color) {
	for _, c := range t {
		c.Clear(col)
	}
}

func (t tee) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	for _, c := range t {
		c.FillRect(x0, y0, x1, y1, col)
	}
}

func (t tee) DrawText(s string, x, y, size float64, col color.Color) {
	for _, c := range t {
		c.DrawText(s, x, y, size, col)
	}
}

func (t tee) DrawImage(img *asset.Image, x, y float64) {
	for _, c := range t {
		c.DrawImage(img, x, y)
	}
}

func (t tee) Metrics(size float64) sketch.FontMetrics { return t[0].Metrics(size) }

func (t tee) TextWidth(s string, size float64) float64 { return t[0].TextWidth(s, size) }
