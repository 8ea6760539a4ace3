package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/matzehuels/runegrid/pkg/asset"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

// screenCanvas draws onto the screen image for one Draw call.
type screenCanvas struct {
	g   *Game
	dst *ebiten.Image
}

func (c screenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c screenCanvas) Clear(col color.Color) { c.dst.Fill(col) }

func (c screenCanvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	x, y := min(x0, x1), min(y0, y1)
	w, h := max(x0, x1)-x, max(y0, y1)-y
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

// DrawText translates by the ascent since text/v2 positions the top of the
// line box, not the baseline.
func (c screenCanvas) DrawText(s string, x, y, size float64, col color.Color) {
	face := c.g.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, face, op)
}

func (c screenCanvas) DrawImage(img *asset.Image, x, y float64) {
	tex := c.g.texture(img)
	if tex == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(tex, op)
}

func (c screenCanvas) Metrics(size float64) sketch.FontMetrics {
	m := c.g.face(size).Metrics()
	return sketch.FontMetrics{Ascent: m.HAscent, Descent: m.HDescent}
}

func (c screenCanvas) TextWidth(s string, size float64) float64 {
	return text.Advance(s, c.g.face(size))
}
