package sketch

import (
	"image/color"
	"math"

	"github.com/matzehuels/runegrid/pkg/asset"
)

// Grid lays out the rune icons of every path.
type Grid struct {
	CellSize    int         // edge of each rune cell in pixels
	Margin      int         // vertical gap after each path
	LabelSize   float64     // font size of the path label
	LabelOffset int         // label x offset, in cells
	LabelColor  color.Color // label fill
	WholePaths  bool        // hide a path until none of its icons are pending
}

// DefaultGrid matches the 1200×600 sketch.
func DefaultGrid() Grid {
	return Grid{
		CellSize:    20,
		Margin:      5,
		LabelSize:   100,
		LabelOffset: 4,
		LabelColor:  White,
	}
}

// Cursor is the layout position after a draw.
type Cursor struct {
	X, Y float64
}

// Draw paints every path of st onto c and returns the final cursor.
// A nil state draws nothing.
func (g Grid) Draw(c Canvas, st *State) Cursor {
	var cur Cursor
	if st == nil {
		return cur
	}
	for _, p := range st.Paths() {
		cur = g.drawPath(c, p, cur)
	}
	return cur
}

func (g Grid) drawPath(c Canvas, p PathGroup, cur Cursor) Cursor {
	cell := float64(g.CellSize)
	visible := !g.WholePaths || p.Resolved()

	if visible {
		g.drawLabel(c, p, cur)
	}

	for _, row := range p.Rows {
		for _, img := range row {
			if visible {
				drawCell(c, img, g.CellSize, cur)
			}
			cur.X += cell
		}
		cur.X = 0
		cur.Y += cell
	}

	cur.Y += float64(g.Margin)
	return cur
}

func (g Grid) drawLabel(c Canvas, p PathGroup, cur Cursor) {
	offset := float64(g.LabelOffset * g.CellSize)
	ascent := c.Metrics(g.LabelSize).Ascent

	c.DrawText(p.Key, cur.X+offset, cur.Y+ascent, g.LabelSize, g.LabelColor)

	if p.Icon == nil || !p.Icon.Ready() {
		return
	}
	p.Icon.Resize(0, int(math.Round(ascent)))
	c.DrawImage(p.Icon, c.TextWidth(p.Key, g.LabelSize)+offset, cur.Y)
}

func drawCell(c Canvas, img *asset.Image, size int, cur Cursor) {
	if img == nil || !img.Ready() {
		return
	}
	img.Resize(size, size)
	c.DrawImage(img, cur.X, cur.Y)
}
