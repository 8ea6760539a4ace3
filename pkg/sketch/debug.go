package sketch

import (
	"fmt"
	"image/color"
)

// Overlay layout constants, in pixels.
const (
	debugLeftMargin  = 10
	debugFloorOffset = 10 // distance of the bottom line's baseline from the canvas bottom
	debugLineSpacing = 2
	debugTopPadding  = 3
)

// DebugCorner is a fixed number of text lines drawn over a translucent band
// at the bottom-left of the canvas. Line 0 is the bottom line.
//
// Lines keep their text until overwritten.
type DebugCorner struct {
	size     int      // configured line count
	lines    []string // at least one, so the diagnostic has somewhere to go
	FontSize float64
	Color    color.Color
	Fill     color.Color
}

// NewDebugCorner creates an overlay with size empty lines.
//
// A size below 1 accepts no text at all: every SetText is out of range and
// its diagnostic lands on a single reserved line, which is still drawn.
func NewDebugCorner(size int) *DebugCorner {
	size = max(size, 0)
	return &DebugCorner{
		size:     size,
		lines:    make([]string, max(size, 1)),
		FontSize: 14,
		Color:    White,
		Fill:     OverlayBackground,
	}
}

// Size returns the configured number of lines.
func (d *DebugCorner) Size() int { return d.size }

// SetText sets line index to text.
//
// An index outside [0, Size) is not an error: line 0 is overwritten with a
// diagnostic naming the index and the size instead.
func (d *DebugCorner) SetText(text string, index int) {
	switch {
	case index >= d.size:
		d.lines[0] = fmt.Sprintf("%d ← index>%d not supported", index, d.size)
	case index < 0:
		d.lines[0] = fmt.Sprintf("%d ← index<0 not supported (size %d)", index, d.size)
	default:
		d.lines[index] = text
	}
}

// Text returns line index, or "" when out of range.
func (d *DebugCorner) Text(index int) string {
	if index < 0 || index >= len(d.lines) {
		return ""
	}
	return d.lines[index]
}

// LineHeight returns the distance between baselines on c.
func (d *DebugCorner) LineHeight(c Canvas) float64 {
	m := c.Metrics(d.FontSize)
	return m.Ascent + m.Descent + debugLineSpacing
}

// Baseline returns the y coordinate of line index on c.
func (d *DebugCorner) Baseline(c Canvas, index int) float64 {
	_, h := c.Size()
	return float64(h-debugFloorOffset) - d.LineHeight(c)*float64(index)
}

// Show paints the background band and every non-empty line.
func (d *DebugCorner) Show(c Canvas) {
	w, h := c.Size()
	top := d.Baseline(c, len(d.lines)) - debugTopPadding
	c.FillRect(0, float64(h), float64(w), top, d.Fill)

	for i, msg := range d.lines {
		if msg == "" {
			continue
		}
		c.DrawText(msg, debugLeftMargin, d.Baseline(c, i), d.FontSize, d.Color)
	}
}
