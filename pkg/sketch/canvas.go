package sketch

import (
	"image/color"

	"github.com/matzehuels/runegrid/pkg/asset"
)

// FontMetrics holds vertical metrics for the monospace face at one size.
type FontMetrics struct {
	Ascent  float64
	Descent float64
}

// Canvas is a 2D drawing surface with a single monospace font.
//
// Coordinates are in pixels with the origin at the top-left corner.
type Canvas interface {
	// Size returns the canvas dimensions.
	Size() (w, h int)

	// Clear fills the whole canvas with c.
	Clear(c color.Color)

	// FillRect fills the rectangle spanned by two opposite corners.
	// The corners may be given in any order.
	FillRect(x0, y0, x1, y1 float64, c color.Color)

	// DrawText draws s with its baseline at y.
	DrawText(s string, x, y, size float64, c color.Color)

	// DrawImage draws img with its top-left corner at (x, y).
	// Callers only pass ready images.
	DrawImage(img *asset.Image, x, y float64)

	// Metrics returns the font metrics at the given size.
	Metrics(size float64) FontMetrics

	// TextWidth returns the advance width of s at the given size.
	TextWidth(s string, size float64) float64
}

var (
	// White is p5's fill(0, 0, 100).
	White color.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// OverlayBackground is p5's fill(0, 0, 0, 10): black at 10% alpha.
	OverlayBackground color.Color = color.NRGBA{A: 26}
)
