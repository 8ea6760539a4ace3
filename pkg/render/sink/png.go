package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the output scale factor (default 1.0).
// Scaling is applied after rasterization.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG encodes the current frame of c as PNG.
func RenderPNG(c *Canvas, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}

	var img image.Image = c.Image()
	if r.scale > 0 && r.scale != 1.0 {
		b := img.Bounds()
		img = imaging.Resize(img, int(float64(b.Dx())*r.scale), 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
