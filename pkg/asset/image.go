package asset

import (
	"bytes"
	"image"
	"math"

	// Registered decoders for icon formats served by the CDN.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/runegrid/pkg/errors"
)

// State is the load state of an [Image].
type State int

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Image is a handle to decoded pixels that may arrive later.
//
// Image is not safe for concurrent use; it belongs to the render thread.
// Background goroutines hand results over through a [Queue].
type Image struct {
	// Src is the icon reference the image was requested for.
	Src string

	state   State
	pixels  image.Image
	err     error
	version int
}

// NewImage returns a pending handle for src.
func NewImage(src string) *Image {
	return &Image{Src: src}
}

// FromImage returns a ready handle wrapping px.
func FromImage(src string, px image.Image) *Image {
	img := &Image{Src: src}
	img.resolve(px, nil)
	return img
}

// State returns the current load state.
func (i *Image) State() State { return i.state }

// Ready reports whether pixels are available.
func (i *Image) Ready() bool { return i.state == Ready }

// Err returns the failure cause for a failed handle.
func (i *Image) Err() error { return i.err }

// Pixels returns the current pixels, or nil unless ready.
func (i *Image) Pixels() image.Image { return i.pixels }

// Version increases every time the pixels are replaced.
// Backends that upload pixels to the GPU key their texture cache on it.
func (i *Image) Version() int { return i.version }

// Width returns the current pixel width (0 unless ready).
func (i *Image) Width() int {
	if i.pixels == nil {
		return 0
	}
	return i.pixels.Bounds().Dx()
}

// Height returns the current pixel height (0 unless ready).
func (i *Image) Height() int {
	if i.pixels == nil {
		return 0
	}
	return i.pixels.Bounds().Dy()
}

// Resize resamples the pixels to w×h in place and reports whether the pixels
// changed.
//
// A zero w or h is computed from the other so the aspect ratio is preserved.
// Resizing a handle that isn't ready, resizing to the current size, and
// non-positive targets are no-ops.
func (i *Image) Resize(w, h int) bool {
	if !i.Ready() {
		return false
	}
	w, h = i.target(w, h)
	if w <= 0 || h <= 0 {
		return false
	}
	if w == i.Width() && h == i.Height() {
		return false
	}
	i.pixels = imaging.Resize(i.pixels, w, h, imaging.Linear)
	i.version++
	return true
}

func (i *Image) target(w, h int) (int, int) {
	cw, ch := i.Width(), i.Height()
	switch {
	case w < 0 || h < 0 || (w == 0 && h == 0):
		return 0, 0
	case w == 0:
		return max(1, int(math.Round(float64(h)*float64(cw)/float64(ch)))), h
	case h == 0:
		return w, max(1, int(math.Round(float64(w)*float64(ch)/float64(cw))))
	}
	return w, h
}

func (i *Image) resolve(px image.Image, err error) bool {
	if i.state != Pending {
		return false
	}
	if err == nil && px == nil {
		err = errors.New(errors.ErrCodeDecode, "no pixels for %s", i.Src)
	}
	if err != nil {
		i.state = Failed
		i.err = err
		return true
	}
	if px.Bounds().Empty() {
		i.state = Failed
		i.err = errors.New(errors.ErrCodeDecode, "empty image %s", i.Src)
		return true
	}
	i.pixels = px
	i.state = Ready
	i.version++
	return true
}

// Decode decodes PNG, JPEG, GIF or WebP bytes.
// Failures carry [errors.ErrCodeDecode].
func Decode(src string, data []byte) (image.Image, error) {
	px, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode %s", src)
	}
	return px, nil
}
