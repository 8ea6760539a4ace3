package sketch

import (
	"image/color"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/runegrid/pkg/asset"
)

// Op kinds recorded by [Recorder].
const (
	OpClear = "clear"
	OpRect  = "rect"
	OpText  = "text"
	OpImage = "image"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string  `json:"op"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	X1    float64 `json:"x1,omitempty"`
	Y1    float64 `json:"y1,omitempty"`
	W     int     `json:"w,omitempty"`
	H     int     `json:"h,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Text  string  `json:"text,omitempty"`
	Src   string  `json:"src,omitempty"`
	Color string  `json:"color,omitempty"`
	Alpha float64 `json:"alpha,omitempty"`
}

// Measurer supplies font measurements.
type Measurer interface {
	Metrics(size float64) FontMetrics
	TextWidth(s string, size float64) float64
}

// Recorder is a [Canvas] that records draw calls instead of rasterizing.
//
// Without a Measure, font metrics are synthetic but proportional to size:
// ascent 0.75·size, descent 0.25·size, and 0.55·size advance per rune.
// Clear starts a new frame, so Ops always holds the latest frame.
type Recorder struct {
	W, H    int
	Ops     []Op
	Measure Measurer
}

// NewRecorder creates a recorder for a w×h canvas.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, withColor(Op{Kind: OpClear}, c))
}

func (r *Recorder) FillRect(x0, y0, x1, y1 float64, c color.Color) {
	r.Ops = append(r.Ops, withColor(Op{Kind: OpRect, X: x0, Y: y0, X1: x1, Y1: y1}, c))
}

func (r *Recorder) DrawText(s string, x, y, size float64, c color.Color) {
	r.Ops = append(r.Ops, withColor(Op{Kind: OpText, X: x, Y: y, Size: size, Text: s}, c))
}

func (r *Recorder) DrawImage(img *asset.Image, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x, Y: y, W: img.Width(), H: img.Height(), Src: img.Src})
}

func (r *Recorder) Metrics(size float64) FontMetrics {
	if r.Measure != nil {
		return r.Measure.Metrics(size)
	}
	return FontMetrics{Ascent: 0.75 * size, Descent: 0.25 * size}
}

func (r *Recorder) TextWidth(s string, size float64) float64 {
	if r.Measure != nil {
		return r.Measure.TextWidth(s, size)
	}
	return 0.55 * size * float64(utf8.RuneCountInString(s))
}

// Filter returns the recorded ops of one kind, in draw order.
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func withColor(op Op, c color.Color) Op {
	if c == nil {
		return op
	}
	_, _, _, a := c.RGBA()
	op.Alpha = float64(a) / 0xffff
	if a == 0 {
		return op
	}
	cf, _ := colorful.MakeColor(c)
	op.Color = cf.Hex()
	return op
}
