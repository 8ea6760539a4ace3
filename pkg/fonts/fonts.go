// Package fonts loads the single monospace face used for every text draw.
//
// The sketch was designed around Consolas. [Load] looks for consola.ttf on
// the system (via flopp/go-findfont) and falls back to the embedded Go Mono
// face from golang.org/x/image when it isn't installed, so text always
// renders.
//
// A [Font] hands out sized faces for the gg canvas and raw TTF bytes for
// backends that parse fonts themselves (Ebitengine text/v2).
package fonts

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/runegrid/pkg/errors"
)

// DefaultName is the system font searched for when no path is configured.
const DefaultName = "consola.ttf"

// FallbackName identifies the embedded fallback face.
const FallbackName = "Go Mono (embedded)"

// Font is a parsed TrueType font with a cache of sized faces.
// It is safe for concurrent use.
type Font struct {
	Name string // file path, or FallbackName
	Data []byte // raw TTF bytes

	tt    *truetype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

// Load resolves and parses a font.
//
// An empty name searches the system for [DefaultName] and falls back to the
// embedded face if it is missing. A bare file name ("consola.ttf") is searched
// in the system font directories; a path with a directory is read directly.
// An explicitly named font that cannot be found or parsed is an error.
func Load(name string) (*Font, error) {
	if name == "" {
		if path, err := findfont.Find(DefaultName); err == nil {
			if f, err := loadFile(path); err == nil {
				return f, nil
			}
		}
		return Fallback(), nil
	}

	path := name
	if filepath.Base(name) == name {
		found, err := findfont.Find(name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFont, err, "find font %q", name)
		}
		path = found
	}
	return loadFile(path)
}

func loadFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFont, err, "read font %s", path)
	}
	return Parse(path, data)
}

// Parse parses TTF bytes.
func Parse(name string, data []byte) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFont, err, "parse font %s", name)
	}
	return &Font{Name: name, Data: data, tt: tt, faces: map[float64]font.Face{}}, nil
}

var (
	fallback     *Font
	fallbackOnce sync.Once
)

// Fallback returns the embedded Go Mono font.
func Fallback() *Font {
	fallbackOnce.Do(func() {
		f, err := Parse(FallbackName, gomono.TTF)
		if err != nil {
			panic("fonts: embedded Go Mono does not parse: " + err.Error())
		}
		fallback = f
	})
	return fallback
}

// IsFallback reports whether f is the embedded face.
func (f *Font) IsFallback() bool { return f.Name == FallbackName }

// Face returns a face at the given pixel size. Faces are cached per size.
func (f *Font) Face(size float64) font.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	f.faces[size] = face
	return face
}

// Metrics returns ascent and descent in pixels at the given size.
func (f *Font) Metrics(size float64) (ascent, descent float64) {
	m := f.Face(size).Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

// TextWidth returns the advance width of s in pixels at the given size.
func (f *Font) TextWidth(s string, size float64) float64 {
	face := f.Face(size)
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat(font.MeasureString(face, s))
}
