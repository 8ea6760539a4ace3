package window

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/matzehuels/runegrid/pkg/asset"
	"github.com/matzehuels/runegrid/pkg/errors"
	"github.com/matzehuels/runegrid/pkg/fonts"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int         // ticks per second; 0 keeps Ebitengine's default of 60
	Font   *fonts.Font // nil uses the embedded fallback
	Logger *log.Logger // nil discards
}

type texture struct {
	version int
	img     *ebiten.Image
}

// Game hosts a sketch in an Ebitengine window.
type Game struct {
	opts   Options
	logger *log.Logger

	sketch *sketch.Sketch
	ctx    context.Context

	source   *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	textures map[*asset.Image]texture

	instructions string
	stopLogged   bool
}

// New creates a game. The window is not opened until [Game.Run].
func New(opts Options) *Game {
	if opts.Title == "" {
		opts.Title = "runegrid"
	}
	if opts.Font == nil {
		opts.Font = fonts.Fallback()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		opts:     opts,
		logger:   logger,
		faces:    map[float64]*text.GoTextFace{},
		textures: map[*asset.Image]texture{},
	}
}

// SetText updates the instructions shown in the window title.
func (g *Game) SetText(s string) {
	g.instructions = s
	ebiten.SetWindowTitle(g.Title())
}

// Title returns the window title for the current instructions.
func (g *Game) Title() string {
	if g.instructions == "" {
		return g.opts.Title
	}
	return g.opts.Title + " | " + g.instructions
}

// Run opens the window and blocks until it is closed, Escape is pressed, or
// ctx is done.
func (g *Game) Run(ctx context.Context, s *sketch.Sketch) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(g.opts.Font.Data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeFont, err, "load font %s", g.opts.Font.Name)
	}
	g.source = src
	g.sketch = s
	g.ctx = ctx

	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetScreenClearedEveryFrame(false)
	if g.opts.TPS > 0 {
		ebiten.SetTPS(g.opts.TPS)
	}

	g.logger.Debug("opening window", "width", g.opts.Width, "height", g.opts.Height, "font", g.opts.Font.Name)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return ctx.Err()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		name := KeyName(k)
		if name == "" {
			continue
		}
		if g.sketch.HandleKey(name) {
			g.logger.Info("sketch stopped", "key", string(name), "frames", g.sketch.FrameCount())
			g.stopLogged = true
			continue
		}
		if name == "escape" {
			return ebiten.Termination
		}
	}

	g.sketch.Update()

	if !g.sketch.Looping() && !g.stopLogged {
		g.logger.Info("sketch stopped", "reason", g.sketch.StopReason())
		g.stopLogged = true
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sketch.Frame(screenCanvas{g: g, dst: screen}, ebiten.ActualFPS())
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(int, int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) face(size float64) *text.GoTextFace {
	if f, ok := g.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: g.source, Size: size}
	g.faces[size] = f
	return f
}

// texture returns a GPU copy of img, re-uploading when its pixels changed.
func (g *Game) texture(img *asset.Image) *ebiten.Image {
	if !img.Ready() {
		return nil
	}
	t, ok := g.textures[img]
	if ok && t.version == img.Version() {
		return t.img
	}
	if ok {
		t.img.Deallocate()
	}
	t = texture{version: img.Version(), img: ebiten.NewImageFromImage(img.Pixels())}
	g.textures[img] = t
	return t.img
}
