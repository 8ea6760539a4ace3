// Package config holds runegrid's settings and their layering.
//
// Settings come from, in increasing precedence:
//
//  1. a preset ([Large] by default, or [Small])
//  2. a TOML file (see [DefaultPath])
//  3. RUNEGRID_* environment variables, optionally loaded from a .env file
//  4. command-line flags, applied by the CLI
//
// An example file:
//
//	font = "consola.ttf"
//
//	[source]
//	data_url = "https://ddragon.canisback.com/12.12.1/data/en_US/runesReforged.json"
//	cdn_base = "https://ddragon.canisback.com"
//
//	[canvas]
//	width = 1200
//	height = 600
//	background = [234, 34, 24] # hue 0-360, saturation 0-100, brightness 0-100
//
//	[grid]
//	cell_size = 20
//	margin = 5
//
//	[loop]
//	max_frames = 3000
//	stop_key = "numpad1"
package config

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/runegrid/pkg/errors"
	"github.com/matzehuels/runegrid/pkg/integrations/ddragon"
	"github.com/matzehuels/runegrid/pkg/loader"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

const appName = "runegrid"

// =============================================================================
// Types
// =============================================================================

// Config is the complete runegrid configuration.
type Config struct {
	Font   string       `toml:"font"`
	Source SourceConfig `toml:"source"`
	Canvas CanvasConfig `toml:"canvas"`
	Grid   GridConfig   `toml:"grid"`
	Debug  DebugConfig  `toml:"debug"`
	Loop   LoopConfig   `toml:"loop"`
}

// SourceConfig locates the dataset and icons.
type SourceConfig struct {
	DataURL     string `toml:"data_url"`
	CDNBase     string `toml:"cdn_base"`
	Concurrency int    `toml:"concurrency"`
}

// CanvasConfig sizes the canvas.
type CanvasConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background HSB    `toml:"background"`
}

// GridConfig controls the rune grid layout.
type GridConfig struct {
	CellSize    int     `toml:"cell_size"`
	Margin      int     `toml:"margin"`
	LabelSize   float64 `toml:"label_size"`
	LabelOffset int     `toml:"label_offset_cells"`
	LabelColor  HSB     `toml:"label_color"`
	WholePaths  bool    `toml:"whole_paths"`
}

// DebugConfig controls the debug overlay.
type DebugConfig struct {
	Enabled  bool    `toml:"enabled"`
	Lines    int     `toml:"lines"`
	FontSize float64 `toml:"font_size"`
}

// LoopConfig controls the frame loop.
type LoopConfig struct {
	MaxFrames int    `toml:"max_frames"`
	TPS       int    `toml:"tps"`
	StopKey   string `toml:"stop_key"`
}

// HSB is a colour as [hue 0-360, saturation 0-100, brightness 0-100].
type HSB [3]float64

// Color converts to an opaque RGB colour.
func (c HSB) Color() color.Color {
	rgb := colorful.Hsv(c[0], c[1]/100, c[2]/100).Clamped()
	r, g, b := rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the colour as #rrggbb.
func (c HSB) Hex() string {
	return colorful.Hsv(c[0], c[1]/100, c[2]/100).Clamped().Hex()
}

func (c HSB) validate(field string) error {
	if c[0] < 0 || c[0] > 360 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s hue must be in [0, 360] (got %v)", field, c[0])
	}
	for i, name := range []string{"saturation", "brightness"} {
		if v := c[i+1]; v < 0 || v > 100 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s %s must be in [0, 100] (got %v)", field, name, v)
		}
	}
	return nil
}

// =============================================================================
// Presets
// =============================================================================

// Preset names.
const (
	Large = "large"
	Small = "small"
)

var presets = map[string]func() Config{
	Large: large,
	Small: small,
}

func large() Config {
	return Config{
		Source: SourceConfig{
			DataURL:     ddragon.DefaultDataURL,
			CDNBase:     ddragon.DefaultCDNBase,
			Concurrency: loader.DefaultConcurrency,
		},
		Canvas: CanvasConfig{Title: appName, Width: 1200, Height: 600, Background: HSB{234, 34, 24}},
		Grid:   GridConfig{CellSize: 20, Margin: 5, LabelSize: 100, LabelOffset: 4, LabelColor: HSB{0, 0, 100}},
		Debug:  DebugConfig{Enabled: true, Lines: 5, FontSize: 14},
		Loop:   LoopConfig{MaxFrames: 3000, TPS: 60, StopKey: string(sketch.KeyNumpad1)},
	}
}

func small() Config {
	c := large()
	c.Canvas.Width, c.Canvas.Height = 600, 300
	c.Grid.CellSize, c.Grid.Margin, c.Grid.LabelSize = 10, 3, 50
	return c
}

// Default returns the large preset.
func Default() Config { return large() }

// Preset returns a named preset.
func Preset(name string) (Config, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown preset %q (must be one of: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return p(), nil
}

// PresetNames lists the presets alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Loading
// =============================================================================

// DefaultPath returns $XDG_CONFIG_HOME/runegrid/config.toml (or the
// platform's user config directory).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Load builds a config from a preset and a TOML file.
//
// An empty path reads [DefaultPath] if it exists. An explicit path that
// doesn't exist is an error. Keys missing from the file keep the preset's
// values.
func Load(path, preset string) (Config, string, error) {
	if preset == "" {
		preset = Large
	}
	cfg, err := Preset(preset)
	if err != nil {
		return Config{}, "", err
	}

	explicit := path != ""
	if !explicit {
		if path, err = DefaultPath(); err != nil {
			return cfg, "", nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, "", nil
		}
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, "", errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, path, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// WriteFile writes cfg to path, creating parent directories.
// An existing file is only replaced when overwrite is set.
func (c Config) WriteFile(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// =============================================================================
// Validation
// =============================================================================

// Validate reports the first invalid setting as an INVALID_CONFIG error.
func (c Config) Validate() error {
	if err := errors.ValidateURL(c.Source.DataURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "source.data_url")
	}
	if err := errors.ValidateURL(c.Source.CDNBase); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "source.cdn_base")
	}

	checks := []struct {
		ok   bool
		what string
		val  any
	}{
		{c.Source.Concurrency >= 0, "source.concurrency must not be negative", c.Source.Concurrency},
		{c.Canvas.Width > 0 && c.Canvas.Width <= 10000, "canvas.width must be in [1, 10000]", c.Canvas.Width},
		{c.Canvas.Height > 0 && c.Canvas.Height <= 10000, "canvas.height must be in [1, 10000]", c.Canvas.Height},
		{c.Grid.CellSize > 0, "grid.cell_size must be positive", c.Grid.CellSize},
		{c.Grid.Margin >= 0, "grid.margin must not be negative", c.Grid.Margin},
		{c.Grid.LabelSize > 0, "grid.label_size must be positive", c.Grid.LabelSize},
		{c.Grid.LabelOffset >= 0, "grid.label_offset_cells must not be negative", c.Grid.LabelOffset},
		{c.Debug.Lines >= 1 && c.Debug.Lines <= 32, "debug.lines must be in [1, 32]", c.Debug.Lines},
		{c.Debug.FontSize > 0, "debug.font_size must be positive", c.Debug.FontSize},
		{c.Loop.MaxFrames >= 0, "loop.max_frames must not be negative", c.Loop.MaxFrames},
		{c.Loop.TPS >= 0 && c.Loop.TPS <= 1000, "loop.tps must be in [0, 1000]", c.Loop.TPS},
		{c.Loop.StopKey != "", "loop.stop_key is required", c.Loop.StopKey},
	}
	for _, chk := range checks {
		if !chk.ok {
			return errors.New(errors.ErrCodeInvalidConfig, "%s (got %v)", chk.what, chk.val)
		}
	}

	if err := c.Canvas.Background.validate("canvas.background"); err != nil {
		return err
	}
	return c.Grid.LabelColor.validate("grid.label_color")
}

// =============================================================================
// Conversion
// =============================================================================

// SketchOptions converts the config to renderer options.
func (c Config) SketchOptions() sketch.Options {
	return sketch.Options{
		Background: c.Canvas.Background.Color(),
		Grid: sketch.Grid{
			CellSize:    c.Grid.CellSize,
			Margin:      c.Grid.Margin,
			LabelSize:   c.Grid.LabelSize,
			LabelOffset: c.Grid.LabelOffset,
			LabelColor:  c.Grid.LabelColor.Color(),
			WholePaths:  c.Grid.WholePaths,
		},
		Debug:      c.Debug.Enabled,
		DebugLines: c.Debug.Lines,
		DebugSize:  c.Debug.FontSize,
		MaxFrames:  c.Loop.MaxFrames,
		StopKey:    sketch.Key(strings.ToLower(c.Loop.StopKey)),
	}
}

// String summarizes the canvas for log output.
func (c Config) String() string {
	return fmt.Sprintf("%dx%d cell=%d margin=%d", c.Canvas.Width, c.Canvas.Height, c.Grid.CellSize, c.Grid.Margin)
}
