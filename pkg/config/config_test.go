package config

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/runegrid/pkg/errors"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

func TestDefaultIsValid(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset(%q): %v", name, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("huge")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("Preset(huge) error = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), "large, small") {
		t.Errorf("error should list presets: %v", err)
	}
}

func TestPresetCaseInsensitive(t *testing.T) {
	cfg, err := Preset("SMALL")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 600 || cfg.Grid.CellSize != 10 {
		t.Errorf("small preset = %s", cfg)
	}
}

func TestPresetSizes(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cell, margin  int
		label         float64
	}{
		{Large, 1200, 600, 20, 5, 100},
		{Small, 600, 300, 10, 3, 50},
	}

	for _, tt := range tests {
		cfg, err := Preset(tt.name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", tt.name, err)
		}
		if cfg.Canvas.Width != tt.width || cfg.Canvas.Height != tt.height {
			t.Errorf("%s canvas = %dx%d, want %dx%d", tt.name, cfg.Canvas.Width, cfg.Canvas.Height, tt.width, tt.height)
		}
		if cfg.Grid.CellSize != tt.cell || cfg.Grid.Margin != tt.margin || cfg.Grid.LabelSize != tt.label {
			t.Errorf("%s grid = %+v", tt.name, cfg.Grid)
		}
		if cfg.Loop.StopKey != string(sketch.KeyNumpad1) {
			t.Errorf("%s stop key = %q", tt.name, cfg.Loop.StopKey)
		}
	}

	if d := Default(); d.Canvas.Width != 1200 {
		t.Errorf("Default() width = %d, want 1200", d.Canvas.Width)
	}
}

func TestHSBColor(t *testing.T) {
	tests := []struct {
		hsb  HSB
		want string
	}{
		{HSB{234, 34, 24}, "#282a3d"},
		{HSB{0, 0, 100}, "#ffffff"},
		{HSB{0, 0, 0}, "#000000"},
		{HSB{0, 100, 100}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.hsb.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %s, want %s", tt.hsb, got, tt.want)
		}
	}

	c := HSB{234, 34, 24}.Color().(color.NRGBA)
	if c != (color.NRGBA{R: 0x28, G: 0x2a, B: 0x3d, A: 255}) {
		t.Errorf("Color() = %+v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, "canvas.width"},
		{"huge height", func(c *Config) { c.Canvas.Height = 20000 }, "canvas.height"},
		{"zero cell", func(c *Config) { c.Grid.CellSize = 0 }, "grid.cell_size"},
		{"negative margin", func(c *Config) { c.Grid.Margin = -1 }, "grid.margin"},
		{"zero label", func(c *Config) { c.Grid.LabelSize = 0 }, "grid.label_size"},
		{"no debug lines", func(c *Config) { c.Debug.Lines = 0 }, "debug.lines"},
		{"negative frames", func(c *Config) { c.Loop.MaxFrames = -1 }, "loop.max_frames"},
		{"no stop key", func(c *Config) { c.Loop.StopKey = "" }, "loop.stop_key"},
		{"bad hue", func(c *Config) { c.Canvas.Background = HSB{400, 0, 0} }, "canvas.background hue"},
		{"bad brightness", func(c *Config) { c.Grid.LabelColor = HSB{0, 0, 101} }, "grid.label_color brightness"},
		{"bad data url", func(c *Config) { c.Source.DataURL = "ftp://x" }, "source.data_url"},
		{"empty cdn", func(c *Config) { c.Source.CDNBase = "" }, "source.cdn_base"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Validate() = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, path, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if cfg != Default() {
		t.Errorf("cfg = %s, want defaults", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), "")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("Load error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadOverlaysPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
font = "/fonts/mono.ttf"

[canvas]
width = 800
background = [120, 50, 50]

[grid]
whole_paths = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, got, err := Load(path, Small)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.Font != "/fonts/mono.ttf" || cfg.Canvas.Width != 800 || !cfg.Grid.WholePaths {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Canvas.Background != (HSB{120, 50, 50}) {
		t.Errorf("background = %v", cfg.Canvas.Background)
	}
	// Untouched keys keep the small preset's values.
	if cfg.Canvas.Height != 300 || cfg.Grid.CellSize != 10 {
		t.Errorf("preset values lost: %s", cfg)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "runegrid", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[loop]\nmax_frames = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, got, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != path || cfg.Loop.MaxFrames != 10 {
		t.Errorf("Load = (%d, %q)", cfg.Loop.MaxFrames, got)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"syntax", "[canvas\nwidth = 1", "parse config"},
		{"unknown key", "[canvas]\ndepth = 3\n", "canvas.depth"},
		{"wrong type", "[canvas]\nwidth = \"wide\"\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, err := Load(path, "")
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Load error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Font = "consola.ttf"
	cfg.Grid.WholePaths = true

	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := cfg.WriteFile(path, false); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := cfg.WriteFile(path, false); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("second WriteFile = %v, want INVALID_INPUT", err)
	}
	if err := cfg.WriteFile(path, true); err != nil {
		t.Errorf("WriteFile(overwrite): %v", err)
	}

	got, _, err := Load(path, Small)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"[source]", "data_url", "[grid]", "whole_paths = true", "stop_key = \"numpad1\""} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("encoded config missing %q:\n%s", key, buf.String())
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"RUNEGRID_WIDTH":     "640",
		"RUNEGRID_CELL_SIZE": "12",
		"RUNEGRID_DEBUG":     "false",
		"RUNEGRID_STOP_KEY":  "space",
		"RUNEGRID_FONT":      "",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	applied, err := cfg.ApplyEnv(lookup)
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if len(applied) != 4 {
		t.Errorf("applied = %v, want 4 names", applied)
	}
	if cfg.Canvas.Width != 640 || cfg.Grid.CellSize != 12 || cfg.Debug.Enabled || cfg.Loop.StopKey != "space" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Font != "" {
		t.Errorf("empty variable should be ignored, font = %q", cfg.Font)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	cfg := Default()
	_, err := cfg.ApplyEnv(func(k string) (string, bool) {
		if k == "RUNEGRID_HEIGHT" {
			return "tall", true
		}
		return "", false
	})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("ApplyEnv error = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), "RUNEGRID_HEIGHT") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestEnvNames(t *testing.T) {
	for _, name := range EnvNames() {
		if !strings.HasPrefix(name, EnvPrefix) {
			t.Errorf("%s lacks prefix", name)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing file: %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("RUNEGRID_TEST_DOTENV=from-file\nRUNEGRID_TEST_KEEP=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RUNEGRID_TEST_KEEP", "from-env")
	t.Setenv("RUNEGRID_TEST_DOTENV", "")
	os.Unsetenv("RUNEGRID_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("RUNEGRID_TEST_DOTENV"); got != "from-file" {
		t.Errorf("RUNEGRID_TEST_DOTENV = %q", got)
	}
	if got := os.Getenv("RUNEGRID_TEST_KEEP"); got != "from-env" {
		t.Errorf("existing variable overwritten: %q", got)
	}
}

func TestSketchOptions(t *testing.T) {
	cfg := Default()
	cfg.Loop.StopKey = "NUMPAD1"
	cfg.Grid.WholePaths = true

	opts := cfg.SketchOptions()
	def := sketch.DefaultOptions()

	if opts.StopKey != def.StopKey {
		t.Errorf("StopKey = %q, want %q", opts.StopKey, def.StopKey)
	}
	if opts.MaxFrames != def.MaxFrames || opts.DebugLines != def.DebugLines || opts.DebugSize != def.DebugSize {
		t.Errorf("loop/debug options = %+v", opts)
	}
	if opts.Grid.CellSize != 20 || opts.Grid.Margin != 5 || opts.Grid.LabelOffset != 4 || !opts.Grid.WholePaths {
		t.Errorf("grid = %+v", opts.Grid)
	}
	r1, g1, b1, _ := opts.Background.RGBA()
	r2, g2, b2, _ := def.Background.RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("background differs from sketch default")
	}
}
