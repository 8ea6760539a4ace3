// Package cli implements the runegrid command-line interface.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/runegrid/pkg/buildinfo"
	"github.com/matzehuels/runegrid/pkg/config"
	"github.com/matzehuels/runegrid/pkg/fonts"
	"github.com/matzehuels/runegrid/pkg/integrations/ddragon"
	"github.com/matzehuels/runegrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "runegrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags
	configPath string
	preset     string
	envFile    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "runegrid draws the Runes Reforged tree as a grid of icons",
		Long: `runegrid fetches the Runes Reforged dataset, downloads every rune icon and
lays them out as a grid: one labelled block per path, one row per slot.

Use 'run' for the live window or 'render' to write PNG, JSON or diagram files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/runegrid/config.toml)")
	pf.StringVar(&c.preset, "preset", config.Large, "size preset: "+strings.Join(config.PresetNames(), ", "))
	pf.StringVar(&c.envFile, "env-file", ".env", "dotenv file with RUNEGRID_* overrides")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	registerCompletions(root)
	for _, sub := range root.Commands() {
		registerCompletions(sub)
	}

	return root
}

// =============================================================================
// Config & Collaborators
// =============================================================================

// loadConfig layers preset, config file, .env and environment.
// Command flags are applied on top by the caller.
func (c *CLI) loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(c.envFile); err != nil {
		return config.Config{}, err
	}

	cfg, path, err := config.Load(c.configPath, c.preset)
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}

	applied, err := cfg.ApplyEnv(os.LookupEnv)
	if err != nil {
		return config.Config{}, err
	}
	if len(applied) > 0 {
		c.Logger.Debug("applied environment", "vars", applied)
	}
	return cfg, nil
}

// newClient creates the dataset and icon client for cfg.
func (c *CLI) newClient(cfg config.Config) *ddragon.Client {
	return ddragon.NewClient(cfg.Source.DataURL, cfg.Source.CDNBase)
}

// loadFont loads the configured font, falling back to the embedded face.
func (c *CLI) loadFont(name string) *fonts.Font {
	f, err := fonts.Load(name)
	if err != nil {
		c.Logger.Warn("font unavailable, using fallback", "font", name, "err", err)
		return fonts.Fallback()
	}
	if f.IsFallback() {
		c.Logger.Debug("using fallback font", "wanted", fonts.DefaultName)
	} else {
		c.Logger.Debug("loaded font", "font", f.Name)
	}
	return f
}

// =============================================================================
// Sketch Flags
// =============================================================================

// sketchFlags are the layout flags shared by run and render.
// A flag only overrides the config when it was set explicitly.
type sketchFlags struct {
	paths      []string
	width      int
	height     int
	cellSize   int
	margin     int
	maxFrames  int
	font       string
	stopKey    string
	noDebug    bool
	wholePaths bool
}

func (f *sketchFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.paths, "path", "p", nil, "only draw these paths (repeatable, case-insensitive)")
	fs.IntVar(&f.width, "width", 0, "canvas width in pixels")
	fs.IntVar(&f.height, "height", 0, "canvas height in pixels")
	fs.IntVar(&f.cellSize, "cell-size", 0, "icon cell size in pixels")
	fs.IntVar(&f.margin, "margin", 0, "gap after each path in pixels")
	fs.IntVar(&f.maxFrames, "max-frames", 0, "stop after this many frames (0 = unlimited)")
	fs.StringVar(&f.font, "font", "", "font file or system font name (default consola.ttf)")
	fs.StringVar(&f.stopKey, "stop-key", "", "key that freezes the sketch (default numpad1)")
	fs.BoolVar(&f.noDebug, "no-debug", false, "hide the debug overlay")
	fs.BoolVar(&f.wholePaths, "whole-paths", false, "hide a path until all its icons have arrived")
}

func (f *sketchFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := fs.Changed
	if set("width") {
		cfg.Canvas.Width = f.width
	}
	if set("height") {
		cfg.Canvas.Height = f.height
	}
	if set("cell-size") {
		cfg.Grid.CellSize = f.cellSize
	}
	if set("margin") {
		cfg.Grid.Margin = f.margin
	}
	if set("max-frames") {
		cfg.Loop.MaxFrames = f.maxFrames
	}
	if set("font") {
		cfg.Font = f.font
	}
	if set("stop-key") {
		cfg.Loop.StopKey = f.stopKey
	}
	if set("no-debug") {
		cfg.Debug.Enabled = !f.noDebug
	}
	if set("whole-paths") {
		cfg.Grid.WholePaths = f.wholePaths
	}
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	return strings.Split(s, ",")
}
