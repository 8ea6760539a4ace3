// Package pipeline renders the rune grid without a window.
//
// The headless pipeline has three stages:
//
//  1. Load: fetch and filter the dataset, then fetch every icon
//  2. Frames: run the sketch for N frames on an off-screen canvas
//  3. Render: encode the requested artifacts (PNG, JSON, DOT, SVG, PDF)
//
// Unlike the live window, the pipeline waits for every icon to resolve before
// drawing, so the first frame is already complete. Formats that only describe
// the dataset (dot, svg, pdf) skip icon fetching altogether.
//
// # Usage
//
//	client := ddragon.NewClient("", "")
//	runner := pipeline.NewRunner(client, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Formats: []string{"png", "json"},
//	    Paths:   []string{"Domination"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/runegrid/pkg/dataset"
	"github.com/matzehuels/runegrid/pkg/errors"
	"github.com/matzehuels/runegrid/pkg/fonts"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFrames is how many frames a headless run draws.
	DefaultFrames = 1

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1200

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600

	// DefaultFPS is the frame rate reported in the debug overlay.
	// Headless frames are not paced, so this is nominal.
	DefaultFPS = 60.0
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPDF:  true,
}

// FormatNames lists the supported formats in display order.
var FormatNames = []string{FormatPNG, FormatJSON, FormatDOT, FormatSVG, FormatPDF}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for a headless run.
type Options struct {
	// Load options
	Paths       []string `json:"paths,omitempty"`
	Concurrency int      `json:"concurrency,omitempty"`

	// Frame options
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	FPS    float64 `json:"fps,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`    // PNG scale factor
	Detailed bool     `json:"detailed,omitempty"` // icon names in diagram labels

	// Runtime options (not serialized)
	Sketch sketch.Options `json:"-"`
	Font   *fonts.Font    `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and JSON output.
	RunID string

	// Paths is the filtered dataset that was rendered.
	Paths []dataset.RunePath

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and count information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PathCount  int
	ImageCount int
	Loaded     int
	Failed     int
	Frames     int
	LoadTime   time.Duration
	FrameTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.Formats = dedupe(o.Formats)
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size must be positive (got %dx%d)", o.Width, o.Height)
	}
	if o.Frames == 0 {
		o.Frames = DefaultFrames
	}
	if o.Frames < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frames must be positive (got %d)", o.Frames)
	}
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must not be negative (got %v)", o.Scale)
	}
	if o.Sketch.StopKey == "" {
		o.Sketch = sketch.DefaultOptions()
	}

	if o.Font == nil {
		o.Font = fonts.Fallback()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// NeedsFrames reports whether any requested format is drawn by the sketch.
// Diagram formats only need the dataset.
func (o *Options) NeedsFrames() bool {
	return o.Wants(FormatPNG) || o.Wants(FormatJSON)
}

// Wants reports whether format was requested.
func (o *Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
