package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/runegrid/pkg/dataset"
	"github.com/matzehuels/runegrid/pkg/loader"
	"github.com/matzehuels/runegrid/pkg/observability"
	"github.com/matzehuels/runegrid/pkg/render/sink"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

// Runner executes headless runs against one data source.
//
// The Runner holds no per-run state; multiple goroutines can call Execute
// with different options.
type Runner struct {
	Loader *loader.Loader
	Logger *log.Logger
}

// NewRunner creates a runner that fetches through f.
// A nil logger uses log.Default().
func NewRunner(f loader.Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Loader: loader.New(f, logger),
		Logger: logger,
	}
}

// Frame is the outcome of the frame stage.
type Frame struct {
	Canvas   *sink.Canvas
	Recorder *sketch.Recorder
	Sketch   *sketch.Sketch
}

// Execute runs the complete load → frames → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Load
	loadStart := time.Now()
	var st *sketch.State
	if opts.NeedsFrames() {
		res, err := r.Loader.Load(ctx, loader.Options{Paths: opts.Paths, Concurrency: opts.Concurrency})
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		if err := res.State.Queue.Wait(ctx); err != nil {
			return nil, fmt.Errorf("load icons: %w", err)
		}
		st = res.State
		result.Paths = res.Paths
		p := st.Queue.Progress()
		result.Stats.Loaded, result.Stats.Failed = p.Loaded, p.Failed
	} else {
		paths, err := r.Loader.FetchDataset(ctx, opts.Paths)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		result.Paths = paths
	}
	result.Stats.PathCount = len(result.Paths)
	result.Stats.ImageCount = dataset.ImageCount(result.Paths)
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Info("loaded",
		"paths", result.Stats.PathCount,
		"images", result.Stats.ImageCount,
		"failed", result.Stats.Failed,
		"duration", result.Stats.LoadTime.Round(time.Millisecond))

	// Stage 2: Frames
	var frame *Frame
	if st != nil {
		frameStart := time.Now()
		frame = r.RunFrames(st, opts)
		result.Stats.Frames = frame.Sketch.FrameCount()
		result.Stats.FrameTime = time.Since(frameStart)
		logger.Debug("drew frames", "frames", result.Stats.Frames, "ops", len(frame.Recorder.Ops))
	}

	// Stage 3: Render
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, err := Render(result, frame, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime.Round(time.Millisecond))

	return result, nil
}

// RunFrames draws up to opts.Frames frames of st on an off-screen canvas.
// Drawing stops early if the sketch stops looping.
func (r *Runner) RunFrames(st *sketch.State, opts Options) *Frame {
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	instructions := sketch.InstructionsFunc(func(text string) {
		logger.Debug("instructions", "text", text)
	})

	s := sketch.New(opts.Sketch, instructions)
	s.SetState(st)

	canvas := sink.NewCanvas(opts.Width, opts.Height, opts.Font)
	rec := sketch.NewRecorder(opts.Width, opts.Height)
	rec.Measure = canvas
	c := sink.Tee(canvas, rec)

	for range opts.Frames {
		if !s.Frame(c, opts.FPS) {
			break
		}
	}
	if reason := s.StopReason(); reason != "" {
		logger.Debug("sketch stopped", "reason", reason, "frame", s.FrameCount())
	}
	return &Frame{Canvas: canvas, Recorder: rec, Sketch: s}
}
