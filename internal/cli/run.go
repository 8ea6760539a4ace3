package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/runegrid/pkg/config"
	rgerrors "github.com/matzehuels/runegrid/pkg/errors"
	"github.com/matzehuels/runegrid/pkg/loader"
	"github.com/matzehuels/runegrid/pkg/render/window"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

// runCommand creates the run command that opens the live window.
func (c *CLI) runCommand() *cobra.Command {
	var (
		flags sketchFlags
		tps   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the live sketch window",
		Long: `Open a window and draw the rune grid every frame.

The window opens immediately; icons appear as they arrive. The debug overlay
in the bottom-left corner shows the frame rate, frame count and icon progress.
Press the stop key (numpad 1 by default) to freeze the sketch, or Escape to
close the window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg)
			if cmd.Flags().Changed("tps") {
				cfg.Loop.TPS = tps
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runWindow(cmd.Context(), cfg, flags.paths)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&tps, "tps", 0, "ticks per second (default 60)")

	return cmd
}

// validateStopKey checks that the window can report the configured key.
func validateStopKey(name string) error {
	k := sketch.Key(strings.ToLower(name))
	if !window.KnownKey(k) {
		return rgerrors.New(rgerrors.ErrCodeInvalidConfig, "unknown stop key %q (try numpad1, space, escape or a letter)", name)
	}
	return nil
}

// runWindow opens the window and loads the dataset in the background.
//
// A dataset failure closes the window and is returned; icon failures only
// leave gaps in the grid.
func (c *CLI) runWindow(ctx context.Context, cfg config.Config, paths []string) error {
	if err := validateStopKey(cfg.Loop.StopKey); err != nil {
		return err
	}

	game := window.New(window.Options{
		Title:  cfg.Canvas.Title,
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		TPS:    cfg.Loop.TPS,
		Font:   c.loadFont(cfg.Font),
		Logger: c.Logger,
	})
	s := sketch.New(cfg.SketchOptions(), game)

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	states := make(chan *sketch.State, 1)
	loadErr := make(chan error, 1)
	s.Follow(states)

	ld := loader.New(c.newClient(cfg), c.Logger)
	go func() {
		defer close(states)
		sw := startStopwatch(c.Logger)
		res, err := ld.Load(ctx, loader.Options{Paths: paths, Concurrency: cfg.Source.Concurrency})
		if err != nil {
			loadErr <- err
			cancel()
			return
		}
		states <- res.State
		<-res.Done
		if ctx.Err() == nil {
			p := res.State.Queue.Progress()
			sw.done("fetched icons", "total", p.Total, "failed", p.Failed)
		}
	}()

	c.Logger.Info("opening window", "size", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height), "hint", s.Hint())
	err := game.Run(ctx, s)
	if err == nil && !s.Looping() {
		c.Logger.Debug("window closed", "frames", s.FrameCount(), "reason", s.StopReason())
	}
	return windowErr(parent, err, loadErr)
}

// windowErr picks the error a window session reports. A canceled parent
// wins over everything, then a dataset failure, then the host's own error.
func windowErr(parent context.Context, runErr error, loadErr <-chan error) error {
	if err := parent.Err(); err != nil {
		return err
	}
	select {
	case err := <-loadErr:
		return err
	default:
	}
	return runErr
}
