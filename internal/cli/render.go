package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/runegrid/pkg/config"
	"github.com/matzehuels/runegrid/pkg/pipeline"
)

// renderCommand creates the render command for headless output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      sketchFlags
		formatsStr string
		output     string
		frames     int
		scale      float64
		detailed   bool
		pick       bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the rune grid to files without a window",
		Long: `Render the rune grid without opening a window.

Every icon is fetched before the first frame is drawn. Formats:
  png   the last drawn frame
  json  the draw operations of the last frame (positions, sizes, colours)
  dot   the rune tree as a Graphviz diagram
  svg   the rune tree diagram rendered by Graphviz
  pdf   the rune tree diagram as PDF (requires rsvg-convert)

With several formats, --output is used as a base name.`,
		Example: `  runegrid render -f png,json -o runes
  runegrid render --path Domination --path Sorcery --preset small
  runegrid render --pick -f svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			if pick {
				keys, err := c.pickPaths(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				flags.paths = keys
			}

			opts := pipeline.Options{
				Paths:       flags.paths,
				Concurrency: cfg.Source.Concurrency,
				Width:       cfg.Canvas.Width,
				Height:      cfg.Canvas.Height,
				Frames:      frames,
				Formats:     parseFormats(formatsStr),
				Scale:       scale,
				Detailed:    detailed,
				Sketch:      cfg.SketchOptions(),
				Logger:      c.Logger,
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if opts.NeedsFrames() {
				opts.Font = c.loadFont(cfg.Font)
			}
			return c.runRender(cmd.Context(), cfg, opts, output)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), json, dot, svg, pdf (comma-separated)")
	cmd.Flags().IntVar(&frames, "frames", pipeline.DefaultFrames, "frames to draw before capturing")
	cmd.Flags().Float64Var(&scale, "scale", 1, "PNG scale factor")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show icon names in diagrams")
	cmd.Flags().BoolVar(&pick, "pick", false, "choose paths interactively")

	return cmd
}

// runRender executes the pipeline and writes its artifacts.
func (c *CLI) runRender(ctx context.Context, cfg config.Config, opts pipeline.Options, output string) error {
	runner := pipeline.NewRunner(c.newClient(cfg), c.Logger)

	label := fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", "))
	spinner := newSpinner(ctx, label)
	spinner.Start()
	defer trackIcons(spinner, label)()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.Fail("Render failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(result, opts.Formats, output); err != nil {
		return err
	}
	if result.Stats.Failed > 0 {
		printWarning("%d icons could not be loaded and were skipped", result.Stats.Failed)
	}
	return nil
}

// writeArtifacts writes each format to its output path.
func writeArtifacts(result *pipeline.Result, formats []string, output string) error {
	printSuccess("Rendered %s", StyleHighlight.Render(strings.Join(formats, ", ")))
	for _, format := range formats {
		path := outputPath(output, format, len(formats))
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		data := result.Artifacts[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path, len(data))
	}
	printStats(result.Stats)
	return nil
}

// outputPath picks the file for one format.
// A single format writes to output verbatim; several formats share the base
// of output with their own extension.
func outputPath(output, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output) + "." + format
}

// basePath strips a known format extension from output.
// An empty output uses the application name.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
