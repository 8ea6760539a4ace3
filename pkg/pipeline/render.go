package pipeline

import (
	"fmt"

	"github.com/matzehuels/runegrid/pkg/dataset"
	"github.com/matzehuels/runegrid/pkg/render/nodelink"
	"github.com/matzehuels/runegrid/pkg/render/sink"
)

// Render produces every requested artifact.
// frame may be nil when no requested format needs drawn frames.
func Render(result *Result, frame *Frame, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatPNG:
			if frame == nil {
				return nil, fmt.Errorf("png: no frame drawn")
			}
			var pngOpts []sink.PNGOption
			if opts.Scale > 0 {
				pngOpts = append(pngOpts, sink.WithScale(opts.Scale))
			}
			data, err = sink.RenderPNG(frame.Canvas, pngOpts...)
		case FormatJSON:
			if frame == nil {
				return nil, fmt.Errorf("json: no frame drawn")
			}
			data, err = sink.RenderJSON(frame.Recorder,
				sink.WithRunID(result.RunID),
				sink.WithFrame(frame.Sketch.FrameCount()),
				sink.WithPaths(dataset.Keys(result.Paths)))
		case FormatDOT, FormatSVG, FormatPDF:
			if dot == "" {
				dot = nodelink.ToDOT(result.Paths, nodelink.Options{Detailed: opts.Detailed})
			}
			switch format {
			case FormatDOT:
				data = []byte(dot)
			case FormatSVG:
				data, err = nodelink.RenderSVG(dot)
			case FormatPDF:
				data, err = nodelink.RenderPDF(dot)
			}
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
