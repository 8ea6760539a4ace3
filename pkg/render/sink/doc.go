// Package sink provides off-screen outputs for the rune grid.
//
// # Overview
//
// A "sink" turns a rendered frame into a file format:
//
//   - PNG: [Canvas] rasterizes frames with fogleman/gg; [RenderPNG] encodes
//     the current frame
//   - JSON: [RenderJSON] exports the draw calls captured by a
//     [sketch.Recorder] (positions, sizes, colours, icon sources)
//
// Both sinks see the same frame when the canvases are combined with [Tee]:
//
//	c := sink.NewCanvas(1200, 600, font)
//	rec := sketch.NewRecorder(1200, 600)
//	rec.Measure = c
//	s.Frame(sink.Tee(c, rec), 60)
//
//	png, err := sink.RenderPNG(c)
//	js, err := sink.RenderJSON(rec, sink.WithRunID(id))
//
// [sketch.Recorder]: github.com/matzehuels/runegrid/pkg/sketch.Recorder
package sink
