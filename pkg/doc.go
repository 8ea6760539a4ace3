// Package pkg provides the libraries behind runegrid.
//
// # Overview
//
// runegrid fetches the Runes Reforged dataset (paths → slots → runes), downloads
// every icon it references and draws them as a grid: one labelled block per
// path, one row of cells per slot. The pkg directory is organized into four
// areas:
//
//  1. Data: [dataset] types, the [integrations] HTTP client and its
//     [integrations/ddragon] source, and the [loader] that ties them together
//  2. Drawing: [asset] image handles, the [sketch] grid renderer and debug
//     overlay, and [fonts]
//  3. Output: [render/window] (live), [render/sink] (PNG/JSON) and
//     [render/nodelink] (Graphviz diagrams), orchestrated headlessly by [pipeline]
//  4. Support: [config], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow:
//
//	runesReforged.json ── ddragon.Client ──► dataset.RunePath
//	         │                                    │
//	         │                              loader.Build
//	         ▼                                    ▼
//	icon fetches (errgroup) ──Post──► asset.Queue ──Drain──► sketch.State
//	                                                              │
//	                                           sketch.Sketch.Frame(canvas)
//	                                                              │
//	                      window (Ebitengine) / sink.Canvas (gg) / sketch.Recorder
//
// Fetches run on goroutines and never touch the image graph directly. They
// post results to the queue; the render thread applies them at the top of
// each frame.
//
// # Quick Start
//
// Render one frame to PNG:
//
//	client := ddragon.NewClient("", "")
//	runner := pipeline.NewRunner(client, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Formats: []string{"png"}})
//	os.WriteFile("runes.png", result.Artifacts["png"], 0o644)
//
// Drive the sketch yourself:
//
//	res, _ := loader.New(client, logger).Load(ctx, loader.Options{})
//	s := sketch.New(sketch.DefaultOptions(), nil)
//	s.SetState(res.State)
//	for s.Frame(canvas, 60) {
//	    // present canvas
//	}
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/sketch/...     # Grid and overlay
//	go test -run Example ./...   # Examples only
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/dataset
// [integrations]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/integrations
// [integrations/ddragon]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/integrations/ddragon
// [loader]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/loader
// [asset]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/asset
// [sketch]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/sketch
// [fonts]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/fonts
// [render/window]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/render/window
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/runegrid/pkg/buildinfo
package pkg
