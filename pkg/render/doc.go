// Package render holds the output backends for the rune grid.
//
// # Overview
//
//   - [sink]: off-screen PNG (fogleman/gg) and JSON layout export
//   - [window]: the live Ebitengine window with keyboard input
//   - [nodelink]: the rune tree as a Graphviz node-link diagram
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF with the external rsvg-convert tool (from
// librsvg). The node-link diagram uses it for PDF export:
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/matzehuels/runegrid/pkg/render/sink
// [window]: github.com/matzehuels/runegrid/pkg/render/window
// [nodelink]: github.com/matzehuels/runegrid/pkg/render/nodelink
package render
