// Package nodelink renders the rune dataset as a node-link tree diagram.
//
// # Overview
//
// Where the grid shows icons, this diagram shows structure: each path links
// to its numbered slots, and each slot links to its runes. Graphviz lays the
// tree out left to right.
//
// # Usage
//
//	dot := nodelink.ToDOT(paths, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF output (requires rsvg-convert):
//
//	pdf, err := nodelink.RenderPDF(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
