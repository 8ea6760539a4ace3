package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/runegrid/pkg/dataset"
	"github.com/matzehuels/runegrid/pkg/render"
)

const pathFill = "#282a3d"

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the icon file name under each label.
	// When false, only the key is shown.
	Detailed bool
}

// ToDOT converts rune paths to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPDF].
//
// The tree has three levels: path → slot → rune. Slot nodes are drawn as
// small dashed circles since they carry no data of their own.
func ToDOT(paths []dataset.RunePath, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range paths {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=white];\n", pathID(p), fmtLabel(p.Key, p.Icon, opts.Detailed), pathFill)
		for i, slot := range p.Slots {
			sid := slotID(p, i)
			fmt.Fprintf(&buf, "  %q [label=%q, shape=circle, style=\"dashed\", fontsize=14];\n", sid, strconv.Itoa(i))
			fmt.Fprintf(&buf, "  %q -> %q;\n", pathID(p), sid)
			for _, r := range slot.Runes {
				rid := runeID(p, i, r)
				fmt.Fprintf(&buf, "  %q [label=%q];\n", rid, fmtLabel(r.Key, r.Icon, opts.Detailed))
				fmt.Fprintf(&buf, "  %q -> %q;\n", sid, rid)
			}
		}
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func pathID(p dataset.RunePath) string { return "path:" + p.Key }

func slotID(p dataset.RunePath, i int) string { return fmt.Sprintf("slot:%s:%d", p.Key, i) }

func runeID(p dataset.RunePath, slot int, r dataset.Rune) string {
	return fmt.Sprintf("rune:%s:%d:%s", p.Key, slot, r.Key)
}

func fmtLabel(key, icon string, detailed bool) string {
	if !detailed || icon == "" {
		return key
	}
	return key + "\n" + strings.TrimSuffix(path.Base(icon), path.Ext(icon))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the diagram scales with its
// container instead of using Graphviz's point-based width/height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
