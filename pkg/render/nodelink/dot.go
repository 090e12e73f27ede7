package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/citeorder/pkg/dag"
	"github.com/matzehuels/citeorder/pkg/toposort"
)

// DefaultTitle is the graph label used when Options.Title is empty.
const DefaultTitle = "Citation Graph – Nanotechnology in Sustainable Agriculture"

// Options configures citation diagram generation.
type Options struct {
	// Title is drawn above the diagram. Empty uses [DefaultTitle].
	Title string

	// Years maps node IDs to publication years. Nodes with a year get it as
	// a second label line and are colored on a viridis scale from the
	// oldest (dark purple) to the newest (yellow) paper.
	Years map[string]int
}

// ToDOT converts a citation graph to Graphviz DOT format. Arrows point from
// the citing paper to the cited one. The diagram is laid out bottom to top,
// so foundational papers end up at the top, and every BFS level becomes one
// rank=same row. Nodes without a level are left to Graphviz.
//
// Output is deterministic for the same inputs, which makes the DOT source
// usable as a cache key.
func ToDOT(g *dag.Graph, levels *toposort.Levels, opts Options) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	palette := newYearPalette(opts.Years)

	var buf bytes.Buffer
	buf.WriteString("digraph citations {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", title)
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  fontsize=20;\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fontsize=10, penwidth=1.2];\n")
	buf.WriteString("  edge [color=gray, arrowsize=0.7];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, id := range g.Universe() {
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(fmtAttrs(id, opts.Years, palette), ", "))
	}

	buf.WriteString("\n")
	for _, group := range toposort.AnalyzeLevels(levels) {
		quoted := make([]string, len(group.Nodes))
		for i, id := range group.Nodes {
			quoted[i] = strconv.Quote(id)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
	}

	buf.WriteString("\n")
	for _, from := range g.Keys() {
		for _, to := range g.Successors(from) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(id string, years map[string]int, p yearPalette) []string {
	year, ok := years[id]
	if !ok {
		return []string{fmt.Sprintf("label=%q", id), "fillcolor=\"#dddddd\""}
	}
	fill := p.color(year)
	font := "black"
	if l, _, _ := fill.Lab(); l < 0.5 {
		font = "white"
	}
	return []string{
		fmt.Sprintf("label=%q", fmt.Sprintf("%s\n%d", id, year)),
		fmt.Sprintf("fillcolor=%q", fill.Hex()),
		"fontcolor=" + font,
	}
}

// viridis is a coarse sampling of matplotlib's viridis colormap.
var viridis = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

type yearPalette struct {
	first, last int
	stops       []colorful.Color
}

func newYearPalette(years map[string]int) yearPalette {
	p := yearPalette{}
	seen := false
	for _, y := range years {
		if !seen || y < p.first {
			p.first = y
		}
		if !seen || y > p.last {
			p.last = y
		}
		seen = true
	}
	for _, hex := range viridis {
		c, _ := colorful.Hex(hex)
		p.stops = append(p.stops, c)
	}
	return p
}

// color interpolates the palette at the position of year within the range.
func (p yearPalette) color(year int) colorful.Color {
	t := 0.0
	if p.last > p.first {
		t = float64(year-p.first) / float64(p.last-p.first)
	}
	t = min(max(t, 0), 1)

	seg := t * float64(len(p.stops)-1)
	i := min(int(seg), len(p.stops)-2)
	return p.stops[i].BlendLab(p.stops[i+1], seg-float64(i)).Clamped()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one whose
// viewBox starts at the origin and whose size matches it, so the SVG scales
// cleanly when embedded.
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
