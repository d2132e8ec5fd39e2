package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tableaxis/pkg/scene"
)

// Options configures outline rendering.
type Options struct {
	// Detailed adds layout, sizing and size to node labels.
	// When false, only the name and type are shown.
	Detailed bool

	// MaxDepth limits how many levels below the root are drawn.
	// Zero means no limit.
	MaxDepth int
}

// ToDOT converts the subtree rooted at root to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(root *scene.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	var edges []string
	var walk func(n *scene.Node, depth int)
	walk = func(n *scene.Node, depth int) {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed)), ", "))
		if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
			return
		}
		for _, c := range n.Children() {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", n.ID, c.ID))
			walk(c, depth+1)
		}
	}
	walk(root, 0)

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *scene.Node, detailed bool) string {
	name := n.Name
	if name == "" {
		name = n.ID
	}
	head := fmt.Sprintf("%s (%s)", name, strings.ToLower(n.Kind.String()))
	if n.Text != "" && n.Text != n.Name {
		head += "\n" + strconv.Quote(n.Text)
	}
	if !detailed {
		return head
	}

	parts := []string{fmt.Sprintf("%gx%g", n.Width, n.Height)}
	if n.Layout != scene.LayoutNone {
		parts = append(parts, "layout: "+strings.ToLower(n.Layout.String()))
	}
	if n.SizingH != scene.SizingInherit || n.SizingV != scene.SizingInherit {
		parts = append(parts, fmt.Sprintf("sizing: %s/%s", strings.ToLower(n.SizingH.String()), strings.ToLower(n.SizingV.String())))
	}
	if n.Grow {
		parts = append(parts, "grow")
	}
	if n.IsAbsolute() {
		parts = append(parts, fmt.Sprintf("absolute at %g,%g", n.X, n.Y))
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *scene.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	style := []string{"rounded", "filled"}
	switch {
	case !n.Visible:
		style = append(style, "dashed")
		attrs = append(attrs, "fillcolor=lightgrey", "fontcolor=grey40")
	case n.IsAbsolute():
		style = append(style, "dotted")
	}
	if n.Layout != scene.LayoutNone {
		style = append(style, "bold")
	}
	if len(style) > 2 {
		attrs = append(attrs, fmt.Sprintf("style=%q", strings.Join(style, ",")))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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

// normalizeViewBox moves the diagram to the origin and sets an explicit
// pixel size so browsers scale it predictably.
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

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
