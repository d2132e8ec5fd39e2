// Package outline renders a scene subtree as a Graphviz diagram.
//
// # Overview
//
// Each node becomes a box labelled with its name and type, connected to its
// children in document order. It is a quick way to see how a table is built
// before and after a switch:
//
//	dot := outline.ToDOT(table, outline.Options{Detailed: true})
//	svg, err := outline.RenderSVG(ctx, dot)
//
// # Styles
//
//   - auto-layout frames are drawn bold, with their direction in the label
//   - hidden nodes are dashed and grey
//   - freely positioned nodes (overlays) are dotted
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package outline
