package io

import (
	"fmt"

	"github.com/matzehuels/tableaxis/pkg/scene"
)

type document struct {
	Name      string   `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Selection []string `json:"selection,omitempty" toml:"selection,omitempty" yaml:"selection,omitempty"`
	Nodes     []node   `json:"nodes" toml:"nodes" yaml:"nodes"`
}

type node struct {
	ID          string   `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Type        string   `json:"type" toml:"type" yaml:"type"`
	Layout      string   `json:"layout,omitempty" toml:"layout,omitempty" yaml:"layout,omitempty"`
	SizingH     string   `json:"sizing_h,omitempty" toml:"sizing_h,omitempty" yaml:"sizing_h,omitempty"`
	SizingV     string   `json:"sizing_v,omitempty" toml:"sizing_v,omitempty" yaml:"sizing_v,omitempty"`
	Grow        bool     `json:"grow,omitempty" toml:"grow,omitempty" yaml:"grow,omitempty"`
	Positioning string   `json:"positioning,omitempty" toml:"positioning,omitempty" yaml:"positioning,omitempty"`
	ItemSpacing float64  `json:"item_spacing,omitempty" toml:"item_spacing,omitempty" yaml:"item_spacing,omitempty"`
	Padding     *padding `json:"padding,omitempty" toml:"padding,omitempty" yaml:"padding,omitempty"`
	X           float64  `json:"x,omitempty" toml:"x,omitempty" yaml:"x,omitempty"`
	Y           float64  `json:"y,omitempty" toml:"y,omitempty" yaml:"y,omitempty"`
	Width       float64  `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height      float64  `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Visible     *bool    `json:"visible,omitempty" toml:"visible,omitempty" yaml:"visible,omitempty"`
	Fills       []paint  `json:"fills,omitempty" toml:"fills,omitempty" yaml:"fills,omitempty"`
	Text        string   `json:"text,omitempty" toml:"text,omitempty" yaml:"text,omitempty"`
	Children    []node   `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
}

type padding struct {
	Top    float64 `json:"top,omitempty" toml:"top,omitempty" yaml:"top,omitempty"`
	Right  float64 `json:"right,omitempty" toml:"right,omitempty" yaml:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty" toml:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty" toml:"left,omitempty" yaml:"left,omitempty"`
}

type paint struct {
	Color   string  `json:"color" toml:"color" yaml:"color"`
	Opacity float64 `json:"opacity" toml:"opacity" yaml:"opacity"`
}

func toWire(d *scene.Document) document {
	out := document{
		Name:      d.Name,
		Selection: d.SelectionIDs(),
		Nodes:     make([]node, 0, d.Page().ChildCount()),
	}
	for _, c := range d.Page().Children() {
		out.Nodes = append(out.Nodes, encodeNode(c))
	}
	return out
}

func encodeNode(n *scene.Node) node {
	w := node{
		ID:          n.ID,
		Name:        n.Name,
		Type:        n.Kind.String(),
		Grow:        n.Grow,
		ItemSpacing: n.ItemSpacing,
		X:           n.X,
		Y:           n.Y,
		Width:       n.Width,
		Height:      n.Height,
		Text:        n.Text,
	}
	if n.Layout != scene.LayoutNone {
		w.Layout = n.Layout.String()
	}
	if n.SizingH != scene.SizingInherit {
		w.SizingH = n.SizingH.String()
	}
	if n.SizingV != scene.SizingInherit {
		w.SizingV = n.SizingV.String()
	}
	if n.IsAbsolute() {
		w.Positioning = n.Positioning.String()
	}
	if n.Padding != (scene.Padding{}) {
		w.Padding = &padding{Top: n.Padding.Top, Right: n.Padding.Right, Bottom: n.Padding.Bottom, Left: n.Padding.Left}
	}
	if !n.Visible {
		hidden := false
		w.Visible = &hidden
	}
	for _, f := range n.Fills {
		w.Fills = append(w.Fills, paint{Color: f.Color, Opacity: f.Opacity})
	}
	for _, c := range n.Children() {
		w.Children = append(w.Children, encodeNode(c))
	}
	return w
}

func fromWire(in document) (*scene.Document, error) {
	name := in.Name
	if name == "" {
		name = "Page 1"
	}
	d := scene.New(name)
	for i := range in.Nodes {
		if err := graft(d, d.Page(), &in.Nodes[i], fmt.Sprintf("nodes[%d]", i)); err != nil {
			return nil, err
		}
	}
	if len(in.Selection) > 0 {
		if err := d.Select(in.Selection...); err != nil {
			return nil, fmt.Errorf("selection: %w", err)
		}
	}
	return d, nil
}

func graft(d *scene.Document, parent *scene.Node, w *node, path string) error {
	n, err := decodeNode(w)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := d.Graft(parent, n); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for i := range w.Children {
		if err := graft(d, n, &w.Children[i], fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeNode(w *node) (*scene.Node, error) {
	kind, err := scene.ParseKind(w.Type)
	if err != nil {
		return nil, err
	}
	if kind == scene.KindPage {
		return nil, fmt.Errorf("pages cannot be nested")
	}
	layout, err := scene.ParseLayoutMode(w.Layout)
	if err != nil {
		return nil, err
	}
	sizingH, err := scene.ParseSizing(w.SizingH)
	if err != nil {
		return nil, err
	}
	sizingV, err := scene.ParseSizing(w.SizingV)
	if err != nil {
		return nil, err
	}
	pos, err := scene.ParsePositioning(w.Positioning)
	if err != nil {
		return nil, err
	}

	n := &scene.Node{
		ID:          w.ID,
		Name:        w.Name,
		Kind:        kind,
		Layout:      layout,
		SizingH:     sizingH,
		SizingV:     sizingV,
		Grow:        w.Grow,
		Positioning: pos,
		ItemSpacing: w.ItemSpacing,
		X:           w.X,
		Y:           w.Y,
		Width:       w.Width,
		Height:      w.Height,
		Visible:     w.Visible == nil || *w.Visible,
		Text:        w.Text,
	}
	if w.Padding != nil {
		n.Padding = scene.Padding{Top: w.Padding.Top, Right: w.Padding.Right, Bottom: w.Padding.Bottom, Left: w.Padding.Left}
	}
	for _, f := range w.Fills {
		n.Fills = append(n.Fills, scene.Paint{Color: f.Color, Opacity: f.Opacity})
	}
	return n, nil
}
