package table

import "github.com/matzehuels/tableaxis/pkg/scene"

// Host is the part of the authoring host's scene API the table operations
// mutate through. [scene.Document] implements it.
type Host interface {
	CreateFrame() *scene.Node
	Clone(n *scene.Node) *scene.Node
	AppendChild(parent, child *scene.Node)
	InsertChild(parent *scene.Node, index int, child *scene.Node)
	Remove(n *scene.Node)
}

var _ Host = (*scene.Document)(nil)

// props is an idempotent set of layout properties. The host re-defaults
// children when they are attached, so every property that matters is
// applied as a second step after the attach.
type props struct {
	caps        scene.Caps
	sizingH     scene.Sizing
	sizingV     scene.Sizing
	grow        bool
	positioning scene.Positioning
	x, y        float64
	width       float64
	height      float64
	visible     bool
}

// capture records the current layout properties of n.
func capture(n *scene.Node) props {
	return props{
		caps:        n.Caps(),
		sizingH:     n.SizingH,
		sizingV:     n.SizingV,
		grow:        n.Grow,
		positioning: n.Positioning,
		x:           n.X,
		y:           n.Y,
		width:       n.Width,
		height:      n.Height,
		visible:     n.Visible,
	}
}

func (p props) apply(n *scene.Node) {
	n.SizingH = p.sizingH
	n.SizingV = p.sizingV
	n.Grow = p.grow
	if p.caps.Has(scene.CapResize) {
		n.Resize(p.width, p.height)
	}
	if p.caps.Has(scene.CapVisibility) {
		n.Visible = p.visible
	}
	if p.caps.Has(scene.CapPositioning) {
		n.Positioning = p.positioning
		if p.positioning == scene.PositionAbsolute {
			n.X, n.Y = p.x, p.y
		}
	}
}

// attach is the two-phase attach: append child to parent, then apply p.
func attach(h Host, parent, child *scene.Node, p props) {
	h.AppendChild(parent, child)
	p.apply(child)
}
