package scene

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a scene node.
type Kind int

const (
	KindFrame Kind = iota
	KindPage
	KindComponent
	KindInstance
	KindGroup
	KindRectangle
	KindEllipse
	KindText
)

var kindNames = map[Kind]string{
	KindFrame:     "FRAME",
	KindPage:      "PAGE",
	KindComponent: "COMPONENT",
	KindInstance:  "INSTANCE",
	KindGroup:     "GROUP",
	KindRectangle: "RECTANGLE",
	KindEllipse:   "ELLIPSE",
	KindText:      "TEXT",
}

// String returns the upper-case name used in document files.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a node type name such as "FRAME" or "text".
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown node type %q", s)
}

// Caps is the set of properties a node kind supports.
type Caps uint8

const (
	CapResize Caps = 1 << iota
	CapFill
	CapVisibility
	CapPositioning
	CapAutoLayout
)

// Has reports whether all capabilities in c2 are present in c.
func (c Caps) Has(c2 Caps) bool { return c&c2 == c2 }

// Caps returns the capability set of the kind.
func (k Kind) Caps() Caps {
	switch k {
	case KindFrame, KindComponent, KindInstance:
		return CapResize | CapFill | CapVisibility | CapPositioning | CapAutoLayout
	case KindGroup:
		return CapResize | CapVisibility | CapPositioning
	case KindRectangle, KindEllipse, KindText:
		return CapResize | CapFill | CapVisibility | CapPositioning
	default:
		return 0
	}
}

// LayoutMode is the auto-layout direction of a frame.
type LayoutMode int

const (
	LayoutNone LayoutMode = iota
	LayoutHorizontal
	LayoutVertical
)

var layoutNames = []string{"NONE", "HORIZONTAL", "VERTICAL"}

func (m LayoutMode) String() string {
	if int(m) < len(layoutNames) && m >= 0 {
		return layoutNames[m]
	}
	return fmt.Sprintf("LayoutMode(%d)", int(m))
}

// ParseLayoutMode parses "NONE", "HORIZONTAL" or "VERTICAL". The empty
// string is LayoutNone.
func ParseLayoutMode(s string) (LayoutMode, error) {
	if s == "" {
		return LayoutNone, nil
	}
	for i, name := range layoutNames {
		if strings.EqualFold(name, s) {
			return LayoutMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown layout mode %q", s)
}

// Sizing is how a node is sized along one axis.
//
// SizingInherit is the value the host assigns to a freshly attached child:
// the node keeps its current size and follows the parent's defaults.
type Sizing int

const (
	SizingInherit Sizing = iota
	SizingFixed
	SizingHug
	SizingFill
)

var sizingNames = []string{"INHERIT", "FIXED", "HUG", "FILL"}

func (s Sizing) String() string {
	if int(s) < len(sizingNames) && s >= 0 {
		return sizingNames[s]
	}
	return fmt.Sprintf("Sizing(%d)", int(s))
}

// ParseSizing parses a sizing name. "STRETCH" is accepted as an alias of FILL
// and the empty string is SizingInherit.
func ParseSizing(s string) (Sizing, error) {
	if s == "" {
		return SizingInherit, nil
	}
	if strings.EqualFold(s, "STRETCH") {
		return SizingFill, nil
	}
	for i, name := range sizingNames {
		if strings.EqualFold(name, s) {
			return Sizing(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sizing %q", s)
}

// Positioning tells whether a child takes part in its parent's auto layout.
type Positioning int

const (
	PositionAuto Positioning = iota
	PositionAbsolute
)

func (p Positioning) String() string {
	if p == PositionAbsolute {
		return "ABSOLUTE"
	}
	return "AUTO"
}

// ParsePositioning parses "AUTO" or "ABSOLUTE"; the empty string is AUTO.
func ParsePositioning(s string) (Positioning, error) {
	switch strings.ToUpper(s) {
	case "", "AUTO":
		return PositionAuto, nil
	case "ABSOLUTE":
		return PositionAbsolute, nil
	}
	return 0, fmt.Errorf("unknown positioning %q", s)
}

// Paint is a solid fill.
type Paint struct {
	Color   string  // hex color, e.g. "#ffffff"
	Opacity float64 // 0..1, zero means opaque
}

// Padding is the inner spacing of an auto-layout frame.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Node is an element of the scene tree.
//
// Layout properties are plain fields. Structural changes (attach, insert,
// remove) go through [Document] so the parent links and id registry stay
// consistent.
type Node struct {
	ID   string
	Name string
	Kind Kind

	Layout      LayoutMode
	SizingH     Sizing
	SizingV     Sizing
	Grow        bool // fills the parent's primary axis
	Positioning Positioning
	ItemSpacing float64
	Padding     Padding

	X, Y          float64
	Width, Height float64
	Visible       bool
	Fills         []Paint
	Text          string

	parent   *Node
	children []*Node
}

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// Index returns the position of n within its parent, or -1 if detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Caps returns the capability set of the node's kind.
func (n *Node) Caps() Caps { return n.Kind.Caps() }

// Resize sets the node's width and height. Negative values are clamped to 0.
func (n *Node) Resize(w, h float64) {
	n.Width = max(w, 0)
	n.Height = max(h, 0)
}

// IsAbsolute reports whether the node is freely positioned.
func (n *Node) IsAbsolute() bool { return n.Positioning == PositionAbsolute }

// Walk calls fn for n and every descendant in depth-first pre-order.
// Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s %q (%s)", n.Kind, n.Name, n.ID)
	}
	return fmt.Sprintf("%s (%s)", n.Kind, n.ID)
}
