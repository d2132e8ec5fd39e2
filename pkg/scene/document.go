package scene

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrUnknownNode is returned by [Document.Select] when an id is not
	// registered in the document.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateID is returned by [Document.Graft] when a node id is
	// already registered to another node.
	ErrDuplicateID = errors.New("duplicate node ID")
)

// defaultFill is the paint a new frame starts with, as in the host.
var defaultFill = Paint{Color: "#ffffff"}

// Document is an in-memory scene graph with a single page root.
//
// It mirrors the behaviour of the authoring host that the table operations
// are written against: it hands out ids, clones subtrees and re-defaults the
// layout properties of children attached to an auto-layout frame.
//
// Document is not safe for concurrent use.
type Document struct {
	Name string

	page      *Node
	nodes     map[string]*Node
	selection []string
	newID     func() string
}

// New creates an empty document with a page named name.
func New(name string) *Document {
	d := &Document{
		Name:  name,
		nodes: make(map[string]*Node),
		newID: func() string { return uuid.NewString() },
	}
	d.page = &Node{ID: d.newID(), Name: name, Kind: KindPage, Visible: true}
	d.nodes[d.page.ID] = d.page
	return d
}

// SetIDFunc replaces the id generator. Tests use it for stable ids.
func (d *Document) SetIDFunc(fn func() string) {
	if fn != nil {
		d.newID = fn
	}
}

// Page returns the page root.
func (d *Document) Page() *Node { return d.page }

// Node returns the node registered under id.
func (d *Document) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// NodeCount returns the number of registered nodes, the page included.
func (d *Document) NodeCount() int { return len(d.nodes) }

// FindByName returns every node attached under the page whose name is name,
// in tree order.
func (d *Document) FindByName(name string) []*Node {
	var out []*Node
	d.page.Walk(func(n *Node) bool {
		if n != d.page && n.Name == name {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Selection returns the currently selected nodes in selection order. Ids
// whose nodes were removed since the selection was made are skipped.
func (d *Document) Selection() []*Node {
	out := make([]*Node, 0, len(d.selection))
	for _, id := range d.selection {
		if n, ok := d.nodes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// SelectionIDs returns the raw selection.
func (d *Document) SelectionIDs() []string { return slices.Clone(d.selection) }

// Select replaces the selection. All ids must be registered.
func (d *Document) Select(ids ...string) error {
	for _, id := range ids {
		if _, ok := d.nodes[id]; !ok {
			return errors.Join(ErrUnknownNode, errors.New(id))
		}
	}
	d.selection = slices.Clone(ids)
	return nil
}

// CreateFrame creates a detached, visible 100×100 frame with the host's
// default white fill.
func (d *Document) CreateFrame() *Node {
	n := &Node{
		ID:      d.newID(),
		Name:    "Frame",
		Kind:    KindFrame,
		SizingH: SizingFixed,
		SizingV: SizingFixed,
		Width:   100,
		Height:  100,
		Visible: true,
		Fills:   []Paint{defaultFill},
	}
	d.nodes[n.ID] = n
	return n
}

// Graft attaches child under parent exactly as given, registering the
// child's subtree and assigning ids to nodes that have none. Unlike
// [Document.AppendChild] no host defaults are applied, which is what
// decoders need to rebuild a stored tree.
func (d *Document) Graft(parent, child *Node) error {
	if err := d.register(child); err != nil {
		return err
	}
	if child.parent != nil {
		detach(child)
	}
	parent.children = append(parent.children, child)
	child.parent = parent
	return nil
}

func (d *Document) register(n *Node) error {
	var err error
	n.Walk(func(c *Node) bool {
		if err != nil {
			return false
		}
		if c.ID == "" {
			c.ID = d.newID()
		}
		if existing, ok := d.nodes[c.ID]; ok && existing != c {
			err = errors.Join(ErrDuplicateID, errors.New(c.ID))
			return false
		}
		d.nodes[c.ID] = c
		return true
	})
	return err
}

// Clone returns a detached deep copy of n with fresh ids.
func (d *Document) Clone(n *Node) *Node {
	c := *n
	c.ID = d.newID()
	c.parent = nil
	c.children = nil
	c.Fills = slices.Clone(n.Fills)
	d.nodes[c.ID] = &c
	for _, child := range n.children {
		cc := d.Clone(child)
		cc.parent = &c
		c.children = append(c.children, cc)
	}
	return &c
}

// AppendChild attaches child as the last child of parent, detaching it from
// its current parent first.
func (d *Document) AppendChild(parent, child *Node) {
	d.InsertChild(parent, len(parent.children), child)
}

// InsertChild attaches child to parent at index. Out-of-range indexes are
// clamped.
//
// Like the host, attaching into an auto-layout frame resets the child's
// sizing modes, grow flag and positioning; callers must re-apply those
// properties afterwards.
func (d *Document) InsertChild(parent *Node, index int, child *Node) {
	if child.parent != nil {
		detach(child)
	}
	index = max(0, min(index, len(parent.children)))
	parent.children = slices.Insert(parent.children, index, child)
	child.parent = parent
	if _, ok := d.nodes[child.ID]; !ok {
		_ = d.register(child)
	}
	if parent.Layout != LayoutNone {
		child.SizingH = SizingInherit
		child.SizingV = SizingInherit
		child.Grow = false
		child.Positioning = PositionAuto
	}
}

// Remove detaches n and unregisters it and its descendants. Removed ids
// disappear from the selection.
func (d *Document) Remove(n *Node) {
	if n == d.page {
		return
	}
	if n.parent != nil {
		detach(n)
	}
	n.Walk(func(c *Node) bool {
		delete(d.nodes, c.ID)
		return true
	})
	d.selection = slices.DeleteFunc(d.selection, func(id string) bool {
		_, ok := d.nodes[id]
		return !ok
	})
}

func detach(n *Node) {
	p := n.parent
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	n.parent = nil
}
