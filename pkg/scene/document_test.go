package scene

import (
	"errors"
	"fmt"
	"testing"
)

func seqIDs() func() string {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("n%d", i)
	}
}

func newTestDoc() *Document {
	d := New("Page 1")
	d.SetIDFunc(seqIDs())
	return d
}

func TestNewDocument(t *testing.T) {
	d := New("Page 1")
	if d.Page() == nil || d.Page().Kind != KindPage {
		t.Fatal("page root missing")
	}
	if d.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", d.NodeCount())
	}
	if len(d.Selection()) != 0 {
		t.Error("new document should have an empty selection")
	}
}

func TestCreateFrameDefaults(t *testing.T) {
	d := newTestDoc()
	f := d.CreateFrame()

	if f.Parent() != nil {
		t.Error("CreateFrame should return a detached frame")
	}
	if f.Width != 100 || f.Height != 100 {
		t.Errorf("size = %vx%v, want 100x100", f.Width, f.Height)
	}
	if !f.Visible {
		t.Error("frame should be visible")
	}
	if len(f.Fills) != 1 || f.Fills[0].Color != "#ffffff" {
		t.Errorf("Fills = %v, want default white fill", f.Fills)
	}
	if _, ok := d.Node(f.ID); !ok {
		t.Error("frame should be registered")
	}
}

func TestAppendChildResetsLayoutProps(t *testing.T) {
	d := newTestDoc()
	row := d.CreateFrame()
	row.Layout = LayoutHorizontal
	cell := d.CreateFrame()
	cell.SizingH = SizingFill
	cell.SizingV = SizingHug
	cell.Grow = true
	cell.Positioning = PositionAbsolute

	d.AppendChild(row, cell)

	if cell.Parent() != row {
		t.Fatal("cell not attached")
	}
	if cell.SizingH != SizingInherit || cell.SizingV != SizingInherit {
		t.Errorf("sizing = %v/%v, want INHERIT/INHERIT", cell.SizingH, cell.SizingV)
	}
	if cell.Grow {
		t.Error("grow should be reset")
	}
	if cell.Positioning != PositionAuto {
		t.Errorf("positioning = %v, want AUTO", cell.Positioning)
	}
}

func TestAppendChildKeepsPropsWithoutLayout(t *testing.T) {
	d := newTestDoc()
	plain := d.CreateFrame()
	child := d.CreateFrame()
	child.SizingH = SizingHug
	child.Positioning = PositionAbsolute

	d.AppendChild(plain, child)

	if child.SizingH != SizingHug || child.Positioning != PositionAbsolute {
		t.Error("attaching to a frame without layout should not touch props")
	}
}

func TestInsertChildMovesNode(t *testing.T) {
	d := newTestDoc()
	a, b := d.CreateFrame(), d.CreateFrame()
	x, y, z := d.CreateFrame(), d.CreateFrame(), d.CreateFrame()
	d.AppendChild(a, x)
	d.AppendChild(a, y)
	d.AppendChild(b, z)

	d.InsertChild(b, 0, y)

	if a.ChildCount() != 1 || a.Children()[0] != x {
		t.Errorf("source children = %v, want [x]", a.Children())
	}
	if b.ChildCount() != 2 || b.Children()[0] != y || b.Children()[1] != z {
		t.Errorf("target children = %v, want [y z]", b.Children())
	}
	if y.Index() != 0 || z.Index() != 1 {
		t.Errorf("indexes = %d,%d, want 0,1", y.Index(), z.Index())
	}
}

func TestInsertChildClampsIndex(t *testing.T) {
	d := newTestDoc()
	p := d.CreateFrame()
	c1, c2 := d.CreateFrame(), d.CreateFrame()
	d.InsertChild(p, 10, c1)
	d.InsertChild(p, -3, c2)

	if p.Children()[0] != c2 || p.Children()[1] != c1 {
		t.Error("out-of-range indexes should be clamped")
	}
}

func TestCloneDeepCopy(t *testing.T) {
	d := newTestDoc()
	row := d.CreateFrame()
	row.Name = "Row"
	row.Layout = LayoutHorizontal
	cell := d.CreateFrame()
	cell.Name = "Cell"
	d.AppendChild(row, cell)
	d.AppendChild(d.Page(), row)

	c := d.Clone(row)

	if c == row || c.ID == row.ID {
		t.Fatal("clone must be a new node with a new id")
	}
	if c.Parent() != nil {
		t.Error("clone must be detached")
	}
	if c.Name != "Row" || c.Layout != LayoutHorizontal {
		t.Error("clone should copy properties")
	}
	if c.ChildCount() != 1 || c.Children()[0] == cell || c.Children()[0].Name != "Cell" {
		t.Error("clone should deep copy children")
	}
	if c.Children()[0].Parent() != c {
		t.Error("cloned child should point to cloned parent")
	}

	c.Fills[0].Color = "#000000"
	if row.Fills[0].Color != "#ffffff" {
		t.Error("clone fills must not alias the original")
	}
}

func TestRemoveUnregistersSubtree(t *testing.T) {
	d := newTestDoc()
	row := d.CreateFrame()
	cell := d.CreateFrame()
	d.AppendChild(row, cell)
	d.AppendChild(d.Page(), row)
	if err := d.Select(row.ID, cell.ID); err != nil {
		t.Fatal(err)
	}

	d.Remove(row)

	if d.Page().ChildCount() != 0 {
		t.Error("row should be detached from the page")
	}
	if _, ok := d.Node(cell.ID); ok {
		t.Error("descendants should be unregistered")
	}
	if len(d.Selection()) != 0 || len(d.SelectionIDs()) != 0 {
		t.Error("removed nodes should leave the selection")
	}
}

func TestRemovePageIsNoop(t *testing.T) {
	d := newTestDoc()
	d.Remove(d.Page())
	if _, ok := d.Node(d.Page().ID); !ok {
		t.Error("page must not be removable")
	}
}

func TestSelectUnknownNode(t *testing.T) {
	d := newTestDoc()
	err := d.Select("missing")
	if !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Select() error = %v, want ErrUnknownNode", err)
	}
}

func TestGraftKeepsProps(t *testing.T) {
	d := newTestDoc()
	table := &Node{Name: "Table", Kind: KindFrame, Layout: LayoutVertical, Visible: true}
	if err := d.Graft(d.Page(), table); err != nil {
		t.Fatal(err)
	}
	overlay := &Node{ID: "badge", Kind: KindText, Positioning: PositionAbsolute, SizingH: SizingHug, Visible: true}
	if err := d.Graft(table, overlay); err != nil {
		t.Fatal(err)
	}

	if table.ID == "" {
		t.Error("Graft should assign ids")
	}
	if overlay.Positioning != PositionAbsolute || overlay.SizingH != SizingHug {
		t.Error("Graft must not apply host defaults")
	}
	if n, ok := d.Node("badge"); !ok || n != overlay {
		t.Error("grafted node should be registered under its id")
	}

	dup := &Node{ID: "badge", Kind: KindRectangle}
	if err := d.Graft(table, dup); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Graft() error = %v, want ErrDuplicateID", err)
	}
}

func TestFindByName(t *testing.T) {
	d := newTestDoc()
	a, b := d.CreateFrame(), d.CreateFrame()
	a.Name, b.Name = "Table", "Table"
	d.AppendChild(d.Page(), a)
	d.AppendChild(a, b)
	detached := d.CreateFrame()
	detached.Name = "Table"

	got := d.FindByName("Table")
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("FindByName() = %v, want [a b]", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for k := range kindNames {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if s, err := ParseSizing("stretch"); err != nil || s != SizingFill {
		t.Errorf("ParseSizing(stretch) = %v, %v, want FILL", s, err)
	}
	if m, err := ParseLayoutMode(""); err != nil || m != LayoutNone {
		t.Errorf("ParseLayoutMode(\"\") = %v, %v", m, err)
	}
	if _, err := ParsePositioning("floating"); err == nil {
		t.Error("ParsePositioning should reject unknown values")
	}
}

func TestKindCaps(t *testing.T) {
	tests := []struct {
		kind Kind
		has  Caps
		not  Caps
	}{
		{KindFrame, CapAutoLayout | CapFill | CapResize, 0},
		{KindInstance, CapAutoLayout, 0},
		{KindGroup, CapResize | CapVisibility, CapFill},
		{KindText, CapFill | CapPositioning, CapAutoLayout},
		{KindPage, 0, CapVisibility},
	}
	for _, tt := range tests {
		caps := tt.kind.Caps()
		if !caps.Has(tt.has) {
			t.Errorf("%v caps %b missing %b", tt.kind, caps, tt.has)
		}
		if tt.not != 0 && caps.Has(tt.not) {
			t.Errorf("%v caps %b should not include %b", tt.kind, caps, tt.not)
		}
	}
}
