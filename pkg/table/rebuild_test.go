package table

import (
	"testing"

	"github.com/matzehuels/tableaxis/pkg/scene"
)

// meddlingHost re-defaults attached children more aggressively than the
// real host, so any property applied before an attach is lost.
type meddlingHost struct {
	*scene.Document
}

func (h meddlingHost) AppendChild(parent, child *scene.Node) {
	h.Document.AppendChild(parent, child)
	h.meddle(child)
}

func (h meddlingHost) InsertChild(parent *scene.Node, index int, child *scene.Node) {
	h.Document.InsertChild(parent, index, child)
	h.meddle(child)
}

func (meddlingHost) meddle(n *scene.Node) {
	n.SizingH = scene.SizingInherit
	n.SizingV = scene.SizingInherit
	n.Grow = false
	n.Positioning = scene.PositionAuto
	n.Visible = !n.Visible
	n.X, n.Y = -1, -1
	n.Resize(1, 1)
}

func rebuild(t *testing.T, h Host, table *scene.Node) (*Extraction, *scene.Node) {
	t.Helper()
	ex, err := Extract(table)
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateMatrix(ex.Matrix); err != nil {
		t.Fatal(err)
	}
	return ex, Rebuild(h, ex, StashOverlays(h, ex.Overlays), RebuildOptions{})
}

func TestRebuildRowsToColumns(t *testing.T) {
	d := newDoc()
	table := buildTable(d, RowMajor, []string{"a1", "a2", "a3"}, []string{"b1", "b2", "b3"})

	_, built := rebuild(t, d, table)

	if built.Parent() != nil {
		t.Error("rebuilt table should be detached")
	}
	if built.Layout != scene.LayoutHorizontal || AxisOf(built) != ColumnMajor {
		t.Errorf("layout = %v, want HORIZONTAL", built.Layout)
	}
	if built.SizingH != scene.SizingHug || built.SizingV != scene.SizingHug {
		t.Errorf("container sizing = %v/%v, want HUG/HUG", built.SizingH, built.SizingV)
	}
	if built.Name != DefaultName {
		t.Errorf("Name = %q, want %q", built.Name, DefaultName)
	}

	want := [][]string{{"a1", "b1"}, {"a2", "b2"}, {"a3", "b3"}}
	if got := grid(built); !equalGrid(got, want) {
		t.Fatalf("grid = %v, want %v", got, want)
	}
	if got := names(built); got[0] != "Column 1" || got[2] != "Column 3" {
		t.Errorf("line names = %v", got)
	}

	for _, col := range built.Children() {
		if col.Layout != scene.LayoutVertical {
			t.Errorf("%s layout = %v, want VERTICAL", col.Name, col.Layout)
		}
		if col.SizingH != scene.SizingFixed || col.SizingV != scene.SizingHug {
			t.Errorf("%s sizing = %v/%v, want FIXED/HUG", col.Name, col.SizingH, col.SizingV)
		}
		if col.Width != 80 || col.Height != 48 {
			t.Errorf("%s size = %vx%v, want 80x48", col.Name, col.Width, col.Height)
		}
		if len(col.Fills) != 0 {
			t.Errorf("%s should be transparent", col.Name)
		}
		for _, cell := range col.Children() {
			if cell.SizingH != scene.SizingFill {
				t.Errorf("cell %s SizingH = %v, want FILL", cell.Name, cell.SizingH)
			}
			if cell.SizingV != scene.SizingFixed {
				t.Errorf("cell %s SizingV = %v, want FIXED", cell.Name, cell.SizingV)
			}
			if cell.Width != 80 || cell.Height != 24 {
				t.Errorf("cell %s size = %vx%v, want 80x24", cell.Name, cell.Width, cell.Height)
			}
		}
	}
	if built.Width != 240 || built.Height != 48 {
		t.Errorf("table size = %vx%v, want 240x48", built.Width, built.Height)
	}
}

func TestRebuildColumnsToRows(t *testing.T) {
	d := newDoc()
	table := buildTable(d, ColumnMajor, []string{"a1", "b1"}, []string{"a2", "b2"}, []string{"a3", "b3"})

	_, built := rebuild(t, d, table)

	if AxisOf(built) != RowMajor {
		t.Fatalf("axis = %v, want row-major", AxisOf(built))
	}
	if !built.Grow {
		t.Error("row-major table should grow")
	}
	want := [][]string{{"a1", "a2", "a3"}, {"b1", "b2", "b3"}}
	if got := grid(built); !equalGrid(got, want) {
		t.Fatalf("grid = %v, want %v", got, want)
	}
	for _, row := range built.Children() {
		if row.SizingH != scene.SizingFill || row.SizingV != scene.SizingHug {
			t.Errorf("%s sizing = %v/%v, want FILL/HUG", row.Name, row.SizingH, row.SizingV)
		}
		if row.Width != 240 || row.Height != 24 {
			t.Errorf("%s size = %vx%v, want 240x24", row.Name, row.Width, row.Height)
		}
		for _, cell := range row.Children() {
			if cell.SizingH != scene.SizingFixed || cell.SizingV != scene.SizingFixed {
				t.Errorf("cell %s sizing = %v/%v, want source sizing", cell.Name, cell.SizingH, cell.SizingV)
			}
		}
	}
}

func TestRebuildClonesCells(t *testing.T) {
	d := newDoc()
	table := buildTable(d, RowMajor, []string{"a1", "a2"})
	src := table.Children()[0].Children()[0]

	_, built := rebuild(t, d, table)

	cell := built.Children()[0].Children()[0]
	if cell == src || cell.ID == src.ID {
		t.Error("cells must be cloned")
	}
	if src.Parent() != table.Children()[0] {
		t.Error("source cells must stay in place")
	}
	if src.SizingH != scene.SizingFixed {
		t.Error("source cells must not be modified")
	}
}

func TestRebuildLineVisibility(t *testing.T) {
	d := newDoc()
	table := buildTable(d, RowMajor, []string{"a1", "a2", "a3"}, []string{"b1", "b2", "b3"})
	table.Children()[0].Visible = false
	table.Children()[1].Children()[1].Visible = false

	_, built := rebuild(t, d, table)

	cols := built.Children()
	wantCols := []bool{true, false, true}
	for i, col := range cols {
		if col.Visible != wantCols[i] {
			t.Errorf("%s visible = %v, want %v", col.Name, col.Visible, wantCols[i])
		}
	}
	// Column 1: a1 hidden by its row, b1 shown.
	if cols[0].Children()[0].Visible || !cols[0].Children()[1].Visible {
		t.Error("cells should carry their effective visibility")
	}
}

func TestRebuildTransposesSpacing(t *testing.T) {
	d := newDoc()
	table := buildTable(d, RowMajor, []string{"a1", "a2"}, []string{"b1", "b2"})
	table.ItemSpacing = 8
	table.Padding = scene.Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	table.Fills = []scene.Paint{{Color: "#eeeeee", Opacity: 1}}
	for _, row := range table.Children() {
		row.ItemSpacing = 2
	}

	_, built := rebuild(t, d, table)

	if built.ItemSpacing != 2 {
		t.Errorf("container spacing = %v, want 2", built.ItemSpacing)
	}
	if built.Children()[0].ItemSpacing != 8 {
		t.Errorf("line spacing = %v, want 8", built.Children()[0].ItemSpacing)
	}
	if built.Padding != table.Padding {
		t.Errorf("padding = %+v, want %+v", built.Padding, table.Padding)
	}
	if len(built.Fills) != 1 || built.Fills[0].Color != "#eeeeee" {
		t.Errorf("fills = %v", built.Fills)
	}
	built.Fills[0].Color = "#000000"
	if table.Fills[0].Color != "#eeeeee" {
		t.Error("fills must not alias the source")
	}
	// 2 columns of 80 with a gap of 2, plus 4+2 padding.
	if built.Width != 80+2+80+6 {
		t.Errorf("table width = %v, want 168", built.Width)
	}
}

func TestRebuildRestoresOverlays(t *testing.T) {
	d := newDoc()
	table := buildTable(d, RowMajor, []string{"a1", "a2"}, []string{"b1", "b2"})
	badge := addOverlay(d, table, 1, "badge")

	_, built := rebuild(t, d, table)

	if _, ok := d.Node(badge.ID); ok {
		t.Error("the original overlay should be removed")
	}
	children := built.Children()
	last := children[len(children)-1]
	if last.Name != "badge" || last.ID == badge.ID {
		t.Fatalf("last child = %v, want a copy of the badge", last)
	}
	if last.Positioning != scene.PositionAbsolute {
		t.Errorf("overlay positioning = %v, want ABSOLUTE", last.Positioning)
	}
	if last.X != 5 || last.Y != 7 || last.Width != 20 || last.Height != 10 {
		t.Errorf("overlay geometry = %v,%v %vx%v, want 5,7 20x10", last.X, last.Y, last.Width, last.Height)
	}
	if len(grid(built)) != 2 {
		t.Errorf("overlay must not become a line: %v", grid(built))
	}
}

func TestRebuildAppliesPropsAfterAttach(t *testing.T) {
	d := newDoc()
	h := meddlingHost{d}
	table := buildTable(d, ColumnMajor, []string{"a1", "b1"}, []string{"a2", "b2"})
	table.Children()[1].Children()[0].Visible = false
	addOverlay(d, table, 0, "badge")

	_, built := rebuild(t, h, table)

	for _, row := range built.Children() {
		if row.IsAbsolute() {
			if row.X != 5 || row.Y != 7 || row.Width != 20 {
				t.Errorf("overlay geometry lost: %v,%v %vx%v", row.X, row.Y, row.Width, row.Height)
			}
			continue
		}
		if !row.Visible {
			t.Errorf("%s should be visible", row.Name)
		}
		if row.SizingH != scene.SizingFill || row.SizingV != scene.SizingHug {
			t.Errorf("%s sizing = %v/%v, want FILL/HUG", row.Name, row.SizingH, row.SizingV)
		}
		for _, cell := range row.Children() {
			if cell.SizingH != scene.SizingFixed || cell.Width != 80 || cell.Height != 24 {
				t.Errorf("cell %s = %v %vx%v, want FIXED 80x24", cell.Name, cell.SizingH, cell.Width, cell.Height)
			}
			if want := cell.Name != "a2"; cell.Visible != want {
				t.Errorf("cell %s visible = %v, want %v", cell.Name, cell.Visible, want)
			}
		}
	}
	if built.Width != 160 || built.Height != 48 {
		t.Errorf("table size = %vx%v, want 160x48", built.Width, built.Height)
	}
}

func TestRebuildName(t *testing.T) {
	d := newDoc()
	table := buildTable(d, RowMajor, []string{"a1"})
	ex, err := Extract(table)
	if err != nil {
		t.Fatal(err)
	}
	built := Rebuild(d, ex, nil, RebuildOptions{Name: "Pricing"})
	if built.Name != "Pricing" {
		t.Errorf("Name = %q, want Pricing", built.Name)
	}
}
