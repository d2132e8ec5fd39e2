package table

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tableaxis/pkg/scene"
)

// DefaultName is the label given to a rebuilt table container.
const DefaultName = "Table"

// RebuildOptions configures [Rebuild].
type RebuildOptions struct {
	// Name labels the new container. Empty means [DefaultName].
	Name string
}

// StashOverlays clones every overlay and removes the original from the
// scene. The clones are detached and ready to be attached to the rebuilt
// table. This is the first mutating step of a switch and must only run
// after the matrix has been validated.
func StashOverlays(h Host, overlays []Element) []*scene.Node {
	out := make([]*scene.Node, 0, len(overlays))
	for _, o := range overlays {
		c := h.Clone(o.Node)
		h.Remove(o.Node)
		out = append(out, c)
	}
	return out
}

// Rebuild builds a new, detached container holding the cells of ex in the
// opposite orientation, followed by the stashed overlays. The source
// container is only read.
//
// Cells are cloned, never moved, and every property that matters is applied
// after the clone is attached because the host re-defaults freshly attached
// children.
func Rebuild(h Host, ex *Extraction, overlays []*scene.Node, opts RebuildOptions) *scene.Node {
	var table *scene.Node
	if ex.Axis() == RowMajor {
		table = buildColumns(h, ex)
	} else {
		table = buildRows(h, ex)
	}

	for _, o := range overlays {
		p := capture(o)
		p.positioning = scene.PositionAbsolute
		attach(h, table, o, p)
	}

	table.Name = opts.Name
	if table.Name == "" {
		table.Name = DefaultName
	}
	scene.Reflow(table)
	return table
}

// newContainer creates the frame that replaces ex.Container, carrying over
// its background, padding and visibility. Gaps are transposed with the grid:
// the gap between the old lines becomes the gap between cells of a new line
// and the other way round.
func newContainer(h Host, ex *Extraction, axis Axis) *scene.Node {
	src := ex.Container
	t := h.CreateFrame()
	t.Layout = axis.Layout()
	t.Fills = slices.Clone(src.Fills)
	t.ItemSpacing = cellSpacing(ex)
	t.Padding = src.Padding
	t.Visible = src.Visible
	t.SizingH = scene.SizingHug
	t.SizingV = scene.SizingHug
	return t
}

// newLine creates an empty, transparent line frame.
func newLine(h Host, name string, layout scene.LayoutMode, spacing float64) *scene.Node {
	line := h.CreateFrame()
	line.Name = name
	line.Layout = layout
	line.ItemSpacing = spacing
	line.Fills = nil
	return line
}

// buildColumns turns a row-major matrix into a column-major table.
func buildColumns(h Host, ex *Extraction) *scene.Node {
	m := ex.Matrix
	table := newContainer(h, ex, ColumnMajor)
	spacing := ex.Container.ItemSpacing

	for c := 0; c < m.MaxCols; c++ {
		col := newLine(h, fmt.Sprintf("Column %d", c+1), scene.LayoutVertical, spacing)
		if first := m.At(0, c); first != nil {
			col.Resize(first.Cell.Width, col.Height)
		}
		lp := capture(col)
		lp.sizingH = scene.SizingFixed
		lp.sizingV = scene.SizingHug

		var slots []*Slot
		for r := range m.Rows {
			s := m.At(r, c)
			if s == nil {
				continue
			}
			p := cellProps(s)
			p.sizingH = scene.SizingFill
			attach(h, col, h.Clone(s.Cell), p)
			slots = append(slots, s)
		}

		lp.visible = !allHidden(slots)
		attach(h, table, col, lp)
	}
	return table
}

// buildRows turns a column-major matrix into a row-major table.
func buildRows(h Host, ex *Extraction) *scene.Node {
	m := ex.Matrix
	table := newContainer(h, ex, RowMajor)
	table.Grow = true
	spacing := ex.Container.ItemSpacing

	rows := make([]*scene.Node, 0, len(m.Rows))
	for r := range m.Rows {
		row := newLine(h, fmt.Sprintf("Row %d", r+1), scene.LayoutHorizontal, spacing)
		if first := m.At(r, 0); first != nil {
			row.Resize(row.Width, first.Cell.Height)
		}
		lp := capture(row)
		lp.sizingV = scene.SizingHug

		var slots []*Slot
		for c := range m.Rows[r] {
			s := m.At(r, c)
			if s == nil {
				continue
			}
			attach(h, row, h.Clone(s.Cell), cellProps(s))
			slots = append(slots, s)
		}

		lp.visible = !allHidden(slots)
		attach(h, table, row, lp)
		rows = append(rows, row)
	}

	for _, row := range rows {
		row.SizingH = scene.SizingFill
	}
	return table
}

// cellProps is the property set re-applied to a cell clone: the source
// cell's sizing and size, and the visibility recorded in the matrix.
func cellProps(s *Slot) props {
	p := capture(s.Cell)
	p.caps = s.Caps
	p.positioning = scene.PositionAuto
	p.visible = s.Visible()
	return p
}

// cellSpacing returns the gap between cells of the first source line.
func cellSpacing(ex *Extraction) float64 {
	if len(ex.Lines) == 0 {
		return 0
	}
	return ex.Lines[0].Node.ItemSpacing
}

// allHidden reports whether every slot is hidden. An empty line is visible.
func allHidden(slots []*Slot) bool {
	if len(slots) == 0 {
		return false
	}
	for _, s := range slots {
		if s.Visible() {
			return false
		}
	}
	return true
}
