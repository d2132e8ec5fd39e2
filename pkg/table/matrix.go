package table

import (
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

// Slot is one entry of a [Matrix]: a cell and its effective visibility.
type Slot struct {
	Cell   *scene.Node
	Caps   scene.Caps
	Hidden bool // the cell or its line is hidden
}

// Visible reports whether the cell is shown in the table.
func (s *Slot) Visible() bool { return !s.Hidden }

// Matrix is the logical grid of a table in row/column order, whatever the
// orientation of the source container. A nil slot is a missing cell.
type Matrix struct {
	Rows    [][]*Slot
	MaxCols int
	Axis    Axis // axis of the container the matrix was read from
}

// RowCount returns the number of matrix rows.
func (m *Matrix) RowCount() int { return len(m.Rows) }

// At returns the slot at row r, column c, or nil when the cell is missing.
func (m *Matrix) At(r, c int) *Slot {
	if r < 0 || r >= len(m.Rows) || c < 0 || c >= len(m.Rows[r]) {
		return nil
	}
	return m.Rows[r][c]
}

// IsRowBased reports whether the matrix was read from a row-major table.
func (m *Matrix) IsRowBased() bool { return m.Axis == RowMajor }

// CellCount returns the number of present slots.
func (m *Matrix) CellCount() int {
	n := 0
	for _, row := range m.Rows {
		for _, s := range row {
			if s != nil {
				n++
			}
		}
	}
	return n
}

// Extraction is everything read from a table container before any change is
// made to it.
type Extraction struct {
	Container *scene.Node
	Lines     []Element
	Overlays  []Element
	Matrix    *Matrix
}

// Axis returns the orientation of the source container.
func (e *Extraction) Axis() Axis { return e.Matrix.Axis }

// Extract reads the container's two-level tree (lines, then cells) into a
// [Matrix]. Freely positioned children are set aside as overlays before the
// walk so they never shift line or cell indexes.
//
// A cell read from a hidden line is recorded hidden even when the cell
// itself is visible.
//
// Extract does not check that the grid is complete; use [ValidateMatrix].
// The scene is not modified.
func Extract(container *scene.Node) (*Extraction, error) {
	axis := AxisOf(container)
	if axis == AxisNone {
		return nil, apperr.New(apperr.ErrCodeNoAxisLayout, "selected frame must have auto layout")
	}

	lines, overlays := partition(container)
	m := &Matrix{Axis: axis}
	if axis == RowMajor {
		m.Rows = make([][]*Slot, len(lines))
		for r, line := range lines {
			cells := line.Node.Children()
			m.Rows[r] = make([]*Slot, len(cells))
			for c, cell := range cells {
				m.Rows[r][c] = newSlot(line.Node, cell)
			}
			m.MaxCols = max(m.MaxCols, len(cells))
		}
	} else {
		height := 0
		for _, line := range lines {
			height = max(height, line.Node.ChildCount())
		}
		m.MaxCols = len(lines)
		m.Rows = make([][]*Slot, height)
		for r := range m.Rows {
			m.Rows[r] = make([]*Slot, len(lines))
		}
		for c, line := range lines {
			for r, cell := range line.Node.Children() {
				m.Rows[r][c] = newSlot(line.Node, cell)
			}
		}
	}

	return &Extraction{
		Container: container,
		Lines:     lines,
		Overlays:  overlays,
		Matrix:    m,
	}, nil
}

func newSlot(line, cell *scene.Node) *Slot {
	el := classify(cell, RoleCell)
	return &Slot{
		Cell:   cell,
		Caps:   el.Caps,
		Hidden: !line.Visible || !cell.Visible,
	}
}
