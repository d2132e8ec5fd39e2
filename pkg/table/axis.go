package table

import "github.com/matzehuels/tableaxis/pkg/scene"

// Axis is the orientation of a table.
type Axis int

const (
	// AxisNone marks a container without auto layout. It cannot be switched.
	AxisNone Axis = iota
	// RowMajor tables stack their lines vertically; every line is a row.
	RowMajor
	// ColumnMajor tables stack their lines horizontally; every line is a column.
	ColumnMajor
)

// AxisOf maps a container's layout mode to its table axis.
func AxisOf(n *scene.Node) Axis {
	switch n.Layout {
	case scene.LayoutVertical:
		return RowMajor
	case scene.LayoutHorizontal:
		return ColumnMajor
	default:
		return AxisNone
	}
}

// Opposite returns the axis a switch produces. AxisNone has no opposite.
func (a Axis) Opposite() Axis {
	switch a {
	case RowMajor:
		return ColumnMajor
	case ColumnMajor:
		return RowMajor
	default:
		return AxisNone
	}
}

// Layout returns the container layout mode that implements the axis.
func (a Axis) Layout() scene.LayoutMode {
	switch a {
	case RowMajor:
		return scene.LayoutVertical
	case ColumnMajor:
		return scene.LayoutHorizontal
	default:
		return scene.LayoutNone
	}
}

// Noun names a line of a table with this axis: "row" or "column".
func (a Axis) Noun() string {
	switch a {
	case RowMajor:
		return "row"
	case ColumnMajor:
		return "column"
	default:
		return "line"
	}
}

// Plural returns the plural of [Axis.Noun].
func (a Axis) Plural() string { return a.Noun() + "s" }

func (a Axis) String() string {
	switch a {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "none"
	}
}
