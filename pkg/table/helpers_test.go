package table

import (
	"fmt"
	"testing"

	"github.com/matzehuels/tableaxis/pkg/scene"
)

func newDoc() *scene.Document {
	d := scene.New("Page 1")
	i := 0
	d.SetIDFunc(func() string {
		i++
		return fmt.Sprintf("id%d", i)
	})
	return d
}

// buildTable attaches a table to the page. Each argument lists the cell
// names of one line; lines are rows for RowMajor and columns for
// ColumnMajor. Every cell is an 80×24 fixed-size rectangle.
func buildTable(d *scene.Document, axis Axis, lines ...[]string) *scene.Node {
	t := d.CreateFrame()
	t.Name = "Grid"
	t.Layout = axis.Layout()
	d.AppendChild(d.Page(), t)
	for i, names := range lines {
		line := d.CreateFrame()
		line.Name = fmt.Sprintf("%s %d", axis.Noun(), i+1)
		line.Layout = axis.Opposite().Layout()
		d.AppendChild(t, line)
		for _, name := range names {
			cell := d.CreateFrame()
			cell.Kind = scene.KindRectangle
			cell.Name = name
			d.AppendChild(line, cell)
			cell.SizingH = scene.SizingFixed
			cell.SizingV = scene.SizingFixed
			cell.Resize(80, 24)
		}
	}
	return t
}

// addOverlay attaches a freely positioned text node to t at index.
func addOverlay(d *scene.Document, t *scene.Node, index int, name string) *scene.Node {
	o := d.CreateFrame()
	o.Kind = scene.KindText
	o.Name = name
	d.InsertChild(t, index, o)
	o.Positioning = scene.PositionAbsolute
	o.X, o.Y = 5, 7
	o.Resize(20, 10)
	return o
}

// names returns the names of a node's children.
func names(n *scene.Node) []string {
	out := make([]string, 0, n.ChildCount())
	for _, c := range n.Children() {
		out = append(out, c.Name)
	}
	return out
}

// grid returns the cell names of every line of a table, skipping overlays.
func grid(t *scene.Node) [][]string {
	var out [][]string
	for _, line := range t.Children() {
		if line.IsAbsolute() {
			continue
		}
		out = append(out, names(line))
	}
	return out
}

// switchAxis runs the whole sequence against the document's page child t.
func switchAxis(t *testing.T, h Host, table *scene.Node) *scene.Node {
	t.Helper()
	ex, err := Extract(table)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if err := ValidateMatrix(ex.Matrix); err != nil {
		t.Fatalf("ValidateMatrix() error = %v", err)
	}
	overlays := StashOverlays(h, ex.Overlays)
	built := Rebuild(h, ex, overlays, RebuildOptions{})
	out, err := Replace(h, table, built)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	return out
}

func equalGrid(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
