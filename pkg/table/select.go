package table

import (
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

// Select checks the current selection and returns the table container.
//
// Rules are checked in order and the first failure wins:
//
//  1. exactly one node is selected (NO_SELECTION, MULTIPLE_SELECTION)
//  2. the node can host a grid; template instances are rejected because
//     their structure must not be edited (UNSUPPORTED_TYPE)
//  3. the node has an auto-layout direction (NO_AXIS_LAYOUT)
//  4. the node has at least one child (EMPTY_CONTAINER)
//
// Select never modifies the scene.
func Select(selection []*scene.Node) (*scene.Node, error) {
	switch len(selection) {
	case 0:
		return nil, apperr.New(apperr.ErrCodeNoSelection, "select a table frame to switch its axis")
	case 1:
	default:
		return nil, apperr.New(apperr.ErrCodeMultipleSelection, "select exactly one table frame (%d selected)", len(selection))
	}

	n := selection[0]
	switch {
	case n.Kind == scene.KindInstance:
		return nil, apperr.New(apperr.ErrCodeUnsupportedType, "%q is a component instance; detach it before switching its axis", n.Name)
	case !n.Caps().Has(scene.CapAutoLayout):
		return nil, apperr.New(apperr.ErrCodeUnsupportedType, "select a frame (table container), not a %s", n.Kind)
	}

	if AxisOf(n) == AxisNone {
		return nil, apperr.New(apperr.ErrCodeNoAxisLayout, "selected frame must have auto layout")
	}
	if n.ChildCount() == 0 {
		return nil, apperr.New(apperr.ErrCodeEmptyContainer, "selected frame must have children (rows or columns)")
	}
	return n, nil
}
