package table

import "github.com/matzehuels/tableaxis/pkg/scene"

// Role is the part a node plays in a table.
type Role int

const (
	RoleLine Role = iota
	RoleCell
	RoleOverlay
)

func (r Role) String() string {
	switch r {
	case RoleLine:
		return "line"
	case RoleCell:
		return "cell"
	default:
		return "overlay"
	}
}

// Element is a classified table node. Its capability set is resolved once,
// when the table is read, and consulted whenever properties are re-applied.
type Element struct {
	Node *scene.Node
	Role Role
	Caps scene.Caps
}

func classify(n *scene.Node, role Role) Element {
	return Element{Node: n, Role: role, Caps: n.Caps()}
}

// partition splits a container's children into grid lines and overlays.
// Freely positioned children never take part in the grid.
func partition(container *scene.Node) (lines, overlays []Element) {
	for _, child := range container.Children() {
		if child.Caps().Has(scene.CapPositioning) && child.IsAbsolute() {
			overlays = append(overlays, classify(child, RoleOverlay))
			continue
		}
		lines = append(lines, classify(child, RoleLine))
	}
	return lines, overlays
}
