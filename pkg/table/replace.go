package table

import (
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

// CanReplace reports whether old can be swapped in place, so callers can
// check it before they start changing the scene.
func CanReplace(old *scene.Node) error {
	if old.Parent() == nil {
		return apperr.New(apperr.ErrCodeNoParent, "%q has no parent and cannot be replaced in place", old.Name)
	}
	return nil
}

// Replace puts built where old is: same parent, same child index, same
// position and outer size. old is removed and built is returned.
func Replace(h Host, old, built *scene.Node) (*scene.Node, error) {
	if err := CanReplace(old); err != nil {
		return nil, err
	}
	parent, index := old.Parent(), old.Index()

	p := capture(built)
	p.positioning = old.Positioning
	h.InsertChild(parent, index, built)
	p.apply(built)

	built.X, built.Y = old.X, old.Y
	if built.Caps().Has(scene.CapResize) {
		built.Resize(old.Width, old.Height)
	}
	h.Remove(old)
	return built, nil
}
