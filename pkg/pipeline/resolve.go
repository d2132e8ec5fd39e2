package pipeline

import (
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

// Resolve maps node references to ids. A reference is a node id or, failing
// that, the name of exactly one node.
func Resolve(doc *scene.Document, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if err := apperr.ValidateNodeRef(ref); err != nil {
			return nil, err
		}
		if n, ok := doc.Node(ref); ok {
			ids = append(ids, n.ID)
			continue
		}
		switch found := doc.FindByName(ref); len(found) {
		case 0:
			return nil, apperr.New(apperr.ErrCodeNotFound, "no node with id or name %q", ref)
		case 1:
			ids = append(ids, found[0].ID)
		default:
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "%d nodes are named %q; select by id instead", len(found), ref)
		}
	}
	return ids, nil
}
