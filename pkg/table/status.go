package table

import apperr "github.com/matzehuels/tableaxis/pkg/errors"

// Status renders the outcome of a switch for the host: "switched to rows" or
// "switched to columns" on success, the error message prefixed with
// "Error: " otherwise. to is the axis the table was switched to.
func Status(to Axis, err error) string {
	if err != nil {
		return "Error: " + apperr.UserMessage(err)
	}
	return "switched to " + to.Plural()
}
