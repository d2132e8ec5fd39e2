package table

import (
	"fmt"
	"strings"

	apperr "github.com/matzehuels/tableaxis/pkg/errors"
)

// maxReported caps the missing cells listed in a [MatrixError].
const maxReported = 5

// MatrixError reports a table whose lines do not all have a cell in every
// position. It lists at most five missing positions and counts the rest.
type MatrixError struct {
	Noun    string   // "row" or "column", the line type of the source table
	Missing []string // first missing positions, 1-based
	More    int      // missing positions not listed
}

// Code implements [apperr.Coder].
func (e *MatrixError) Code() apperr.Code { return apperr.ErrCodeNonRectangularMatrix }

// UserMessage implements [apperr.Coder].
func (e *MatrixError) UserMessage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "table is not rectangular: every %s needs the same number of cells; missing (row, column): %s",
		e.Noun, strings.Join(e.Missing, ", "))
	if e.More > 0 {
		fmt.Fprintf(&b, " and %d more", e.More)
	}
	return b.String()
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code(), e.UserMessage())
}

// ValidateMatrix rejects grids that are empty or not rectangular.
//
// Every row in [0, RowCount) must have a cell in every column in
// [0, MaxCols). Missing positions are reported 1-based as "(row, col)"; a
// row without any cell is reported once as "Row N is completely missing".
func ValidateMatrix(m *Matrix) error {
	if m == nil || len(m.Rows) == 0 {
		noun := "row"
		if m != nil {
			noun = m.Axis.Noun()
		}
		return apperr.New(apperr.ErrCodeEmptyMatrix, "table has no cells (no %s contains any)", noun)
	}

	var missing []string
	for r, row := range m.Rows {
		if present(row) == 0 {
			missing = append(missing, fmt.Sprintf("Row %d is completely missing", r+1))
			continue
		}
		for c := 0; c < m.MaxCols; c++ {
			if m.At(r, c) == nil {
				missing = append(missing, fmt.Sprintf("(%d, %d)", r+1, c+1))
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	e := &MatrixError{Noun: m.Axis.Noun(), Missing: missing}
	if len(missing) > maxReported {
		e.Missing = missing[:maxReported]
		e.More = len(missing) - maxReported
	}
	return e
}

func present(row []*Slot) int {
	n := 0
	for _, s := range row {
		if s != nil {
			n++
		}
	}
	return n
}
