package textable

import (
	"fmt"
	"slices"
)

// Frame is an in-memory table implementing [Data], [Headed], [MultiHeaded]
// and [Indexed]. Set Columns for flat labels or MultiColumns for
// hierarchical ones; leave RowIndex nil for positional row labels.
type Frame struct {
	Columns      []string
	MultiColumns [][]string
	RowIndex     []string
	Rows         [][]Value
}

// NewFrame returns a frame with flat column labels. Every row must have
// one value per column.
func NewFrame(columns []string, rows [][]Value) (*Frame, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", ErrStructure, i, len(row), len(columns))
		}
	}
	return &Frame{Columns: slices.Clone(columns), Rows: rows}, nil
}

// Shape returns the row count and the column count. The column count comes
// from the labels, or from the first row when there are none.
func (f *Frame) Shape() (rows, cols int) {
	switch {
	case len(f.MultiColumns) > 0:
		cols = len(f.MultiColumns)
	case f.Columns != nil:
		cols = len(f.Columns)
	case len(f.Rows) > 0:
		cols = len(f.Rows[0])
	}
	return len(f.Rows), cols
}

// Cell returns the value at row, col, or a missing value when the row is
// shorter than the frame.
func (f *Frame) Cell(row, col int) Value {
	if row < 0 || row >= len(f.Rows) || col < 0 || col >= len(f.Rows[row]) {
		return Missing()
	}
	return f.Rows[row][col]
}

// Header returns the flat column labels.
func (f *Frame) Header() []string { return f.Columns }

// MultiHeader returns the hierarchical column labels.
func (f *Frame) MultiHeader() [][]string { return f.MultiColumns }

// Index returns the row labels, or positions when none are set.
func (f *Frame) Index() []string {
	if f.RowIndex == nil {
		return positions(len(f.Rows))
	}
	return f.RowIndex
}

// SetIndex sets the row labels.
func (f *Frame) SetIndex(labels []string) error {
	if len(labels) != len(f.Rows) {
		return fmt.Errorf("%w: %d index labels for %d rows", ErrStructure, len(labels), len(f.Rows))
	}
	f.RowIndex = slices.Clone(labels)
	return nil
}
