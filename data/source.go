package data

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Source implementations.
var (
	ErrIndexOutOfRange = errors.New("data: index out of range")
	ErrColumnCount     = errors.New("data: wrong number of values for row")
	ErrColumnType      = errors.New("data: value does not match column type")
)

// Cell is a single nullable numeric value.
type Cell struct {
	Value float64
	Valid bool
}

// Null returns an empty cell.
func Null() Cell {
	return Cell{}
}

// Float returns a valid cell holding v.
func Float(v float64) Cell {
	return Cell{Value: v, Valid: true}
}

// Float64 returns the cell value, or NaN for a null cell.
func (c Cell) Float64() float64 {
	if !c.Valid {
		return math.NaN()
	}
	return c.Value
}

func (c Cell) String() string {
	if !c.Valid {
		return "null"
	}
	return fmt.Sprint(c.Value)
}

// Source is read access to a table of nullable numeric cells.
type Source interface {
	// RowCount returns the current number of rows.
	RowCount() int

	// ColumnCount returns the current number of columns.
	ColumnCount() int

	// Get returns the cell at column col and row row. Indices outside the
	// current bounds produce an error wrapping ErrIndexOutOfRange.
	Get(col, row int) (Cell, error)
}

// IndexError describes an out-of-range access.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("data: %s index %d out of range [0, %d)", e.What, e.Index, e.Len)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfRange) hold.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex validates col and row against the current shape of src.
func CheckIndex(src Source, col, row int) error {
	if err := checkColumn(col, src.ColumnCount()); err != nil {
		return err
	}
	return checkRow(row, src.RowCount())
}

// CheckColumn validates col against the current column count of src.
func CheckColumn(src Source, col int) error {
	return checkColumn(col, src.ColumnCount())
}

func checkColumn(col, n int) error {
	if col < 0 || col >= n {
		return &IndexError{What: "column", Index: col, Len: n}
	}
	return nil
}

func checkRow(row, n int) error {
	if row < 0 || row >= n {
		return &IndexError{What: "row", Index: row, Len: n}
	}
	return nil
}

// ColumnValues returns a snapshot of column col of src with null cells
// converted to NaN.
func ColumnValues(src Source, col int) ([]float64, error) {
	if err := checkColumn(col, src.ColumnCount()); err != nil {
		return nil, err
	}
	n := src.RowCount()
	out := make([]float64, n)
	for row := range n {
		c, err := src.Get(col, row)
		if err != nil {
			return nil, err
		}
		out[row] = c.Float64()
	}
	return out, nil
}
