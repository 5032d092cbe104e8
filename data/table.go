package data

import (
	"fmt"
	"slices"
	"sync"
)

// ColumnType is the storage type of a Table column.
type ColumnType int

const (
	// TypeFloat64 columns store float64 values.
	TypeFloat64 ColumnType = iota
	// TypeInt64 columns store int64 values, surfaced as float64 by Get.
	TypeInt64
)

func (t ColumnType) String() string {
	switch t {
	case TypeFloat64:
		return "float64"
	case TypeInt64:
		return "int64"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// column holds one typed storage slice: floats for TypeFloat64, ints for
// TypeInt64. valid always has the table's row count.
type column struct {
	typ    ColumnType
	floats []float64
	ints   []int64
	valid  []bool
}

func (c *column) append(f float64, n int64, ok bool) {
	if c.typ == TypeInt64 {
		c.ints = append(c.ints, n)
	} else {
		c.floats = append(c.floats, f)
	}
	c.valid = append(c.valid, ok)
}

func (c *column) set(row int, f float64, n int64, ok bool) {
	if c.typ == TypeInt64 {
		c.ints[row] = n
	} else {
		c.floats[row] = f
	}
	c.valid[row] = ok
}

func (c *column) delete(row int) {
	if c.typ == TypeInt64 {
		c.ints = slices.Delete(c.ints, row, row+1)
	} else {
		c.floats = slices.Delete(c.floats, row, row+1)
	}
	c.valid = slices.Delete(c.valid, row, row+1)
}

func (c *column) cell(row int) Cell {
	if !c.valid[row] {
		return Null()
	}
	if c.typ == TypeInt64 {
		return Float(float64(c.ints[row]))
	}
	return Float(c.floats[row])
}

// Table is a mutable in-memory Source with fixed, typed columns.
// Data is stored column-major. All methods are safe for concurrent use.
type Table struct {
	mu   sync.RWMutex
	cols []column
	rows int
}

var _ Source = (*Table)(nil)

// NewTable returns an empty table with one column per type.
func NewTable(types ...ColumnType) *Table {
	t := &Table{cols: make([]column, len(types))}
	for i, typ := range types {
		t.cols[i].typ = typ
	}
	return t
}

// NewFloatTable returns a float64 table built from column slices.
// All columns must have the same length.
func NewFloatTable(columns ...[]float64) (*Table, error) {
	types := make([]ColumnType, len(columns))
	t := NewTable(types...)
	if len(columns) == 0 {
		return t, nil
	}
	n := len(columns[0])
	for i, c := range columns {
		if len(c) != n {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrColumnCount, i, len(c), n)
		}
		t.cols[i].floats = slices.Clone(c)
		t.cols[i].valid = make([]bool, n)
		for r := range t.cols[i].valid {
			t.cols[i].valid[r] = true
		}
	}
	t.rows = n
	return t, nil
}

// Types returns the column types.
func (t *Table) Types() []ColumnType {
	t.mu.RLock()
	defer t.mu.RUnlock()
	types := make([]ColumnType, len(t.cols))
	for i := range t.cols {
		types[i] = t.cols[i].typ
	}
	return types
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cols)
}

// Get returns the cell at (col, row).
func (t *Table) Get(col, row int) (Cell, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if err := checkColumn(col, len(t.cols)); err != nil {
		return Cell{}, err
	}
	if err := checkRow(row, t.rows); err != nil {
		return Cell{}, err
	}
	return t.cols[col].cell(row), nil
}

// Add appends a row. A nil value stores a null cell.
func (t *Table) Add(values ...any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(values) != len(t.cols) {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(values), len(t.cols))
	}

	// Convert everything first so a bad value leaves the table untouched.
	floats := make([]float64, len(values))
	ints := make([]int64, len(values))
	valid := make([]bool, len(values))
	for i, v := range values {
		f, n, ok, err := convert(t.cols[i].typ, v)
		if err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		floats[i], ints[i], valid[i] = f, n, ok
	}

	for i := range t.cols {
		t.cols[i].append(floats[i], ints[i], valid[i])
	}
	t.rows++
	return nil
}

// Set replaces the cell at (col, row).
func (t *Table) Set(col, row int, value any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := checkColumn(col, len(t.cols)); err != nil {
		return err
	}
	if err := checkRow(row, t.rows); err != nil {
		return err
	}
	c := &t.cols[col]
	f, n, ok, err := convert(c.typ, value)
	if err != nil {
		return fmt.Errorf("column %d: %w", col, err)
	}
	c.set(row, f, n, ok)
	return nil
}

// Remove deletes a row, shifting later rows up.
func (t *Table) Remove(row int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := checkRow(row, t.rows); err != nil {
		return err
	}
	for i := range t.cols {
		t.cols[i].delete(row)
	}
	t.rows--
	return nil
}

// Clear removes all rows, keeping the column layout.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.cols {
		c := &t.cols[i]
		c.floats = c.floats[:0]
		c.ints = c.ints[:0]
		c.valid = c.valid[:0]
	}
	t.rows = 0
}

// Column returns a copy of column col.
func (t *Table) Column(col int) ([]Cell, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if err := checkColumn(col, len(t.cols)); err != nil {
		return nil, err
	}
	out := make([]Cell, t.rows)
	for r := range out {
		out[r] = t.cols[col].cell(r)
	}
	return out, nil
}

// convert maps v onto storage for a column of type typ. ok is false for nil.
func convert(typ ColumnType, v any) (f float64, n int64, ok bool, err error) {
	if v == nil {
		return 0, 0, false, nil
	}
	if c, isCell := v.(Cell); isCell {
		if !c.Valid {
			return 0, 0, false, nil
		}
		v = c.Value
	}

	switch typ {
	case TypeFloat64:
		switch x := v.(type) {
		case float64:
			return x, 0, true, nil
		case float32:
			return float64(x), 0, true, nil
		case int:
			return float64(x), 0, true, nil
		case int32:
			return float64(x), 0, true, nil
		case int64:
			return float64(x), 0, true, nil
		}
	case TypeInt64:
		switch x := v.(type) {
		case int:
			return 0, int64(x), true, nil
		case int32:
			return 0, int64(x), true, nil
		case int64:
			return 0, x, true, nil
		}
	}
	return 0, 0, false, fmt.Errorf("%w: %T into %s", ErrColumnType, v, typ)
}
