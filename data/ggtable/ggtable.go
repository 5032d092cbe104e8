// Package ggtable converts between [data.Source] and go-gg tables.
//
// go-gg tables are immutable column stores keyed by name; FromTable gives a
// read-only Source over selected columns so they can be filtered, and
// ToTable snapshots any Source (a filter included) back into a go-gg table
// for further grouping, joining or plotting.
package ggtable

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/cwbudde/algo-datafilter/data"
)

// Errors returned by the conversions.
var (
	ErrUnknownColumn = errors.New("ggtable: unknown column")
	ErrNotNumeric    = errors.New("ggtable: column is not numeric")
	ErrNameCount     = errors.New("ggtable: wrong number of column names")
)

// Source is a read-only data.Source over float64 columns taken from a
// go-gg table. NaN values read as null cells.
type Source struct {
	names []string
	cols  [][]float64
	rows  int
}

var _ data.Source = (*Source)(nil)

// FromTable returns a Source over the named columns of t, in order. With
// no names, all columns of t are used.
func FromTable(t *table.Table, names ...string) (*Source, error) {
	if len(names) == 0 {
		names = t.Columns()
	}
	s := &Source{names: append([]string(nil), names...), rows: t.Len()}
	for _, name := range names {
		col := t.Column(name)
		if col == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		vals, err := toFloats(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		s.cols = append(s.cols, vals)
	}
	return s, nil
}

// Names returns the column names in Source order.
func (s *Source) Names() []string {
	return append([]string(nil), s.names...)
}

// RowCount returns the number of rows.
func (s *Source) RowCount() int {
	return s.rows
}

// ColumnCount returns the number of columns.
func (s *Source) ColumnCount() int {
	return len(s.cols)
}

// Get returns the cell at (col, row).
func (s *Source) Get(col, row int) (data.Cell, error) {
	if err := data.CheckIndex(s, col, row); err != nil {
		return data.Cell{}, err
	}
	v := s.cols[col][row]
	if math.IsNaN(v) {
		return data.Null(), nil
	}
	return data.Float(v), nil
}

// ToTable snapshots src into a go-gg table. Null cells become NaN. Column
// names default to "col0", "col1", ...
func ToTable(src data.Source, names ...string) (*table.Table, error) {
	n := src.ColumnCount()
	if len(names) == 0 {
		names = make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("col%d", i)
		}
	}
	if len(names) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrNameCount, len(names), n)
	}

	b := new(table.Builder)
	for col, name := range names {
		vals, err := data.ColumnValues(src, col)
		if err != nil {
			return nil, err
		}
		b.Add(name, vals)
	}
	return b.Done(), nil
}

func toFloats(col slice.T) (out []float64, err error) {
	switch v := col.(type) {
	case []float64:
		return append([]float64(nil), v...), nil
	case []int:
		out = make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	}

	// slice.Convert panics on element types it cannot convert.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrNotNumeric, r)
		}
	}()
	slice.Convert(&out, col)
	return out, nil
}
