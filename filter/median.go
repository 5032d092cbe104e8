package filter

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-datafilter/data"
)

// Median is a filter replacing each selected cell with the median of a
// window of rows [row-offset, row-offset+size).
//
// Null cells are left out of the window. Under ModeZero out-of-range rows
// enter the window as 0, matching zero padding. Even-sized windows average
// the two middle values; an empty window yields NaN.
type Median struct {
	Filter
	size   int
	offset int
}

var _ data.Source = (*Median)(nil)

// NewMedian returns a median filter over the given columns, or over every
// column if none are given.
func NewMedian(src data.Source, size, offset int, mode Mode, cols ...int) (*Median, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidWindow, size)
	}
	if offset < 0 || offset >= size {
		return nil, fmt.Errorf("%w: offset %d not in [0, %d)", ErrInvalidWindow, offset, size)
	}
	m := &Median{size: size, offset: offset}
	if err := m.init(src, mode, cols); err != nil {
		return nil, err
	}
	return m, nil
}

// Size returns the window length.
func (m *Median) Size() int {
	return m.size
}

// Offset returns the window position aligned with the current row.
func (m *Median) Offset() int {
	return m.offset
}

// Get returns the cell at (col, row).
func (m *Median) Get(col, row int) (data.Cell, error) {
	if err := data.CheckIndex(m.source, col, row); err != nil {
		return data.Cell{}, err
	}
	if !m.IsFiltered(col) {
		return m.source.Get(col, row)
	}
	window := make([]float64, 0, m.size)
	return m.compute(col, row, m.Mode(), m.source.RowCount(), window)
}

// Column returns every row of column col.
func (m *Median) Column(col int) ([]float64, error) {
	if err := data.CheckColumn(m.source, col); err != nil {
		return nil, err
	}
	if !m.IsFiltered(col) {
		return data.ColumnValues(m.source, col)
	}
	mode := m.Mode()
	n := m.source.RowCount()
	out := make([]float64, n)
	window := make([]float64, 0, m.size)
	for row := range out {
		c, err := m.compute(col, row, mode, n, window)
		if err != nil {
			return nil, err
		}
		out[row] = c.Value
	}
	return out, nil
}

func (m *Median) compute(col, row int, mode Mode, n int, window []float64) (data.Cell, error) {
	window = window[:0]
	for j := range m.size {
		idx, ok := mode.Resolve(row+j-m.offset, n)
		if !ok {
			if mode == ModeOmit {
				return data.Float(math.NaN()), nil
			}
			window = append(window, 0)
			continue
		}
		v, err := m.source.Get(col, idx)
		if err != nil {
			return data.Cell{}, err
		}
		if v.Valid {
			window = append(window, v.Value)
		}
	}
	return data.Float(median(window)), nil
}

// median sorts values in place.
func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	slices.Sort(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}
