package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-datafilter/data"
	"github.com/cwbudde/algo-datafilter/filter/kernel"
	"github.com/cwbudde/algo-datafilter/internal/conv"
)

// Convolution is a filter computing kernel-weighted sums over the rows of
// its selected columns:
//
//	y[row] = sum_j k[j] * x[row + j - k.Offset()]
//
// Out-of-range rows are handled by the active Mode; null cells count as 0.
type Convolution struct {
	Filter
	kernel kernel.Kernel

	// weights is k.Weights() taken once; Kernel.Weights copies on every call.
	weights []float64
}

var _ data.Source = (*Convolution)(nil)

// NewConvolution returns a convolution of src with k over the given
// columns, or over every column if none are given.
func NewConvolution(src data.Source, k kernel.Kernel, mode Mode, cols ...int) (*Convolution, error) {
	if k.Len() == 0 {
		return nil, ErrInvalidKernel
	}
	c := &Convolution{kernel: k, weights: k.Weights()}
	if err := c.init(src, mode, cols); err != nil {
		return nil, err
	}
	return c, nil
}

// NewConvolutionWithOptions is NewConvolution configured by options.
func NewConvolutionWithOptions(src data.Source, k kernel.Kernel, opts ...Option) (*Convolution, error) {
	cfg := ApplyOptions(opts...)
	return NewConvolution(src, k, cfg.Mode, cfg.Columns...)
}

// Kernel returns the convolution kernel.
func (c *Convolution) Kernel() kernel.Kernel {
	return c.kernel
}

// Get returns the cell at (col, row). Unfiltered columns are read straight
// from the source. Filtered cells are always valid; under ModeOmit their
// value is NaN where the kernel window leaves the data.
func (c *Convolution) Get(col, row int) (data.Cell, error) {
	if err := data.CheckIndex(c.source, col, row); err != nil {
		return data.Cell{}, err
	}
	if !c.IsFiltered(col) {
		return c.source.Get(col, row)
	}

	mode := c.Mode()
	n := c.source.RowCount()
	off := c.kernel.Offset()

	var sum float64
	for j, w := range c.weights {
		idx, ok := mode.Resolve(row+j-off, n)
		if !ok {
			if mode == ModeOmit {
				return data.Float(math.NaN()), nil
			}
			continue
		}
		v, err := c.source.Get(col, idx)
		if err != nil {
			return data.Cell{}, err
		}
		if v.Valid {
			sum += v.Value * w
		}
	}
	return data.Float(sum), nil
}

// Column returns every row of column col in one pass. For filtered
// columns the result matches Get row by row; long kernels are evaluated
// with FFT correlation, so values may differ from Get by rounding error.
// Unfiltered columns are returned with nulls as NaN.
func (c *Convolution) Column(col int) ([]float64, error) {
	if err := data.CheckColumn(c.source, col); err != nil {
		return nil, err
	}
	if !c.IsFiltered(col) {
		return data.ColumnValues(c.source, col)
	}

	mode := c.Mode()
	n := c.source.RowCount()
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	values := make([]float64, n)
	finite := true
	for row := range values {
		v, err := c.source.Get(col, row)
		if err != nil {
			return nil, err
		}
		if v.Valid {
			values[row] = v.Value
			if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
				finite = false
			}
		}
	}

	m := len(c.weights)
	off := c.kernel.Offset()
	padded := make([]float64, n+m-1)
	for p := range padded {
		if idx, ok := mode.Resolve(p-off, n); ok {
			padded[p] = values[idx]
		}
	}

	// Non-finite samples would spread across the whole FFT block.
	correlate := conv.Correlate
	if !finite {
		correlate = conv.Direct
	}
	if err := correlate(out, padded, c.weights); err != nil {
		return nil, fmt.Errorf("filter: column %d: %w", col, err)
	}

	if mode == ModeOmit {
		nan := math.NaN()
		for row := range out {
			if row-off < 0 || row+m-1-off >= n {
				out[row] = nan
			}
		}
	}
	return out, nil
}
