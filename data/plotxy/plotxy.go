// Package plotxy exposes [data.Source] columns as gonum/plot data.
//
// The views read the source on every call, so a filter wrapped by a Series
// plots its current output. gonum/plot rejects NaN coordinates; use
// [Series.Points] to obtain a copy with undefined rows dropped.
package plotxy

import (
	"math"

	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-datafilter/data"
)

// Series is an XY view of two columns of a Source. When XCol is negative
// the row index is used as the X value.
//
// Series panics on read errors because plotter.XYer has no error return;
// columns are validated by NewSeries.
type Series struct {
	src  data.Source
	xCol int
	yCol int
}

var _ plotter.XYer = (*Series)(nil)

// NewSeries returns an XY view of src. xCol may be -1 to use row indices.
func NewSeries(src data.Source, xCol, yCol int) (*Series, error) {
	if xCol >= 0 {
		if err := data.CheckColumn(src, xCol); err != nil {
			return nil, err
		}
	}
	if err := data.CheckColumn(src, yCol); err != nil {
		return nil, err
	}
	return &Series{src: src, xCol: xCol, yCol: yCol}, nil
}

// Len returns the current row count.
func (s *Series) Len() int {
	return s.src.RowCount()
}

// XY returns the coordinates of row i; null cells read as NaN.
func (s *Series) XY(i int) (x, y float64) {
	x = float64(i)
	if s.xCol >= 0 {
		x = s.read(s.xCol, i)
	}
	return x, s.read(s.yCol, i)
}

func (s *Series) read(col, row int) float64 {
	c, err := s.src.Get(col, row)
	if err != nil {
		panic(err)
	}
	return c.Float64()
}

// Points copies the series, dropping rows where either coordinate is NaN
// or infinite.
func (s *Series) Points() plotter.XYs {
	n := s.Len()
	pts := make(plotter.XYs, 0, n)
	for i := range n {
		x, y := s.XY(i)
		if !finite(x) || !finite(y) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// Values is a plotter.Valuer over one column of a Source.
type Values struct {
	Series
}

var _ plotter.Valuer = (*Values)(nil)

// NewValues returns a Valuer view of column col of src.
func NewValues(src data.Source, col int) (*Values, error) {
	s, err := NewSeries(src, -1, col)
	if err != nil {
		return nil, err
	}
	return &Values{Series: *s}, nil
}

// Value returns the value of row i; null cells read as NaN.
func (v *Values) Value(i int) float64 {
	return v.read(v.yCol, i)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
