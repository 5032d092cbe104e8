package filter

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/cwbudde/algo-datafilter/data"
)

// Errors returned by filter constructors and setters.
var (
	ErrNilSource     = errors.New("filter: nil source")
	ErrUnknownMode   = errors.New("filter: unknown mode")
	ErrInvalidWindow = errors.New("filter: invalid window")
	ErrInvalidKernel = errors.New("filter: invalid kernel")
)

// Filter is the state shared by all filters: the source, the filtered
// column set and the active mode. It is embedded by concrete filters.
//
// The source is not owned. Row and column counts are read from it on every
// call. The mode may be changed concurrently with reads.
type Filter struct {
	source  data.Source
	columns []int
	mode    atomic.Int32
}

func (f *Filter) init(src data.Source, mode Mode, cols []int) error {
	if src == nil {
		return ErrNilSource
	}
	if !mode.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	n := src.ColumnCount()
	if len(cols) == 0 {
		cols = make([]int, n)
		for i := range cols {
			cols[i] = i
		}
	} else {
		cols = slices.Clone(cols)
		for _, c := range cols {
			if c < 0 || c >= n {
				return &data.IndexError{What: "column", Index: c, Len: n}
			}
		}
		slices.Sort(cols)
		cols = slices.Compact(cols)
	}

	f.source = src
	f.columns = cols
	f.mode.Store(int32(mode))
	return nil
}

func (m Mode) valid() bool {
	return m >= ModeZero && m <= ModeCircular
}

// Source returns the filtered source.
func (f *Filter) Source() data.Source {
	return f.source
}

// RowCount returns the source's current row count.
func (f *Filter) RowCount() int {
	return f.source.RowCount()
}

// ColumnCount returns the source's current column count.
func (f *Filter) ColumnCount() int {
	return f.source.ColumnCount()
}

// Columns returns the sorted indices of the filtered columns.
func (f *Filter) Columns() []int {
	return slices.Clone(f.columns)
}

// IsFiltered reports whether column col is computed by the filter.
func (f *Filter) IsFiltered(col int) bool {
	_, found := slices.BinarySearch(f.columns, col)
	return found
}

// Mode returns the active boundary mode.
func (f *Filter) Mode() Mode {
	return Mode(f.mode.Load())
}

// SetMode changes the boundary mode used by subsequent reads.
func (f *Filter) SetMode(m Mode) error {
	if !m.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownMode, m)
	}
	f.mode.Store(int32(m))
	return nil
}

// Config holds the settings shared by all filter constructors.
type Config struct {
	Mode    Mode
	Columns []int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig filters every column with ModeZero.
func DefaultConfig() Config {
	return Config{Mode: ModeZero}
}

// WithMode sets the boundary mode. Unknown modes are ignored.
func WithMode(m Mode) Option {
	return func(cfg *Config) {
		if m.valid() {
			cfg.Mode = m
		}
	}
}

// WithColumns restricts the filter to the given columns.
func WithColumns(cols ...int) Option {
	return func(cfg *Config) {
		cfg.Columns = append(cfg.Columns, cols...)
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
