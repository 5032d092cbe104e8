// Package filter provides read-only computed views over a [data.Source].
//
// A filter exposes the same row and column counts as its source and
// computes the cells of its selected columns on demand; all other columns
// pass through unchanged. Nothing is cached: every Get recomputes from the
// live source, so changes to the source or to the active [Mode] are visible
// on the next call.
//
// # Boundary modes
//
// Windowed filters read samples before the first and after the last row.
// The active Mode decides what those reads see:
//
//   - ModeZero: out-of-range samples contribute nothing
//   - ModeOmit: any out-of-range sample makes the result NaN
//   - ModeRepeat: the nearest edge row is repeated
//   - ModeMirror: rows are reflected at the edges (the edge row itself is not repeated)
//   - ModeCircular: rows wrap around
//
// # Convolution
//
//	k := kernel.MustNew(1, 1, 1)
//	f, err := filter.NewConvolution(tab, k, filter.ModeRepeat, 0)
//	v, err := f.Get(0, 0)
//
// Null source cells contribute zero to a weighted sum. [Convolution.Column]
// materialises a whole filtered column at once and switches to FFT-based
// correlation for long kernels.
//
// # Median
//
// [Median] replaces each selected cell with the median of its window,
// skipping null cells.
package filter
