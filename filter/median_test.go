package filter

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-datafilter/data"
	"github.com/cwbudde/algo-datafilter/internal/testutil"
)

func TestMedianModes(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		mode Mode
		want []float64
	}{
		{ModeZero, []float64{1, 2, 3, 4, 5, 6, 7, 7}},
		{ModeOmit, []float64{nan, 2, 3, 4, 5, 6, 7, nan}},
		{ModeRepeat, []float64{1, 2, 3, 4, 5, 6, 7, 8}},
		{ModeMirror, []float64{2, 2, 3, 4, 5, 6, 7, 7}},
		{ModeCircular, []float64{2, 2, 3, 4, 5, 6, 7, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			f, err := NewMedian(testutil.RampTable(t), 3, 1, tt.mode, 0)
			if err != nil {
				t.Fatal(err)
			}
			got := make([]float64, f.RowCount())
			for row := range got {
				got[row] = mustGet(t, f, 0, row)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)

			col, err := f.Column(0)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, col, tt.want, 0)
		})
	}
}

func TestMedianSkipsNulls(t *testing.T) {
	tab := data.NewTable(data.TypeFloat64)
	for _, v := range []any{5.0, nil, 1.0, nil, nil, 9.0} {
		if err := tab.Add(v); err != nil {
			t.Fatal(err)
		}
	}
	f, err := NewMedian(tab, 3, 1, ModeRepeat)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{5, 3, 1, 1, 9, 9}
	for row, w := range want {
		testutil.RequireNearlyEqual(t, mustGet(t, f, 0, row), w, 0, fmt.Sprintf("row %d", row))
	}

	f, err = NewMedian(tab, 1, 0, ModeRepeat)
	if err != nil {
		t.Fatal(err)
	}
	if v := mustGet(t, f, 0, 1); !math.IsNaN(v) {
		t.Errorf("empty window = %v, want NaN", v)
	}
}

func TestMedianPassThroughAndErrors(t *testing.T) {
	tab := testutil.RampTable(t)
	f, err := NewMedian(tab, 5, 2, ModeMirror, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != 5 || f.Offset() != 2 {
		t.Errorf("Size/Offset = %d/%d, want 5/2", f.Size(), f.Offset())
	}
	for row := range 8 {
		testutil.RequireNearlyEqual(t, mustGet(t, f, 1, row), 1, 0, "pass-through")
	}
	if _, err := f.Get(0, 8); !errors.Is(err, data.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}

	if _, err := NewMedian(tab, 0, 0, ModeZero); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("size 0: expected ErrInvalidWindow, got %v", err)
	}
	if _, err := NewMedian(tab, 3, 3, ModeZero); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("offset 3: expected ErrInvalidWindow, got %v", err)
	}
	if _, err := NewMedian(nil, 3, 1, ModeZero); !errors.Is(err, ErrNilSource) {
		t.Errorf("expected ErrNilSource, got %v", err)
	}
}

func TestMedianEvenWindow(t *testing.T) {
	f, err := NewMedian(testutil.RampTable(t), 4, 1, ModeRepeat, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Rows 2..5 -> 3, 4, 5, 6.
	testutil.RequireNearlyEqual(t, mustGet(t, f, 0, 3), 4.5, 0, "row 3")
}
