package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffNaN(t *testing.T) {
	nan := math.NaN()

	d, err := MaxAbsDiff([]float64{nan, 1}, []float64{nan, 1})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0", d)
	}

	if _, err := MaxAbsDiff([]float64{nan}, []float64{1}); err == nil {
		t.Fatal("expected error for one-sided NaN")
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRampTable(t *testing.T) {
	tab := RampTable(t)
	if tab.RowCount() != 8 || tab.ColumnCount() != 2 {
		t.Fatalf("shape = %dx%d, want 8x2", tab.RowCount(), tab.ColumnCount())
	}
	c, err := tab.Get(0, 7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Value != 8 {
		t.Fatalf("last ramp value = %v, want 8", c.Value)
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}
