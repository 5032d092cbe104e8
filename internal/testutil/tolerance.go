package testutil

import (
	"fmt"
	"math"
	"testing"
)

// nearlyEqual treats two NaNs as equal so filtered columns containing
// undefined cells can be compared directly.
func nearlyEqual(got, want, eps float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	return math.Abs(got-want) <= eps
}

// RequireNearlyEqual fails t if got and want differ by more than eps.
// NaN only matches NaN.
func RequireNearlyEqual(t *testing.T, got, want, eps float64, msg string) {
	t.Helper()
	if !nearlyEqual(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", msg, got, want, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). NaN only matches NaN.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !nearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices,
// ignoring positions where both are NaN. Returns an error if the slices
// differ in length or only one side is NaN.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		an, bn := math.IsNaN(a[i]), math.IsNaN(b[i])
		if an && bn {
			continue
		}
		if an || bn {
			return 0, fmt.Errorf("index %d: NaN mismatch (%v vs %v)", i, a[i], b[i])
		}
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
