package conv

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-datafilter/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name    string
		padded  []float64
		weights []float64
		want    []float64
	}{
		{
			name:    "box",
			padded:  []float64{0, 1, 2, 3, 4, 0},
			weights: []float64{1, 1, 1},
			want:    []float64{3, 6, 9, 7},
		},
		{
			name:    "asymmetric is not flipped",
			padded:  []float64{1, 2, 3},
			weights: []float64{1, 0},
			want:    []float64{1, 2},
		},
		{
			name:    "single tap",
			padded:  []float64{1, 2, 3},
			weights: []float64{2},
			want:    []float64{2, 4, 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(tt.want))
			if err := Direct(dst, tt.padded, tt.weights); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, dst, tt.want, 1e-12)
		})
	}
}

func TestErrors(t *testing.T) {
	if err := Correlate(nil, []float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
	if err := Correlate(make([]float64, 3), []float64{1, 2, 3}, []float64{1, 1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if err := FFT(nil, []float64{1}, []float64{1, 1, 1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch for short input, got %v", err)
	}
}

func TestFFTMatchesDirect(t *testing.T) {
	for _, m := range []int{1, 3, 17, 64, 129} {
		t.Run(fmt.Sprintf("taps=%d", m), func(t *testing.T) {
			padded := testutil.DeterministicNoise(7, 1, 500+m-1)
			weights := testutil.DeterministicNoise(11, 1, m)

			want := make([]float64, 500)
			got := make([]float64, 500)
			if err := Direct(want, padded, weights); err != nil {
				t.Fatal(err)
			}
			if err := FFT(got, padded, weights); err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
		})
	}
}

func BenchmarkCorrelate(b *testing.B) {
	for _, m := range []int{8, 32, 128, 512} {
		padded := testutil.DeterministicNoise(1, 1, 4096+m-1)
		weights := testutil.DeterministicNoise(2, 1, m)
		dst := make([]float64, 4096)

		b.Run(fmt.Sprintf("direct/taps=%d", m), func(b *testing.B) {
			for b.Loop() {
				_ = Direct(dst, padded, weights)
			}
		})
		b.Run(fmt.Sprintf("fft/taps=%d", m), func(b *testing.B) {
			for b.Loop() {
				_ = FFT(dst, padded, weights)
			}
		})
	}
}
