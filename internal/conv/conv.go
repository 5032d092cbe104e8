// Package conv computes sliding weighted sums over pre-padded sample
// slices. It backs whole-column materialisation in package filter.
//
// The direct path is O(N*M) and wins for short kernels; the FFT path is
// used from FFTThreshold taps upwards.
package conv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by correlation functions.
var (
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// FFTThreshold is the kernel length from which Correlate uses the FFT path.
const FFTThreshold = 64

// Correlate writes dst[i] = sum_j padded[i+j] * weights[j].
// dst must have length len(padded) - len(weights) + 1.
func Correlate(dst, padded, weights []float64) error {
	if err := check(dst, padded, weights); err != nil {
		return err
	}
	if len(weights) >= FFTThreshold {
		return fftCorrelate(dst, padded, weights)
	}
	directCorrelate(dst, padded, weights)
	return nil
}

// Direct is Correlate forced onto the time-domain path.
func Direct(dst, padded, weights []float64) error {
	if err := check(dst, padded, weights); err != nil {
		return err
	}
	directCorrelate(dst, padded, weights)
	return nil
}

// FFT is Correlate forced onto the frequency-domain path.
func FFT(dst, padded, weights []float64) error {
	if err := check(dst, padded, weights); err != nil {
		return err
	}
	return fftCorrelate(dst, padded, weights)
}

func check(dst, padded, weights []float64) error {
	if len(weights) == 0 {
		return ErrEmptyKernel
	}
	if want := len(padded) - len(weights) + 1; want < 0 || len(dst) != want {
		return fmt.Errorf("%w: dst has %d samples, want %d", ErrLengthMismatch, len(dst), max(want, 0))
	}
	return nil
}

func directCorrelate(dst, padded, weights []float64) {
	m := len(weights)
	temp := make([]float64, m)
	for i := range dst {
		vecmath.MulBlock(temp, padded[i:i+m], weights)
		dst[i] = vecmath.Sum(temp)
	}
}

// fftCorrelate convolves padded with the reversed weights in a single
// zero-padded FFT and keeps the fully overlapping part.
func fftCorrelate(dst, padded, weights []float64) error {
	if len(dst) == 0 {
		return nil
	}
	m := len(weights)
	fftSize := nextPowerOf2(len(padded) + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	sig := make([]complex128, fftSize)
	for i, v := range padded {
		sig[i] = complex(v, 0)
	}
	ker := make([]complex128, fftSize)
	for j, w := range weights {
		ker[m-1-j] = complex(w, 0)
	}

	sigFreq := make([]complex128, fftSize)
	if err := plan.Forward(sigFreq, sig); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	kerFreq := make([]complex128, fftSize)
	if err := plan.Forward(kerFreq, ker); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i := range sigFreq {
		sigFreq[i] *= kerFreq[i]
	}

	out := make([]complex128, fftSize)
	if err := plan.Inverse(out, sigFreq); err != nil {
		return fmt.Errorf("conv: inverse FFT failed: %w", err)
	}
	for i := range dst {
		dst[i] = real(out[i+m-1])
	}
	return nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
