package kernel

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Uniform returns a centred kernel of size weights, all equal to value.
func Uniform(size int, value float64) (Kernel, error) {
	if size < 1 {
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	w := make([]float64, size)
	for i := range w {
		w[i] = value
	}
	return New(w...)
}

// Binomial returns a centred kernel holding row size-1 of Pascal's
// triangle. Normalized, it approximates a Gaussian with variance (size-1)/4.
func Binomial(size int) (Kernel, error) {
	if size < 1 {
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	w := make([]float64, size)
	w[0] = 1
	for i := 1; i < size; i++ {
		w[i] = w[i-1] * float64(size-i) / float64(i)
	}
	return New(w...)
}

// Gaussian returns a centred kernel sampling the normal density with
// standard deviation sigma at integer distances from the centre.
func Gaussian(size int, sigma float64) (Kernel, error) {
	if size < 1 {
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return Kernel{}, fmt.Errorf("%w: sigma %v", ErrInvalidParameter, sigma)
	}
	dist := stats.NormalDist{Mu: 0, Sigma: sigma}
	off := size / 2
	w := make([]float64, size)
	for i := range w {
		w[i] = dist.PDF(float64(i - off))
	}
	return NewWithOffset(off, w...)
}

// Laplacian returns a centred second-derivative kernel: every weight is -1
// except the centre, which is size-1. Its weights sum to zero.
func Laplacian(size int) (Kernel, error) {
	if size < 1 {
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	off := size / 2
	w := make([]float64, size)
	for i := range w {
		w[i] = -1
	}
	w[off] = float64(size - 1)
	return NewWithOffset(off, w...)
}

// Triangular returns a centred kernel with linearly decaying weights.
func Triangular(size int) (Kernel, error) {
	return shaped(size, func(u float64) float64 {
		return 1 - math.Abs(u)
	})
}

// Epanechnikov returns a centred parabolic kernel.
func Epanechnikov(size int) (Kernel, error) {
	return shaped(size, func(u float64) float64 {
		return 0.75 * (1 - u*u)
	})
}

// Cosine returns a centred kernel following a quarter cosine period.
func Cosine(size int) (Kernel, error) {
	return shaped(size, func(u float64) float64 {
		return math.Pi / 4 * math.Cos(math.Pi/2*u)
	})
}

// Tricube returns a centred tricube kernel.
func Tricube(size int) (Kernel, error) {
	return shaped(size, func(u float64) float64 {
		a := math.Abs(u)
		b := 1 - a*a*a
		return 70.0 / 81.0 * b * b * b
	})
}

// Biweight returns a centred biweight (quartic) kernel.
func Biweight(size int) (Kernel, error) {
	return shaped(size, func(u float64) float64 {
		b := 1 - u*u
		return 15.0 / 16.0 * b * b
	})
}

// shaped samples fn on (-1, 1). The end points are excluded so the outer
// weights stay non-zero.
func shaped(size int, fn func(u float64) float64) (Kernel, error) {
	if size < 1 {
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	off := size / 2
	scale := float64(off + 1)
	w := make([]float64, size)
	for i := range w {
		w[i] = fn(float64(i-off) / scale)
	}
	return NewWithOffset(off, w...)
}
