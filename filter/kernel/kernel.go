package kernel

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by kernel constructors and accessors.
var (
	ErrEmptyKernel      = errors.New("kernel: empty kernel")
	ErrInvalidOffset    = errors.New("kernel: offset out of range")
	ErrIndexOutOfRange  = errors.New("kernel: index out of range")
	ErrInvalidSize      = errors.New("kernel: invalid size")
	ErrInvalidParameter = errors.New("kernel: invalid parameter")
)

// Kernel is an immutable sequence of weights with an alignment offset.
// The zero value is an empty kernel and is not usable for filtering.
type Kernel struct {
	weights []float64
	offset  int
}

// New returns a kernel with the given weights, centred at len(weights)/2.
func New(weights ...float64) (Kernel, error) {
	return NewWithOffset(len(weights)/2, weights...)
}

// NewWithOffset returns a kernel whose weight at index offset is aligned
// with the current sample. The weights are copied.
func NewWithOffset(offset int, weights ...float64) (Kernel, error) {
	if len(weights) == 0 {
		return Kernel{}, ErrEmptyKernel
	}
	if offset < 0 || offset >= len(weights) {
		return Kernel{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOffset, offset, len(weights))
	}
	return Kernel{weights: slices.Clone(weights), offset: offset}, nil
}

// MustNew is like New but panics on error. Intended for literal kernels.
func MustNew(weights ...float64) Kernel {
	k, err := New(weights...)
	if err != nil {
		panic(err)
	}
	return k
}

// At returns the weight at index i.
func (k Kernel) At(i int) (float64, error) {
	if i < 0 || i >= len(k.weights) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(k.weights))
	}
	return k.weights[i], nil
}

// Offset returns the index of the weight aligned with the current sample.
func (k Kernel) Offset() int {
	return k.offset
}

// Len returns the number of weights.
func (k Kernel) Len() int {
	return len(k.weights)
}

// Weights returns a copy of the weights.
func (k Kernel) Weights() []float64 {
	return slices.Clone(k.weights)
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() float64 {
	return vecmath.Sum(k.weights)
}

// Equal reports whether k and other have identical weights and offset.
func (k Kernel) Equal(other Kernel) bool {
	return k.offset == other.offset && slices.Equal(k.weights, other.weights)
}

// Normalize returns a kernel whose weights sum to 1.
//
// A kernel whose weights sum to zero (for example a Laplacian) cannot be
// normalized; Normalize then returns a kernel of the same length and offset
// with all weights zero.
func (k Kernel) Normalize() Kernel {
	sum := k.Sum()
	if sum == 0 {
		return Kernel{weights: make([]float64, len(k.weights)), offset: k.offset}
	}
	return k.Mul(1 / sum)
}

// Add returns a kernel with v added to every weight.
func (k Kernel) Add(v float64) Kernel {
	c := make([]float64, len(k.weights))
	for i := range c {
		c[i] = v
	}
	w := make([]float64, len(k.weights))
	vecmath.AddBlock(w, k.weights, c)
	return Kernel{weights: w, offset: k.offset}
}

// Mul returns a kernel with every weight multiplied by v.
func (k Kernel) Mul(v float64) Kernel {
	w := make([]float64, len(k.weights))
	vecmath.ScaleBlock(w, k.weights, v)
	return Kernel{weights: w, offset: k.offset}
}

// Negate returns a kernel with every weight sign-flipped.
func (k Kernel) Negate() Kernel {
	return k.Mul(-1)
}

func (k Kernel) String() string {
	return fmt.Sprintf("Kernel%v@%d", k.weights, k.offset)
}
