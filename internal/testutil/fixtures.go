package testutil

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-datafilter/data"
)

// Ramp returns 1, 2, ..., n.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] from
// a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RampTable returns the two-column reference table used across filter
// tests: column 0 holds 1..8, column 1 holds eight ones.
func RampTable(t testing.TB) *data.Table {
	t.Helper()
	tab, err := data.NewFloatTable(Ramp(8), Constant(1, 8))
	if err != nil {
		t.Fatalf("RampTable: %v", err)
	}
	return tab
}
