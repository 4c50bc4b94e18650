package testutil

import (
	"math"
	"math/rand"
)

// DeterministicUniform returns length values drawn uniformly from [lo, hi)
// with a fixed seed for reproducibility.
func DeterministicUniform(seed int64, lo, hi float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// LogSpaced returns n frequencies spaced evenly on a log axis between lo and
// hi inclusive. It is an independent reference for grid generators.
func LogSpaced(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	ratio := math.Pow(hi/lo, 1/float64(n-1))
	f := lo
	for i := range out {
		out[i] = f
		f *= ratio
	}
	out[n-1] = hi
	return out
}
