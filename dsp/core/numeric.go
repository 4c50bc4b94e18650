package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
// NaN is mapped to min so degenerate slider values stay usable.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min || math.IsNaN(value) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// Round rounds half away from zero.
func Round(x float64) float64 {
	return math.Round(x)
}

// RoundTo2 rounds x to two decimal places. Plotted coordinates go through
// this so path strings stay stable between renders.
func RoundTo2(x float64) float64 {
	return math.Round(x*100) / 100
}

// RoundTo rounds x to the given number of decimal places.
func RoundTo(x float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(x)
	}

	p := math.Pow10(decimals)

	return math.Round(x*p) / p
}

// Trunc drops the fractional part of x (rounds toward zero).
func Trunc(x float64) float64 {
	return math.Trunc(x)
}
