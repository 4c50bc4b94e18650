package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eqgraph/dsp/core"
)

const (
	// DefaultSampleRate is used by callers that have no sample rate of their own.
	DefaultSampleRate = 44100.0
	// DefaultQ is the Butterworth Q used when a band has no explicit Q.
	DefaultQ = 0.707

	minSampleRate = 1.0
	minQ          = 1e-4
	maxGainDB     = 120.0
)

// Coefficients holds a normalized biquad transfer function
//
//	H(z) = (A0 + A1 z^-1 + A2 z^-2) / (1 + B1 z^-1 + B2 z^-2)
//
// A0..A2 are feed-forward terms, B1 and B2 feedback terms.
type Coefficients struct {
	A0, A1, A2 float64
	B1, B2     float64
}

// Identity returns the pass-through transfer function (0 dB everywhere).
func Identity() Coefficients {
	return Coefficients{A0: 1}
}

// ComputeFilter derives coefficients for f at sampleRate.
func ComputeFilter(f Filter, sampleRate float64) (Coefficients, error) {
	return Compute(f.Kind, f.Freq, f.Gain, f.Q, sampleRate)
}

// Compute derives biquad coefficients for a filter of the given kind.
//
// Inputs are clamped before use: sampleRate >= 1, freq to [0, sampleRate/2],
// q >= 1e-4 and gain to [-120, 120] dB. Peak and shelf kinds use different
// formulas for boost and cut so that a cut exactly mirrors the matching boost.
//
// An unknown kind yields zero coefficients together with ErrUnknownKind; the
// caller decides whether to report it.
func Compute(kind Kind, freq, gain, q, sampleRate float64) (Coefficients, error) {
	sampleRate = clampSampleRate(sampleRate)
	freq = core.Clamp(freq, 0, sampleRate/2)
	q = math.Max(minQ, q)
	if math.IsNaN(q) {
		q = minQ
	}
	gain = core.Clamp(gain, -maxGainDB, maxGainDB)

	v := math.Pow(10, math.Abs(gain)/20)
	k := math.Tan(math.Pi * freq / sampleRate)
	kk := k * k

	var c Coefficients

	switch kind {
	case Notch:
		norm := 1 / (1 + k/q + kk)
		c.A0 = (1 + kk) * norm
		c.A1 = 2 * (kk - 1) * norm
		c.A2 = c.A0
		c.B1 = c.A1
		c.B2 = (1 - k/q + kk) * norm

	case Peak:
		if gain >= 0 {
			norm := 1 / (1 + k/q + kk)
			c.A0 = (1 + v/q*k + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - v/q*k + kk) * norm
			c.B1 = c.A1
			c.B2 = (1 - k/q + kk) * norm
		} else {
			norm := 1 / (1 + v/q*k + kk)
			c.A0 = (1 + k/q + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - k/q + kk) * norm
			c.B1 = c.A1
			c.B2 = (1 - v/q*k + kk) * norm
		}

	case LowShelf1:
		if gain >= 0 {
			norm := 1 / (k + 1)
			c.A0 = (k*v + 1) * norm
			c.A1 = (k*v - 1) * norm
			c.B1 = (k - 1) * norm
		} else {
			norm := 1 / (k*v + 1)
			c.A0 = (k + 1) * norm
			c.A1 = (k - 1) * norm
			c.B1 = (k*v - 1) * norm
		}

	case LowShelf2:
		sv := math.Sqrt(2 * v)
		if gain >= 0 {
			norm := 1 / (1 + math.Sqrt2*k + kk)
			c.A0 = (1 + sv*k + v*kk) * norm
			c.A1 = 2 * (v*kk - 1) * norm
			c.A2 = (1 - sv*k + v*kk) * norm
			c.B1 = 2 * (kk - 1) * norm
			c.B2 = (1 - math.Sqrt2*k + kk) * norm
		} else {
			norm := 1 / (1 + sv*k + v*kk)
			c.A0 = (1 + math.Sqrt2*k + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - math.Sqrt2*k + kk) * norm
			c.B1 = 2 * (v*kk - 1) * norm
			c.B2 = (1 - sv*k + v*kk) * norm
		}

	case HighShelf1:
		if gain >= 0 {
			norm := 1 / (k + 1)
			c.A0 = (k + v) * norm
			c.A1 = (k - v) * norm
			c.B1 = (k - 1) * norm
		} else {
			norm := 1 / (k + v)
			c.A0 = (k + 1) * norm
			c.A1 = (k - 1) * norm
			c.B1 = (k - v) * norm
		}

	case HighShelf2:
		sv := math.Sqrt(2 * v)
		if gain >= 0 {
			norm := 1 / (1 + math.Sqrt2*k + kk)
			c.A0 = (v + sv*k + kk) * norm
			c.A1 = 2 * (kk - v) * norm
			c.A2 = (v - sv*k + kk) * norm
			c.B1 = 2 * (kk - 1) * norm
			c.B2 = (1 - math.Sqrt2*k + kk) * norm
		} else {
			norm := 1 / (v + sv*k + kk)
			c.A0 = (1 + math.Sqrt2*k + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - math.Sqrt2*k + kk) * norm
			c.B1 = 2 * (kk - v) * norm
			c.B2 = (v - sv*k + kk) * norm
		}

	case Lowpass1:
		// 1/(1/k + 1) rewritten as k/(k+1) so that k = 0 stays finite.
		norm := 1 / (k + 1)
		c.A0 = k * norm
		c.A1 = c.A0
		c.B1 = (k - 1) * norm

	case Lowpass2:
		norm := 1 / (1 + k/q + kk)
		c.A0 = kk * norm
		c.A1 = 2 * c.A0
		c.A2 = c.A0
		c.B1 = 2 * (kk - 1) * norm
		c.B2 = (1 - k/q + kk) * norm

	case Highpass1:
		norm := 1 / (k + 1)
		c.A0 = norm
		c.A1 = -norm
		c.B1 = (k - 1) * norm

	case Highpass2:
		norm := 1 / (1 + k/q + kk)
		c.A0 = norm
		c.A1 = -2 * c.A0
		c.A2 = c.A0
		c.B1 = 2 * (kk - 1) * norm
		c.B2 = (1 - k/q + kk) * norm

	case Bandpass:
		norm := 1 / (1 + k/q + kk)
		c.A0 = k / q * norm
		c.A2 = -c.A0
		c.B1 = 2 * (kk - 1) * norm
		c.B2 = (1 - k/q + kk) * norm

	case Gain:
		c.A0 = math.Pow(10, gain/20)

	case Bypass:
		c = Identity()

	default:
		return Coefficients{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return c, nil
}

// clampSampleRate limits sampleRate to >= 1 Hz, mapping NaN to 1 Hz.
func clampSampleRate(sampleRate float64) float64 {
	if math.IsNaN(sampleRate) {
		return minSampleRate
	}
	return math.Max(minSampleRate, sampleRate)
}
