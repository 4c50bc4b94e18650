package eq

import (
	"math"

	"github.com/cwbudde/algo-eqgraph/dsp/core"
)

const (
	// MagnitudeFloorDB replaces magnitudes that underflow to zero or turn NaN.
	MagnitudeFloorDB = -200.0
	// MagnitudeCeilDB replaces magnitudes that overflow to +Inf.
	MagnitudeCeilDB = 200.0
)

// Magnitude is one sample of a frequency response.
type Magnitude struct {
	Frequency float64 `json:"frequency"` // Hz
	Magnitude float64 `json:"magnitude"` // dB
}

// MagnitudeAt returns the magnitude response in dB at freq (Hz).
//
// It evaluates |H(e^jw)|^2 in closed form with phi = sin^2(pi*freq/fs),
// so no complex arithmetic is needed. The sample rate is clamped like in
// Compute. Results that would be NaN or -Inf are replaced with
// MagnitudeFloorDB and +Inf with MagnitudeCeilDB.
func (c Coefficients) MagnitudeAt(freq, sampleRate float64) float64 {
	sampleRate = clampSampleRate(sampleRate)

	s := math.Sin(math.Pi * freq / sampleRate)
	phi := s * s

	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2

	num := (a0+a1+a2)*(a0+a1+a2) -
		4*(a0*a1+4*a0*a2+a1*a2)*phi +
		16*a0*a2*phi*phi
	den := (1+b1+b2)*(1+b1+b2) -
		4*(b1+4*b2+b1*b2)*phi +
		16*b2*phi*phi

	y := (math.Log(num) - math.Log(den)) * 10 / math.Ln10

	if core.IsFinite(y) {
		return y
	}
	if math.IsInf(y, 1) {
		return MagnitudeCeilDB
	}
	return MagnitudeFloorDB
}

// LogFrequency returns the frequency of grid point index on a logarithmic grid
// of length points spanning [minFreq, maxFreq] inclusive.
func LogFrequency(index, length int, minFreq, maxFreq float64) float64 {
	if length < 2 {
		return minFreq
	}
	logMin := math.Log10(minFreq)
	logMax := math.Log10(maxFreq)

	return math.Pow(10, logMin+float64(index)*(logMax-logMin)/float64(length-1))
}

// SampleMagnitudes evaluates c at steps log-spaced frequencies between minFreq
// and maxFreq inclusive. The returned slice is owned by the caller.
func SampleMagnitudes(c Coefficients, steps int, minFreq, maxFreq, sampleRate float64) []Magnitude {
	if steps <= 0 {
		return nil
	}

	out := make([]Magnitude, steps)
	for i := range out {
		f := LogFrequency(i, steps, minFreq, maxFreq)
		out[i] = Magnitude{
			Frequency: f,
			Magnitude: c.MagnitudeAt(f, sampleRate),
		}
	}

	return out
}

// Values returns the dB values of mags in order.
func Values(mags []Magnitude) []float64 {
	out := make([]float64, len(mags))
	for i, m := range mags {
		out[i] = m.Magnitude
	}
	return out
}
