package response

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultFFTSize is the impulse-response length used when no option is given.
const DefaultFFTSize = 8192

// Errors returned by Measure.
var (
	ErrInvalidFFTSize    = errors.New("response: FFT size must be a power of two >= 16")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// Config holds measurement settings.
type Config struct {
	FFTSize int
}

// Option mutates a Config.
type Option func(*Config)

// WithFFTSize sets the impulse-response length and FFT size.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		cfg.FFTSize = n
	}
}

func applyOptions(opts []Option) Config {
	cfg := Config{FFTSize: DefaultFFTSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Measure returns the magnitude response of the cascaded sections for bins
// 1..N/2 of an N-point FFT, in ascending frequency. An empty cascade is
// measured as a pass-through.
func Measure(sections []eq.Coefficients, sampleRate float64, opts ...Option) ([]eq.Magnitude, error) {
	cfg := applyOptions(opts)
	if cfg.FFTSize < 16 || !isPowerOf2(cfg.FFTSize) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, cfg.FFTSize)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, ErrInvalidSampleRate
	}

	n := cfg.FFTSize
	ir := eq.CascadeImpulseResponse(sections, n)

	plan, err := algofft.NewPlanReal64(n)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, n/2+1)
	plan.Forward(spec, ir)

	half := n / 2
	re := make([]float64, half)
	im := make([]float64, half)
	for k := 1; k <= half; k++ {
		re[k-1] = real(spec[k])
		im[k-1] = imag(spec[k])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	binHz := sampleRate / float64(n)
	mags := make([]eq.Magnitude, half)
	for i, m := range mag {
		db := eq.MagnitudeFloorDB
		if m > 0 {
			db = math.Max(eq.MagnitudeFloorDB, 20*math.Log10(m))
		}
		mags[i] = eq.Magnitude{Frequency: float64(i+1) * binHz, Magnitude: db}
	}

	return mags, nil
}

// Resample interpolates measured dB values onto freqs. Frequencies outside
// the measured range take the value of the nearest end point. measured must
// be sorted by ascending frequency.
func Resample(measured []eq.Magnitude, freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	if len(measured) == 0 {
		for i := range out {
			out[i] = eq.MagnitudeFloorDB
		}
		return out
	}

	last := len(measured) - 1
	for i, f := range freqs {
		j := sort.Search(len(measured), func(k int) bool {
			return measured[k].Frequency >= f
		})

		switch {
		case j == 0:
			out[i] = measured[0].Magnitude
		case j > last:
			out[i] = measured[last].Magnitude
		default:
			lo, hi := measured[j-1], measured[j]
			frac := (f - lo.Frequency) / (hi.Frequency - lo.Frequency)
			out[i] = lo.Magnitude + frac*(hi.Magnitude-lo.Magnitude)
		}
	}

	return out
}
