package graph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
)

var (
	// ErrInvalidScale is returned when a Scale violates its range invariants.
	ErrInvalidScale = errors.New("graph: invalid scale")
	// ErrInvalidSize is returned for non-positive canvas dimensions.
	ErrInvalidSize = errors.New("graph: invalid canvas size")
)

// Scale holds the axis ranges shared by everything drawn on one graph.
type Scale struct {
	MinFreq    float64 // Hz
	MaxFreq    float64 // Hz
	SampleRate float64 // Hz

	MinGain float64 // dB
	MaxGain float64 // dB
	DBSteps float64 // gain grid spacing in dB

	OctaveTicks  int       // ticks per decade for the frequency grid
	OctaveLabels []float64 // labelled frequencies
	MajorTicks   []float64 // gridlines drawn with the major stroke
}

// ScaleOption mutates a Scale.
type ScaleOption func(*Scale)

// DefaultScale returns the audio-band defaults: 20 Hz to 20 kHz, +-16 dB.
func DefaultScale() Scale {
	return Scale{
		MinFreq:      20,
		MaxFreq:      20000,
		SampleRate:   eq.DefaultSampleRate,
		MinGain:      -16,
		MaxGain:      16,
		DBSteps:      4,
		OctaveTicks:  10,
		OctaveLabels: []float64{10, 20, 40, 60, 100, 200, 500, 1000, 2000, 5000, 10000, 20000},
		MajorTicks:   []float64{100, 1000, 10000},
	}
}

// NewScale applies zero or more options to DefaultScale.
func NewScale(opts ...ScaleOption) Scale {
	s := DefaultScale()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithFrequencyRange sets the plotted frequency range.
func WithFrequencyRange(minFreq, maxFreq float64) ScaleOption {
	return func(s *Scale) {
		if minFreq > 0 && maxFreq > minFreq {
			s.MinFreq = minFreq
			s.MaxFreq = maxFreq
		}
	}
}

// WithGainRange sets the plotted gain range.
func WithGainRange(minGain, maxGain float64) ScaleOption {
	return func(s *Scale) {
		if maxGain > minGain {
			s.MinGain = minGain
			s.MaxGain = maxGain
		}
	}
}

// WithSampleRate sets the sample rate used for coefficient design.
func WithSampleRate(sampleRate float64) ScaleOption {
	return func(s *Scale) {
		if sampleRate > 0 {
			s.SampleRate = sampleRate
		}
	}
}

// WithDBSteps sets the gain grid spacing.
func WithDBSteps(step float64) ScaleOption {
	return func(s *Scale) {
		if step > 0 {
			s.DBSteps = step
		}
	}
}

// WithOctaveTicks sets the number of frequency ticks per decade.
func WithOctaveTicks(count int) ScaleOption {
	return func(s *Scale) {
		if count > 0 {
			s.OctaveTicks = count
		}
	}
}

// WithOctaveLabels replaces the labelled frequencies.
func WithOctaveLabels(labels ...float64) ScaleOption {
	return func(s *Scale) {
		if len(labels) > 0 {
			s.OctaveLabels = slices.Clone(labels)
		}
	}
}

// Validate checks the range invariants.
func (s Scale) Validate() error {
	switch {
	case !(s.MinFreq > 0):
		return fmt.Errorf("%w: min frequency %g must be > 0", ErrInvalidScale, s.MinFreq)
	case !(s.MaxFreq > s.MinFreq):
		return fmt.Errorf("%w: max frequency %g must exceed min frequency %g", ErrInvalidScale, s.MaxFreq, s.MinFreq)
	case !(s.MaxGain > s.MinGain):
		return fmt.Errorf("%w: max gain %g must exceed min gain %g", ErrInvalidScale, s.MaxGain, s.MinGain)
	case !(s.SampleRate > 0):
		return fmt.Errorf("%w: sample rate %g must be > 0", ErrInvalidScale, s.SampleRate)
	case s.DBSteps < 0:
		return fmt.Errorf("%w: dB step %g must be >= 0", ErrInvalidScale, s.DBSteps)
	case s.DBSteps > 0 && !((s.MaxGain-s.MinGain)/s.DBSteps <= MaxGainGridLines):
		return fmt.Errorf("%w: dB step %g yields more than %g gridlines", ErrInvalidScale, s.DBSteps, float64(MaxGainGridLines))
	case s.OctaveTicks < 0:
		return fmt.Errorf("%w: octave ticks %d must be >= 0", ErrInvalidScale, s.OctaveTicks)
	}
	return nil
}

// CenterLine returns the y coordinate of 0 dB for this scale.
func (s Scale) CenterLine(height float64) float64 {
	return CenterLine(s.MinGain, s.MaxGain, height)
}

// GainToY maps gain to a y coordinate for this scale.
func (s Scale) GainToY(gain, height float64) float64 {
	return GainToY(gain, s.MinGain, s.MaxGain, height)
}

// YToGain maps a y coordinate to gain for this scale.
func (s Scale) YToGain(y, height float64) float64 {
	return YToGain(y, s.MinGain, s.MaxGain, height)
}

// GainGrid returns the gain gridlines for this scale.
func (s Scale) GainGrid() []float64 {
	return GainGrid(s.MinGain, s.MaxGain, s.DBSteps)
}
