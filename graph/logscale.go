package graph

import (
	"math"

	"github.com/cwbudde/algo-eqgraph/dsp/core"
)

// maxSubdivisions caps tick multiples so one decade never reaches the next.
const maxSubdivisions = 9

// LogScale maps frequency to x on a logarithmic axis of a given pixel width.
type LogScale struct {
	minFreq  float64
	maxFreq  float64
	width    float64
	logMin   float64
	logRange float64
}

// NewLogScale returns the scale mapping [minFreq, maxFreq] onto [0, width].
// Both frequencies must be positive with minFreq < maxFreq; see Scale.Validate.
func NewLogScale(minFreq, maxFreq, width float64) LogScale {
	logMin := math.Log10(minFreq)
	return LogScale{
		minFreq:  minFreq,
		maxFreq:  maxFreq,
		width:    width,
		logMin:   logMin,
		logRange: math.Log10(maxFreq) - logMin,
	}
}

// Width returns the pixel width of the axis.
func (s LogScale) Width() float64 {
	return s.width
}

// X returns the x coordinate of freq. Frequencies outside the range map
// outside [0, width].
func (s LogScale) X(freq float64) float64 {
	if s.logRange == 0 {
		return 0
	}
	return (math.Log10(freq) - s.logMin) / s.logRange * s.width
}

// Frequency is the inverse of X.
func (s LogScale) Frequency(x float64) float64 {
	if s.width == 0 {
		return s.minFreq
	}
	return math.Pow(10, s.logMin+x/s.width*s.logRange)
}

// Ticks returns gridline frequencies in ascending order: every decade start
// in range plus its 2x..(count-1)x multiples, limited to [minFreq, maxFreq].
// Counts above 10 yield the same ticks as 10.
func (s LogScale) Ticks(count int) []float64 {
	if !(s.minFreq > 0) || !(s.maxFreq >= s.minFreq) {
		return nil
	}

	last := min(count-1, maxSubdivisions)
	first := int(math.Floor(s.logMin))
	end := int(math.Floor(math.Log10(s.maxFreq)))

	var ticks []float64
	for d := first; d <= end; d++ {
		start := math.Pow10(d)
		if start >= s.minFreq && start <= s.maxFreq {
			ticks = append(ticks, start)
		}
		for j := 2; j <= last; j++ {
			tick := start * float64(j)
			if d < 0 {
				tick = core.RoundTo(tick, -d)
			}
			if tick > s.maxFreq {
				break
			}
			if tick >= s.minFreq {
				ticks = append(ticks, tick)
			}
		}
	}
	return ticks
}
