package graph

import (
	"github.com/cwbudde/algo-eqgraph/dsp/core"
	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
)

// Axes selects which pointer axes a drag applies.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY

	AxisBoth = AxisX | AxisY
)

const (
	// zeroSnapDB is the band around 0 dB that drags snap to exactly 0.
	zeroSnapDB = 0.05

	qStep = 0.1
	minQ  = 0.1
	maxQ  = 10
)

// Marker returns the control point position of f. Pass and notch filters sit
// on the center line.
func (g *Graph) Marker(f eq.Filter) Point {
	y := g.CenterLine()
	if !f.Kind.IsPass() {
		y = g.scale.GainToY(f.Gain, g.height)
	}
	return Point{X: g.logScale.X(f.Freq), Y: y}
}

// Drag returns f moved to pointer position (x, y). The position is clamped
// to the canvas and the frequency to the scale range. Gains within 0.05 dB
// of zero snap to 0. Pass and notch filters keep their gain.
func (g *Graph) Drag(f eq.Filter, x, y float64, axes Axes) eq.Filter {
	if axes&AxisX != 0 {
		cx := core.Clamp(x, 0, g.width)
		freq := core.Clamp(g.logScale.Frequency(cx), g.scale.MinFreq, g.scale.MaxFreq)
		f = f.WithFreq(freq)
	}

	if axes&AxisY != 0 && !f.Kind.IsPass() {
		cy := core.Clamp(y, 0, g.height)
		gain := g.scale.YToGain(cy, g.height)
		if gain > -zeroSnapDB && gain < zeroSnapDB {
			gain = 0
		}
		f = f.WithGain(gain)
	}

	return f
}

// WheelQ nudges Q by 0.1 per wheel event: up for positive deltaY, down for
// negative. The result is kept in [0.1, 10] and rounded to two decimals.
func (g *Graph) WheelQ(f eq.Filter, deltaY float64) eq.Filter {
	q := f.Q
	switch {
	case deltaY > 0:
		q += qStep
	case deltaY < 0:
		q -= qStep
	}
	return f.WithQ(core.RoundTo2(core.Clamp(q, minQ, maxQ)))
}

// Readout returns the tracker values under the pointer: frequency truncated
// to whole Hz and gain rounded to precision decimals.
func (g *Graph) Readout(x, y float64, precision int) (freq, gain float64) {
	freq = core.Trunc(g.logScale.Frequency(x))
	gain = core.RoundTo(g.scale.YToGain(y, g.height), precision)
	return freq, gain
}
