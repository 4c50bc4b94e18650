package graph

import (
	"math"
	"strconv"
)

// CenterLine returns the y coordinate of 0 dB.
func CenterLine(minGain, maxGain, height float64) float64 {
	return maxGain / (maxGain - minGain) * height
}

// GainToY maps gain in dB to a y coordinate. The result is not clamped.
func GainToY(gain, minGain, maxGain, height float64) float64 {
	scale := height / (maxGain - minGain)
	return CenterLine(minGain, maxGain, height) - gain*scale
}

// YToGain is the inverse of GainToY.
func YToGain(y, minGain, maxGain, height float64) float64 {
	scale := height / (maxGain - minGain)
	return (CenterLine(minGain, maxGain, height) - y) / scale
}

// MaxGainGridLines bounds the number of gain gridlines a scale may produce.
const MaxGainGridLines = 1e4

// GainGrid returns gridline gains from maxGain down to minGain in steps of
// step dB. It returns nil for a non-positive step, an empty range, or a step
// that would yield more than MaxGainGridLines lines.
func GainGrid(minGain, maxGain, step float64) []float64 {
	if !(step > 0) || !(maxGain >= minGain) {
		return nil
	}
	lines := (maxGain - minGain) / step
	if !(lines <= MaxGainGridLines) {
		return nil
	}
	n := int(math.Floor(lines+1e-9)) + 1
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = maxGain - float64(i)*step
	}
	return grid
}

// FormatGain renders a grid label: "+6", "0", "-6".
func FormatGain(gain float64) string {
	s := strconv.FormatFloat(gain, 'f', -1, 64)
	if gain > 0 {
		return "+" + s
	}
	return s
}

// FormatFrequency renders a frequency label: "20Hz", "1kHz", "2.5kHz".
func FormatFrequency(freq float64) string {
	if freq < 1000 {
		return strconv.FormatFloat(freq, 'f', -1, 64) + "Hz"
	}
	return strconv.FormatFloat(freq/1000, 'f', -1, 64) + "kHz"
}
