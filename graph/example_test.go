package graph_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	"github.com/cwbudde/algo-eqgraph/graph"
)

func ExampleLogScale_Ticks() {
	s := graph.NewLogScale(20, 200, 500)
	fmt.Println(s.Ticks(10))
	fmt.Printf("%.1f %.1f\n", s.X(20), s.X(200))
	// Output:
	// [20 30 40 50 60 70 80 90 100 200]
	// 0.0 500.0
}

func ExamplePath() {
	scale := graph.DefaultScale()
	mags := []eq.Magnitude{
		{Frequency: 20, Magnitude: 0},
		{Frequency: 632, Magnitude: 6},
		{Frequency: 20000, Magnitude: -3},
	}
	points := graph.Points(mags, scale, 100, 300)
	fmt.Println(graph.Path(points, scale, 100, 300))
	// Output:
	// M -200 150 L 0 150 L 50 93.75 L 100 178.13 L 300 150
}

func ExampleGainGrid() {
	var gains, freqs []string
	for _, g := range graph.GainGrid(-12, 12, 6) {
		gains = append(gains, graph.FormatGain(g))
	}
	for _, f := range []float64{20, 500, 1000, 20000} {
		freqs = append(freqs, graph.FormatFrequency(f))
	}
	fmt.Println(strings.Join(gains, " "))
	fmt.Println(strings.Join(freqs, " "))
	// Output:
	// +12 +6 0 -6 -12
	// 20Hz 500Hz 1kHz 20kHz
}
