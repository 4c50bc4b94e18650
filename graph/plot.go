package graph

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eqgraph/dsp/core"
	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
)

// pathOverhang is how far the path extends past both plot edges.
const pathOverhang = 200

// Point is a pixel-space coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Points maps magnitude samples to pixel coordinates. Samples are spread
// evenly across width by index; y is rounded to two decimals.
func Points(mags []eq.Magnitude, scale Scale, width, height float64) []Point {
	if len(mags) == 0 {
		return nil
	}

	step := 0.0
	if len(mags) > 1 {
		step = width / float64(len(mags)-1)
	}

	points := make([]Point, len(mags))
	for i, m := range mags {
		points[i] = Point{
			X: math.Min(core.Round(step*float64(i)), width),
			Y: core.RoundTo2(GainToY(m.Magnitude, scale.MinGain, scale.MaxGain, height)),
		}
	}
	return points
}

// Path renders points as an SVG path. It starts and ends on the center line
// 200px outside the plot and clamps y to height+2.
func Path(points []Point, scale Scale, width, height float64) string {
	center := CenterLine(scale.MinGain, scale.MaxGain, height)
	floor := height + 2

	var b strings.Builder
	b.Grow(16 * (len(points) + 2))

	b.WriteString("M ")
	writeCoord(&b, -pathOverhang, center)
	for _, p := range points {
		b.WriteString(" L ")
		writeCoord(&b, p.X, math.Min(p.Y, floor))
	}
	b.WriteString(" L ")
	writeCoord(&b, width+pathOverhang, center)

	return b.String()
}

func writeCoord(b *strings.Builder, x, y float64) {
	b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(y, 'f', -1, 64))
}

// ReducePoints drops points whose y matches the previous point's at
// quarter-pixel resolution. The first point is compared against y=0 and the
// last point is always kept.
func ReducePoints(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	out := make([]Point, 0, len(points))
	prev := 0.0
	for i, p := range points[:len(points)-1] {
		if i > 0 {
			prev = points[i-1].Y
		}
		if quarter(p.Y) != quarter(prev) {
			out = append(out, p)
		}
	}
	return append(out, points[len(points)-1])
}

func quarter(y float64) float64 {
	return core.Round(y * 4)
}
