package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
)

// DefaultResolution is the default number of pixels per magnitude sample.
const DefaultResolution = 2

// Graph binds a Scale to a canvas size.
type Graph struct {
	scale    Scale
	width    float64
	height   float64
	logScale LogScale
}

// Curve is the plot geometry for one response.
type Curve struct {
	Magnitudes []eq.Magnitude
	Points     []Point
	Path       string
}

// New validates scale and the canvas size and returns a Graph.
func New(scale Scale, width, height float64) (*Graph, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}

	return &Graph{
		scale:    scale,
		width:    width,
		height:   height,
		logScale: NewLogScale(scale.MinFreq, scale.MaxFreq, width),
	}, nil
}

// Scale returns the graph's scale.
func (g *Graph) Scale() Scale { return g.scale }

// Width returns the canvas width in pixels.
func (g *Graph) Width() float64 { return g.width }

// Height returns the canvas height in pixels.
func (g *Graph) Height() float64 { return g.height }

// LogScale returns the frequency axis.
func (g *Graph) LogScale() LogScale { return g.logScale }

// CenterLine returns the y coordinate of 0 dB.
func (g *Graph) CenterLine() float64 {
	return g.scale.CenterLine(g.height)
}

// Ticks returns the frequency gridlines for the configured ticks per decade.
func (g *Graph) Ticks() []float64 {
	return g.logScale.Ticks(g.scale.OctaveTicks)
}

// Steps returns the number of magnitude samples drawn at resolution pixels
// per sample. Non-positive resolutions use DefaultResolution.
func (g *Graph) Steps(resolution float64) int {
	if !(resolution > 0) {
		resolution = DefaultResolution
	}
	return max(int(g.width/resolution), 2)
}

// Magnitudes samples c across the graph's frequency range.
func (g *Graph) Magnitudes(c eq.Coefficients, resolution float64) []eq.Magnitude {
	return eq.SampleMagnitudes(c, g.Steps(resolution), g.scale.MinFreq, g.scale.MaxFreq, g.scale.SampleRate)
}

// Curve turns magnitude samples into plot geometry.
func (g *Graph) Curve(mags []eq.Magnitude) Curve {
	points := Points(mags, g.scale, g.width, g.height)
	return Curve{
		Magnitudes: mags,
		Points:     points,
		Path:       Path(points, g.scale, g.width, g.height),
	}
}

// FilterCurve computes the response curve of a single filter.
func (g *Graph) FilterCurve(f eq.Filter, resolution float64) (Curve, error) {
	c, err := eq.ComputeFilter(f, g.scale.SampleRate)
	if err != nil {
		return Curve{}, err
	}
	return g.Curve(g.Magnitudes(c, resolution)), nil
}

// CompositeCurve computes the combined response of filters. Bypassed and
// flat filters are skipped. Filters of unknown kind are skipped too and
// reported in the returned error; the curve still covers the rest.
func (g *Graph) CompositeCurve(filters []eq.Filter, resolution float64) (Curve, error) {
	var (
		seqs [][]eq.Magnitude
		errs []error
	)
	for i, f := range filters {
		if !f.Audible() {
			continue
		}
		c, err := eq.ComputeFilter(f, g.scale.SampleRate)
		if err != nil {
			errs = append(errs, fmt.Errorf("filter %d: %w", i, err))
			continue
		}
		seqs = append(seqs, g.Magnitudes(c, resolution))
	}

	return g.Curve(eq.Compose(seqs)), errors.Join(errs...)
}
