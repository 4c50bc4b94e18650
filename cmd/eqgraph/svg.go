package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/golang/glog"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	"github.com/cwbudde/algo-eqgraph/graph"
)

const (
	svgBackground = "#1e1f24"
	svgGrid       = "#3a3c44"
	svgLabel      = "#8d909a"
	svgComposite  = "#f5f5f5"
	svgPointR     = 6
)

var svgPalette = []string{"#e5534b", "#57ab5a", "#539bf5", "#c69026", "#b083f0", "#39c5cf", "#e275ad"}

type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func writeSVGFile(path string, g *graph.Graph, filters []eq.Filter, resolution float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := renderSVG(bw, g, filters, resolution); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// renderSVG draws the grid, one curve per audible filter, the composite
// curve and the control points.
func renderSVG(w io.Writer, g *graph.Graph, filters []eq.Filter, resolution float64) error {
	s := &svgWriter{w: w}
	scale := g.Scale()
	width, height := g.Width(), g.Height()
	logScale := g.LogScale()

	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	s.printf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", svgBackground)

	s.printf(`<g stroke="%s">`+"\n", svgGrid)
	for _, tick := range g.Ticks() {
		strokeWidth := 0.5
		if slices.Contains(scale.MajorTicks, tick) {
			strokeWidth = 1
		}
		x := logScale.X(tick)
		s.printf(`<line x1="%.2f" x2="%.2f" y1="0" y2="%g" stroke-width="%g"/>`+"\n", x, x, height, strokeWidth)
	}
	grid := scale.GainGrid()
	for i, gain := range grid {
		if i == 0 {
			continue
		}
		y := scale.GainToY(gain, height)
		s.printf(`<line x1="0" x2="%g" y1="%.2f" y2="%.2f" stroke-width="0.5"/>`+"\n", width, y, y)
	}
	center := g.CenterLine()
	s.printf(`<line x1="0" x2="%g" y1="%.2f" y2="%.2f" stroke-width="1.5"/>`+"\n", width, center, center)
	s.printf("</g>\n")

	s.printf(`<g fill="%s" font-size="10" font-family="sans-serif">`+"\n", svgLabel)
	var labels []float64
	for _, f := range scale.OctaveLabels {
		if f >= scale.MinFreq && f <= scale.MaxFreq {
			labels = append(labels, f)
		}
	}
	for i, f := range labels {
		x, anchor := logScale.X(f)+5, "start"
		if i == len(labels)-1 {
			x, anchor = logScale.X(f)-5, "end"
		}
		s.printf(`<text x="%.2f" y="%g" text-anchor="%s">%s</text>`+"\n", x, height-5, anchor, graph.FormatFrequency(f))
	}
	for i, gain := range grid {
		if i == 0 || i == len(grid)-1 {
			continue
		}
		s.printf(`<text x="3" y="%.2f" transform="translate(0 -3)">%s</text>`+"\n",
			scale.GainToY(gain, height), graph.FormatGain(gain))
	}
	s.printf("</g>\n")

	s.printf(`<g fill="none" stroke-width="1.5">` + "\n")
	for i, f := range filters {
		if !f.Audible() {
			continue
		}
		curve, err := g.FilterCurve(f, resolution)
		if err != nil {
			continue
		}
		path := graph.Path(graph.ReducePoints(curve.Points), scale, width, height)
		s.printf(`<path d="%s" stroke="%s" stroke-opacity="0.6"/>`+"\n", path, filterColor(i))
	}
	// Filters that fail to design are left out of the composite; the curve
	// of the remaining ones is still drawn.
	composite, err := g.CompositeCurve(filters, resolution)
	if err != nil {
		glog.V(1).Infof("composite: %v", err)
	}
	s.printf(`<path d="%s" stroke="%s" stroke-width="2"/>`+"\n",
		graph.Path(graph.ReducePoints(composite.Points), scale, width, height), svgComposite)
	s.printf("</g>\n")

	for i, f := range filters {
		if f.Kind == eq.Bypass || !f.Kind.Valid() {
			continue
		}
		p := g.Marker(f)
		s.printf(`<circle cx="%.2f" cy="%.2f" r="%d" fill="%s" stroke="%s"/>`+"\n",
			p.X, p.Y, svgPointR, filterColor(i), svgBackground)
		s.printf(`<text x="%.2f" y="%.2f" fill="%s" font-size="8" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
			p.X, p.Y, svgBackground, i+1)
	}

	s.printf("</svg>\n")
	return s.err
}

func filterColor(i int) string {
	return svgPalette[i%len(svgPalette)]
}
