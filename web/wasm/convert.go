//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	"github.com/cwbudde/algo-eqgraph/graph"
)

// graphFromJS builds a Graph from {width, height, minFreq, maxFreq,
// sampleRate, minGain, maxGain, dbSteps, octaveTicks}. Missing scale
// fields keep their defaults.
func graphFromJS(v js.Value) (*graph.Graph, error) {
	if v.Type() != js.TypeObject {
		return nil, fmt.Errorf("init: config must be an object")
	}
	s := graph.DefaultScale()
	setFloat(v, "minFreq", &s.MinFreq)
	setFloat(v, "maxFreq", &s.MaxFreq)
	setFloat(v, "sampleRate", &s.SampleRate)
	setFloat(v, "minGain", &s.MinGain)
	setFloat(v, "maxGain", &s.MaxGain)
	setFloat(v, "dbSteps", &s.DBSteps)
	if t := v.Get("octaveTicks"); t.Type() == js.TypeNumber {
		s.OctaveTicks = t.Int()
	}
	return graph.New(s, v.Get("width").Float(), v.Get("height").Float())
}

func setFloat(v js.Value, key string, dst *float64) {
	if f := v.Get(key); f.Type() == js.TypeNumber {
		*dst = f.Float()
	}
}

func optionalFloat(args []js.Value, i int) float64 {
	if len(args) > i && args[i].Type() == js.TypeNumber {
		return args[i].Float()
	}
	return 0
}

// filterFromJS reads {type, freq, gain, q}. Q defaults to eq.DefaultQ.
func filterFromJS(v js.Value) (eq.Filter, error) {
	if v.Type() != js.TypeObject {
		return eq.Filter{}, fmt.Errorf("filter must be an object")
	}
	kind, err := eq.ParseKind(v.Get("type").String())
	if err != nil {
		return eq.Filter{}, err
	}
	f := eq.Filter{Kind: kind, Q: eq.DefaultQ}
	setFloat(v, "freq", &f.Freq)
	setFloat(v, "gain", &f.Gain)
	setFloat(v, "q", &f.Q)
	return f, nil
}

func filterToJS(f eq.Filter) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("type", f.Kind.String())
	out.Set("freq", f.Freq)
	out.Set("gain", f.Gain)
	out.Set("q", f.Q)
	return out
}

func coefficientsToJS(c eq.Coefficients) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("A0", c.A0)
	out.Set("A1", c.A1)
	out.Set("A2", c.A2)
	out.Set("B1", c.B1)
	out.Set("B2", c.B2)
	return out
}

func pointToJS(p graph.Point) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("x", p.X)
	out.Set("y", p.Y)
	return out
}

func floatsToJS(values []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(values))
	for i, v := range values {
		arr.SetIndex(i, v)
	}
	return arr
}

// curveToJS returns {path, frequencies, magnitudes, points, error}.
func curveToJS(c graph.Curve, err error) js.Value {
	out := js.Global().Get("Object").New()
	out.Set("path", c.Path)

	freqs := make([]float64, len(c.Magnitudes))
	for i, m := range c.Magnitudes {
		freqs[i] = m.Frequency
	}
	out.Set("frequencies", floatsToJS(freqs))
	out.Set("magnitudes", floatsToJS(eq.Values(c.Magnitudes)))

	points := js.Global().Get("Array").New(len(c.Points))
	for i, p := range c.Points {
		points.SetIndex(i, pointToJS(p))
	}
	out.Set("points", points)

	if err != nil {
		out.Set("error", err.Error())
	} else {
		out.Set("error", js.Null())
	}
	return out
}
