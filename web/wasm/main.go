//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	"github.com/cwbudde/algo-eqgraph/graph"
)

var (
	current *graph.Graph
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		if len(args) < 1 {
			return "init: missing config"
		}
		g, err := graphFromJS(args[0])
		if err != nil {
			return err.Error()
		}
		current = g
		return js.Null()
	}))

	api.Set("coefficients", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		f, err := filterFromJS(args[0])
		if err != nil {
			return err.Error()
		}
		sampleRate := eq.DefaultSampleRate
		if current != nil {
			sampleRate = current.Scale().SampleRate
		}
		c, err := eq.ComputeFilter(f, sampleRate)
		if err != nil {
			return err.Error()
		}
		return coefficientsToJS(c)
	}))

	api.Set("magnitudes", export(func(args []js.Value) any {
		if current == nil || len(args) < 1 {
			return js.Null()
		}
		f, err := filterFromJS(args[0])
		if err != nil {
			return err.Error()
		}
		curve, err := current.FilterCurve(f, optionalFloat(args, 1))
		if err != nil {
			return err.Error()
		}
		return curveToJS(curve, nil)
	}))

	api.Set("composite", export(func(args []js.Value) any {
		if current == nil || len(args) < 1 {
			return js.Null()
		}
		input := args[0]
		filters := make([]eq.Filter, 0, input.Length())
		for i := 0; i < input.Length(); i++ {
			f, err := filterFromJS(input.Index(i))
			if err != nil {
				return err.Error()
			}
			filters = append(filters, f)
		}
		curve, err := current.CompositeCurve(filters, optionalFloat(args, 1))
		return curveToJS(curve, err)
	}))

	api.Set("path", export(func(args []js.Value) any {
		if current == nil || len(args) < 1 {
			return ""
		}
		input := args[0]
		mags := make([]eq.Magnitude, input.Length())
		for i := range mags {
			item := input.Index(i)
			mags[i] = eq.Magnitude{
				Frequency: item.Get("frequency").Float(),
				Magnitude: item.Get("magnitude").Float(),
			}
		}
		return current.Curve(mags).Path
	}))

	api.Set("ticks", export(func(args []js.Value) any {
		if current == nil {
			return js.Global().Get("Array").New(0)
		}
		return floatsToJS(current.Ticks())
	}))

	api.Set("marker", export(func(args []js.Value) any {
		if current == nil || len(args) < 1 {
			return js.Null()
		}
		f, err := filterFromJS(args[0])
		if err != nil {
			return err.Error()
		}
		return pointToJS(current.Marker(f))
	}))

	api.Set("drag", export(func(args []js.Value) any {
		if current == nil || len(args) < 3 {
			return js.Null()
		}
		f, err := filterFromJS(args[0])
		if err != nil {
			return err.Error()
		}
		axes := graph.AxisBoth
		if len(args) > 3 && args[3].Type() == js.TypeNumber {
			axes = graph.Axes(args[3].Int())
		}
		return filterToJS(current.Drag(f, args[1].Float(), args[2].Float(), axes))
	}))

	api.Set("wheelQ", export(func(args []js.Value) any {
		if current == nil || len(args) < 2 {
			return js.Null()
		}
		f, err := filterFromJS(args[0])
		if err != nil {
			return err.Error()
		}
		return filterToJS(current.WheelQ(f, args[1].Float()))
	}))

	api.Set("readout", export(func(args []js.Value) any {
		if current == nil || len(args) < 2 {
			return js.Null()
		}
		precision := 1
		if len(args) > 2 && args[2].Type() == js.TypeNumber {
			precision = args[2].Int()
		}
		freq, gain := current.Readout(args[0].Float(), args[1].Float(), precision)
		out := js.Global().Get("Object").New()
		out.Set("freq", freq)
		out.Set("gain", gain)
		return out
	}))

	js.Global().Set("EQGraph", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
