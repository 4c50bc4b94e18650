// Command eqgraph prints and renders equalizer frequency responses.
//
// Usage:
//
//	eqgraph [flags]
//
// Filters come from a JSON preset, from repeated -filter flags, or both.
// A filter flag has the form KIND:freq[:gain[:q]].
//
// Examples:
//
//	eqgraph -filter PEAK:1000:6:1 -filter HIGHPASS2:40::0.707
//	eqgraph -preset studio.json -svg response.svg
//	eqgraph -filter LOWSHELF2:100:4 -measure -ir shelf.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	"github.com/cwbudde/algo-eqgraph/graph"
	"github.com/cwbudde/algo-eqgraph/measure/response"
	"github.com/cwbudde/algo-eqgraph/preset"
)

type options struct {
	presetPath string
	filters    filterList
	width      float64
	height     float64
	resolution float64
	svgPath    string
	irPath     string
	irLength   int
	table      bool
	measure    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.presetPath, "preset", "", "JSON preset with scale, canvas and filters")
	flag.Var(&opts.filters, "filter", "filter as KIND:freq[:gain[:q]] (repeatable)")
	flag.Float64Var(&opts.width, "width", 0, "canvas width in pixels (default from preset)")
	flag.Float64Var(&opts.height, "height", 0, "canvas height in pixels (default from preset)")
	flag.Float64Var(&opts.resolution, "resolution", 0, "pixels per magnitude sample (default from preset)")
	flag.StringVar(&opts.svgPath, "svg", "", "write the graph as SVG to this path")
	flag.StringVar(&opts.irPath, "ir", "", "write the composite impulse response as WAV to this path")
	flag.IntVar(&opts.irLength, "ir-length", response.DefaultFFTSize, "impulse response length in samples (power of two for -measure)")
	flag.BoolVar(&opts.table, "table", true, "print magnitudes at the label frequencies")
	flag.BoolVar(&opts.measure, "measure", false, "add an FFT-measured column to the table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqgraph [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints and renders equalizer frequency responses.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nFilter kinds: %s\n", kindList())
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqgraph -filter PEAK:1000:6:1 -filter HIGHPASS2:40::0.707\n")
		fmt.Fprintf(os.Stderr, "  eqgraph -preset studio.json -svg response.svg\n")
		fmt.Fprintf(os.Stderr, "  eqgraph -filter LOWSHELF2:100:4 -measure -ir shelf.wav\n")
	}
	flag.Parse()
	defer glog.Flush()

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer) error {
	p := preset.Default()
	if opts.presetPath != "" {
		loaded, err := preset.LoadJSON(opts.presetPath)
		if err != nil {
			return err
		}
		p = loaded
		glog.V(1).Infof("loaded preset %s with %d filters", opts.presetPath, len(p.Filters))
	}
	if opts.width > 0 {
		p.Width = opts.width
	}
	if opts.height > 0 {
		p.Height = opts.height
	}
	if opts.resolution > 0 {
		p.Resolution = opts.resolution
	}
	p.Filters = append(p.Filters, opts.filters...)

	g, err := p.Graph()
	if err != nil {
		return err
	}

	sections := designSections(p.Filters, p.Scale.SampleRate)

	if opts.table {
		var measured []eq.Magnitude
		if opts.measure {
			measured, err = response.Measure(sections, p.Scale.SampleRate, response.WithFFTSize(opts.irLength))
			if err != nil {
				return err
			}
		}
		if err := printTable(stdout, g.Scale(), sections, measured); err != nil {
			return err
		}
	}

	if opts.svgPath != "" {
		if err := writeSVGFile(opts.svgPath, g, p.Filters, p.Resolution); err != nil {
			return err
		}
		glog.Infof("wrote %s", opts.svgPath)
	}

	if opts.irPath != "" {
		if opts.irLength <= 0 {
			return fmt.Errorf("ir-length must be > 0, got %d", opts.irLength)
		}
		ir := eq.CascadeImpulseResponse(sections, opts.irLength)
		if err := writeImpulseWAV(opts.irPath, ir, int(p.Scale.SampleRate)); err != nil {
			return err
		}
		glog.Infof("wrote %s (%d samples)", opts.irPath, len(ir))
	}

	return nil
}

// designSections computes coefficients for every audible filter. Filters
// that cannot be designed are logged and left out.
func designSections(filters []eq.Filter, sampleRate float64) []eq.Coefficients {
	sections := make([]eq.Coefficients, 0, len(filters))
	for i, f := range filters {
		if !f.Audible() {
			glog.V(1).Infof("filter %d (%s) is flat, skipping", i, f.Kind)
			continue
		}
		c, err := eq.ComputeFilter(f, sampleRate)
		if err != nil {
			glog.Warningf("filter %d: %v", i, err)
			continue
		}
		glog.V(2).Infof("filter %d %s %.1f Hz %+.2f dB Q %.3f: %+v", i, f.Kind, f.Freq, f.Gain, f.Q, c)
		sections = append(sections, c)
	}
	return sections
}

// printTable writes the cascade response at the label frequencies. Values
// are evaluated exactly rather than read off the sampled curve.
func printTable(w io.Writer, scale graph.Scale, sections []eq.Coefficients, measured []eq.Magnitude) error {
	var freqs []float64
	for _, f := range scale.OctaveLabels {
		if f >= scale.MinFreq && f <= scale.MaxFreq {
			freqs = append(freqs, f)
		}
	}

	var measuredDB []float64
	if measured != nil {
		measuredDB = response.Resample(measured, freqs)
	}

	tw := newTable(w)
	header := "Frequency\tComposite [dB]"
	if measured != nil {
		header += "\tMeasured [dB]"
	}
	tw.row(header)
	tw.row(strings.Repeat("-", 9) + "\t" + strings.Repeat("-", 14) + measuredRule(measured != nil))

	for i, f := range freqs {
		total := 0.0
		for _, c := range sections {
			total += c.MagnitudeAt(f, scale.SampleRate)
		}
		line := fmt.Sprintf("%s\t%+.2f", graph.FormatFrequency(f), total)
		if measured != nil {
			line += fmt.Sprintf("\t%+.2f", measuredDB[i])
		}
		tw.row(line)
	}
	return tw.flush()
}

func measuredRule(on bool) string {
	if !on {
		return ""
	}
	return "\t" + strings.Repeat("-", 13)
}

type filterList []eq.Filter

func (l *filterList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, f := range *l {
		parts[i] = formatFilter(f)
	}
	return strings.Join(parts, ",")
}

func (l *filterList) Set(value string) error {
	f, err := parseFilter(value)
	if err != nil {
		return err
	}
	*l = append(*l, f)
	return nil
}

// parseFilter parses KIND:freq[:gain[:q]]. Empty fields keep defaults.
func parseFilter(spec string) (eq.Filter, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return eq.Filter{}, fmt.Errorf("filter %q: want KIND:freq[:gain[:q]]", spec)
	}

	kind, err := eq.ParseKind(parts[0])
	if err != nil {
		return eq.Filter{}, err
	}

	f := eq.Filter{Kind: kind, Q: eq.DefaultQ}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"freq", &f.Freq},
		{"gain", &f.Gain},
		{"q", &f.Q},
	}
	for i, raw := range parts[1:] {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return eq.Filter{}, fmt.Errorf("filter %q: invalid %s: %w", spec, fields[i].name, err)
		}
		*fields[i].dst = v
	}
	return f, nil
}

func formatFilter(f eq.Filter) string {
	return fmt.Sprintf("%s:%g:%g:%g", f.Kind, f.Freq, f.Gain, f.Q)
}

func kindList() string {
	kinds := eq.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}
