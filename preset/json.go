// Package preset loads equalizer graph presets from JSON.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	"github.com/cwbudde/algo-eqgraph/graph"
)

// ErrInvalidPreset is wrapped by every validation failure.
var ErrInvalidPreset = errors.New("preset: invalid preset")

// Default canvas settings used when a preset omits them.
const (
	DefaultWidth  = 1000
	DefaultHeight = 300
)

// File is the JSON schema for graph presets. Omitted fields keep defaults.
type File struct {
	Scale      *ScaleSetting   `json:"scale"`
	Width      *float64        `json:"width"`
	Height     *float64        `json:"height"`
	Resolution *float64        `json:"resolution"`
	Filters    []FilterSetting `json:"filters"`
}

// ScaleSetting is a partial graph.Scale override.
type ScaleSetting struct {
	MinFreq      *float64  `json:"min_freq"`
	MaxFreq      *float64  `json:"max_freq"`
	SampleRate   *float64  `json:"sample_rate"`
	MinGain      *float64  `json:"min_gain"`
	MaxGain      *float64  `json:"max_gain"`
	DBSteps      *float64  `json:"db_steps"`
	OctaveTicks  *int      `json:"octave_ticks"`
	OctaveLabels []float64 `json:"octave_labels"`
	MajorTicks   []float64 `json:"major_ticks"`
}

// FilterSetting is one filter entry. Q defaults to eq.DefaultQ.
type FilterSetting struct {
	Type eq.Kind  `json:"type"`
	Freq float64  `json:"freq"`
	Gain float64  `json:"gain"`
	Q    *float64 `json:"q"`
}

// Preset is a fully resolved graph setup.
type Preset struct {
	Scale      graph.Scale
	Width      float64
	Height     float64
	Resolution float64
	Filters    []eq.Filter
}

// Default returns the preset used when nothing is overridden.
func Default() *Preset {
	return &Preset{
		Scale:      graph.DefaultScale(),
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Resolution: graph.DefaultResolution,
	}
}

// LoadJSON loads a preset JSON file and applies it on top of Default.
func LoadJSON(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads a preset document from r and applies it on top of Default.
func Decode(r io.Reader) (*Preset, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	p := Default()
	if err := ApplyFile(p, &f); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyFile applies a parsed preset file onto an existing preset.
func ApplyFile(dst *Preset, f *File) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination preset", ErrInvalidPreset)
	}
	if f == nil {
		return nil
	}

	if f.Scale != nil {
		applyScale(&dst.Scale, f.Scale)
	}
	if err := dst.Scale.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	if f.Width != nil {
		if *f.Width <= 0 {
			return invalid("width must be > 0")
		}
		dst.Width = *f.Width
	}
	if f.Height != nil {
		if *f.Height <= 0 {
			return invalid("height must be > 0")
		}
		dst.Height = *f.Height
	}
	if f.Resolution != nil {
		if *f.Resolution <= 0 {
			return invalid("resolution must be > 0")
		}
		dst.Resolution = *f.Resolution
	}

	for i, fs := range f.Filters {
		if fs.Freq < 0 {
			return invalid("filters[%d].freq must be >= 0", i)
		}
		q := eq.DefaultQ
		if fs.Q != nil {
			if *fs.Q <= 0 {
				return invalid("filters[%d].q must be > 0", i)
			}
			q = *fs.Q
		}
		dst.Filters = append(dst.Filters, eq.Filter{Kind: fs.Type, Freq: fs.Freq, Gain: fs.Gain, Q: q})
	}
	return nil
}

func applyScale(dst *graph.Scale, s *ScaleSetting) {
	if s.MinFreq != nil {
		dst.MinFreq = *s.MinFreq
	}
	if s.MaxFreq != nil {
		dst.MaxFreq = *s.MaxFreq
	}
	if s.SampleRate != nil {
		dst.SampleRate = *s.SampleRate
	}
	if s.MinGain != nil {
		dst.MinGain = *s.MinGain
	}
	if s.MaxGain != nil {
		dst.MaxGain = *s.MaxGain
	}
	if s.DBSteps != nil {
		dst.DBSteps = *s.DBSteps
	}
	if s.OctaveTicks != nil {
		dst.OctaveTicks = *s.OctaveTicks
	}
	if len(s.OctaveLabels) > 0 {
		dst.OctaveLabels = s.OctaveLabels
	}
	if len(s.MajorTicks) > 0 {
		dst.MajorTicks = s.MajorTicks
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidPreset}, args...)...)
}

// Graph builds the graph described by p.
func (p *Preset) Graph() (*graph.Graph, error) {
	return graph.New(p.Scale, p.Width, p.Height)
}
