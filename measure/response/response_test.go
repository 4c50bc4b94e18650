package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eqgraph/dsp/filter/eq"
	"github.com/cwbudde/algo-eqgraph/internal/testutil"
)

const sr = 48000.0

func TestMeasure_MatchesClosedForm(t *testing.T) {
	peak, err := eq.Compute(eq.Peak, 1000, 6, 1, sr)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	shelf, err := eq.Compute(eq.HighShelf2, 6000, -3, 1, sr)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	mags, err := Measure([]eq.Coefficients{peak, shelf}, sr)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if len(mags) != DefaultFFTSize/2 {
		t.Fatalf("len = %d, want %d", len(mags), DefaultFFTSize/2)
	}

	for _, m := range mags {
		want := peak.MagnitudeAt(m.Frequency, sr) + shelf.MagnitudeAt(m.Frequency, sr)
		if math.Abs(m.Magnitude-want) > 1e-6 {
			t.Fatalf("%v Hz: measured %v dB, closed form %v dB", m.Frequency, m.Magnitude, want)
		}
	}
}

func TestMeasure_EmptyCascadeIsFlat(t *testing.T) {
	mags, err := Measure(nil, sr, WithFFTSize(64))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if len(mags) != 32 {
		t.Fatalf("len = %d, want 32", len(mags))
	}
	freqs := make([]float64, len(mags))
	for i, m := range mags {
		freqs[i] = m.Frequency
		if math.Abs(m.Magnitude) > 1e-9 {
			t.Fatalf("bin %d: %v dB, want 0", i, m.Magnitude)
		}
	}
	testutil.RequireStrictlyIncreasing(t, freqs)
	if freqs[len(freqs)-1] != sr/2 {
		t.Fatalf("last bin = %v Hz, want Nyquist", freqs[len(freqs)-1])
	}
}

func TestMeasure_InvalidConfig(t *testing.T) {
	for _, n := range []int{0, 8, 100, -64} {
		if _, err := Measure(nil, sr, WithFFTSize(n)); !errors.Is(err, ErrInvalidFFTSize) {
			t.Fatalf("size %d: err = %v, want ErrInvalidFFTSize", n, err)
		}
	}
	if _, err := Measure(nil, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("err = %v, want ErrInvalidSampleRate", err)
	}
}

func TestResample(t *testing.T) {
	measured := []eq.Magnitude{
		{Frequency: 100, Magnitude: 0},
		{Frequency: 200, Magnitude: 10},
		{Frequency: 400, Magnitude: -10},
	}
	got := Resample(measured, []float64{50, 100, 150, 300, 400, 1000})
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 5, 0, -10, -10}, 1e-12)

	empty := Resample(nil, []float64{1, 2})
	testutil.RequireSliceNearlyEqual(t, empty, []float64{eq.MagnitudeFloorDB, eq.MagnitudeFloorDB}, 0)
}
