package eq

import (
	"math"
	"testing"
)

func TestCompose_EmptyInputs(t *testing.T) {
	if got := Compose(nil); len(got) != 0 {
		t.Fatalf("Compose(nil) = %v, want empty", got)
	}
	if got := Compose([][]Magnitude{}); len(got) != 0 {
		t.Fatalf("Compose([]) = %v, want empty", got)
	}
	if got := Compose([][]Magnitude{{}}); len(got) != 0 {
		t.Fatalf("Compose([[]]) = %v, want empty", got)
	}
}

func TestCompose_SingleSequenceIsIdentity(t *testing.T) {
	c := mustCompute(t, Peak, 1000, 6, 1)
	mags := SampleMagnitudes(c, 200, 20, 20000, sr)

	got := Compose([][]Magnitude{mags})
	if len(got) != len(mags) {
		t.Fatalf("len = %d, want %d", len(got), len(mags))
	}
	for i := range mags {
		if got[i].Frequency != mags[i].Frequency {
			t.Fatalf("index %d: frequency %v, want %v", i, got[i].Frequency, mags[i].Frequency)
		}
		if !almostEqual(got[i].Magnitude, mags[i].Magnitude, composeTolDB) {
			t.Fatalf("index %d: magnitude %v, want %v", i, got[i].Magnitude, mags[i].Magnitude)
		}
	}
}

func TestCompose_CascadeAddsDecibels(t *testing.T) {
	peak := mustCompute(t, Peak, 1000, 6, 1)
	shelf := mustCompute(t, LowShelf2, 200, -4, 1)
	a := SampleMagnitudes(peak, 64, 20, 20000, sr)
	b := SampleMagnitudes(shelf, 64, 20, 20000, sr)

	got := Compose([][]Magnitude{a, b})
	for i := range got {
		want := a[i].Magnitude + b[i].Magnitude
		if !almostEqual(got[i].Magnitude, want, composeTolDB) {
			t.Fatalf("index %d: %v dB, want %v dB", i, got[i].Magnitude, want)
		}
	}
}

func TestCompose_ZeroDecibelIsUnity(t *testing.T) {
	grid := []Magnitude{{Frequency: 100, Magnitude: 3}, {Frequency: 1000, Magnitude: -2}}
	flat := []Magnitude{{Frequency: 100, Magnitude: 0}, {Frequency: 1000, Magnitude: 0}}

	got := Compose([][]Magnitude{grid, flat})
	for i := range grid {
		if !almostEqual(got[i].Magnitude, grid[i].Magnitude, composeTolDB) {
			t.Fatalf("index %d: %v, want %v", i, got[i].Magnitude, grid[i].Magnitude)
		}
	}
}

func TestCompose_MissingAndNaNSamplesAreSkipped(t *testing.T) {
	grid := []Magnitude{{Frequency: 100, Magnitude: 3}, {Frequency: 1000, Magnitude: 6}, {Frequency: 10000, Magnitude: 1}}
	short := []Magnitude{{Frequency: 100, Magnitude: 2}}
	withNaN := []Magnitude{{Frequency: 100, Magnitude: math.NaN()}, {Frequency: 1000, Magnitude: -6}, {Frequency: 10000, Magnitude: 1}}

	got := Compose([][]Magnitude{grid, short, withNaN})
	want := []float64{5, 0, 2}
	for i := range want {
		if !almostEqual(got[i].Magnitude, want[i], composeTolDB) {
			t.Fatalf("index %d: %v dB, want %v dB", i, got[i].Magnitude, want[i])
		}
		if got[i].Frequency != grid[i].Frequency {
			t.Fatalf("index %d: frequency %v, want %v", i, got[i].Frequency, grid[i].Frequency)
		}
	}
}

func TestCompose_FloorsUnderflow(t *testing.T) {
	deep := []Magnitude{{Frequency: 1000, Magnitude: MagnitudeFloorDB}}
	seqs := make([][]Magnitude, 40)
	for i := range seqs {
		seqs[i] = deep
	}

	got := Compose(seqs)
	if got[0].Magnitude != MagnitudeFloorDB {
		t.Fatalf("composite = %v, want %v", got[0].Magnitude, MagnitudeFloorDB)
	}
}

func TestCompose_FloorsDeepCascade(t *testing.T) {
	deep := []Magnitude{{Frequency: 1000, Magnitude: -150}, {Frequency: 2000, Magnitude: -90}}

	got := Compose([][]Magnitude{deep, deep})
	if got[0].Magnitude != MagnitudeFloorDB {
		t.Fatalf("-150 dB twice = %v, want %v", got[0].Magnitude, MagnitudeFloorDB)
	}
	if !almostEqual(got[1].Magnitude, -180, composeTolDB) {
		t.Fatalf("-90 dB twice = %v, want -180", got[1].Magnitude)
	}
}
