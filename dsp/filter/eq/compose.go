package eq

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eqgraph/dsp/core"
)

// Compose combines the sampled responses of several filters into the response
// of the whole cascade.
//
// All sequences are expected to share the frequency grid of the first one.
// Each dB value is converted to linear gain, the gains are multiplied across
// filters and the product is converted back to dB, which is equivalent to
// adding the dB values. A sample missing from a shorter sequence, or a NaN
// sample, contributes unity gain. An empty input yields an empty result.
func Compose(seqs [][]Magnitude) []Magnitude {
	if len(seqs) == 0 || len(seqs[0]) == 0 {
		return nil
	}

	grid := seqs[0]
	n := len(grid)

	acc := make([]float64, n)
	for i := range acc {
		acc[i] = 1
	}

	lin := make([]float64, n)
	for _, seq := range seqs {
		for i := range lin {
			lin[i] = 1
			if i >= len(seq) {
				continue
			}
			if m := seq[i].Magnitude; !math.IsNaN(m) {
				lin[i] = dbToLinear(m)
			}
		}
		vecmath.MulBlockInPlace(acc, lin)
	}

	out := make([]Magnitude, n)
	for i, g := range acc {
		db := linearToDB(g)
		switch {
		case db > MagnitudeCeilDB:
			db = MagnitudeCeilDB
		case !core.IsFinite(db) || db < MagnitudeFloorDB:
			db = MagnitudeFloorDB
		}
		out[i] = Magnitude{Frequency: grid[i].Frequency, Magnitude: db}
	}

	return out
}
