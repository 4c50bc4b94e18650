package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eqgraph/internal/testutil"
)

func TestLogScale_Endpoints(t *testing.T) {
	s := NewLogScale(20, 20000, 1000)

	assert.InDelta(t, 0, s.X(20), 1e-9)
	assert.InDelta(t, 1000, s.X(20000), 1e-9)
	assert.InDelta(t, 1000.0/3, s.X(200), 1e-9)
	assert.InDelta(t, 2000.0/3, s.X(2000), 1e-9)
	assert.Equal(t, 1000.0, s.Width())
}

func TestLogScale_StrictlyIncreasing(t *testing.T) {
	s := NewLogScale(20, 20000, 1000)
	freqs := testutil.LogSpaced(20, 20000, 500)

	xs := make([]float64, len(freqs))
	for i, f := range freqs {
		xs[i] = s.X(f)
	}
	testutil.RequireStrictlyIncreasing(t, xs)
}

func TestLogScale_FrequencyInvertsX(t *testing.T) {
	s := NewLogScale(20, 20000, 873)
	for _, f := range []float64{20, 31.5, 440, 1000, 4567.8, 20000} {
		got := s.Frequency(s.X(f))
		assert.InDelta(t, f, got, f*1e-12, "freq %v", f)
	}
	for _, x := range []float64{0, 1, 100.5, 436.5, 873} {
		assert.InDelta(t, x, s.X(s.Frequency(x)), 1e-9, "x %v", x)
	}
}

func TestLogScale_Degenerate(t *testing.T) {
	s := NewLogScale(100, 100, 500)
	assert.Equal(t, 0.0, s.X(100))

	zero := NewLogScale(20, 20000, 0)
	assert.Equal(t, 20.0, zero.Frequency(10))
}

func TestLogScale_Ticks(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		count    int
		want     []float64
	}{
		{
			name: "audio band",
			min:  20, max: 20000, count: 10,
			want: []float64{
				20, 30, 40, 50, 60, 70, 80, 90,
				100, 200, 300, 400, 500, 600, 700, 800, 900,
				1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000,
				10000, 20000,
			},
		},
		{
			name: "four per decade",
			min:  20, max: 20000, count: 4,
			want: []float64{20, 30, 100, 200, 300, 1000, 2000, 3000, 10000, 20000},
		},
		{
			name: "unaligned range",
			min:  50, max: 5000, count: 10,
			want: []float64{
				50, 60, 70, 80, 90,
				100, 200, 300, 400, 500, 600, 700, 800, 900,
				1000, 2000, 3000, 4000, 5000,
			},
		},
		{
			name: "decade starts only",
			min:  10, max: 10000, count: 1,
			want: []float64{10, 100, 1000, 10000},
		},
		{
			name: "sub-hertz decade",
			min:  0.1, max: 1, count: 10,
			want: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		},
		{
			name: "millihertz decade",
			min:  0.01, max: 0.1, count: 4,
			want: []float64{0.01, 0.02, 0.03, 0.1},
		},
		{
			name: "count above ten",
			min:  100, max: 1000, count: 25,
			want: []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLogScale(tt.min, tt.max, 1000)
			got := s.Ticks(tt.count)
			require.Equal(t, tt.want, got)
			assert.Equal(t, got, s.Ticks(tt.count), "ticks must be deterministic")
		})
	}
}

func TestLogScale_TicksInvalidRange(t *testing.T) {
	assert.Nil(t, NewLogScale(0, 1000, 100).Ticks(10))
	assert.Nil(t, NewLogScale(math.NaN(), 1000, 100).Ticks(10))
}
