package testutil

import (
	"math"
	"testing"
)

func TestDeterministicUniformReproducible(t *testing.T) {
	a := DeterministicUniform(7, -16, 16, 100)
	b := DeterministicUniform(7, -16, 16, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -16 || a[i] >= 16 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestLogSpaced(t *testing.T) {
	f := LogSpaced(20, 20000, 4)
	want := []float64{20, 200, 2000, 20000}
	for i := range want {
		if math.Abs(f[i]-want[i]) > 1e-9*want[i] {
			t.Fatalf("f[%d] = %v, want %v", i, f[i], want[i])
		}
	}
	if got := LogSpaced(20, 20000, 1); len(got) != 1 || got[0] != 20 {
		t.Fatalf("LogSpaced(n=1) = %v", got)
	}
}
