package eq

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) at freq (Hz).
func (c Coefficients) Response(freq, sampleRate float64) complex128 {
	w := 2 * math.Pi * freq / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.A0, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	den := 1 + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	return num / den
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c Coefficients) Phase(freq, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freq, sampleRate))
}

// ImpulseResponse returns the first n samples of the filter's impulse
// response, computed with a Direct Form II Transposed recursion.
func (c Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)
	var d0, d1 float64
	for i := range ir {
		var x float64
		if i == 0 {
			x = 1
		}
		y := c.A0*x + d0
		d0 = c.A1*x - c.B1*y + d1
		d1 = c.A2*x - c.B2*y
		ir[i] = y
	}

	return ir
}

// CascadeImpulseResponse feeds an impulse through every section in order and
// returns the first n output samples.
func CascadeImpulseResponse(sections []Coefficients, n int) []float64 {
	if n <= 0 {
		return nil
	}

	buf := make([]float64, n)
	buf[0] = 1
	for _, c := range sections {
		var d0, d1 float64
		for i, x := range buf {
			y := c.A0*x + d0
			d0 = c.A1*x - c.B1*y + d1
			d1 = c.A2*x - c.B2*y
			buf[i] = y
		}
	}

	return buf
}
