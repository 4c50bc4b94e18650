// Package response measures filter magnitude responses numerically.
//
// [Measure] feeds an impulse through a cascade of biquad sections and takes
// the FFT of the truncated impulse response. The result is an independent
// check of the closed-form curves produced by dsp/filter/eq and can be drawn
// as an analyzer-style overlay on the same graph.
package response
