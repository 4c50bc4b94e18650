// Package eq computes frequency responses of parametric equalizer filters.
//
// A [Filter] describes one band (kind, frequency, gain, Q). [Compute] turns it
// into normalized biquad [Coefficients], whose magnitude response can be
// evaluated at a single frequency with [Coefficients.MagnitudeAt] or sampled on
// a logarithmic grid with [SampleMagnitudes]. Several sampled responses are
// combined into one composite curve with [Compose].
//
// Coefficients follow the graph convention: A0..A2 are the feed-forward
// (numerator) terms and B1, B2 the feedback (denominator) terms, with the
// leading denominator term normalized to 1.
//
// All functions are pure and safe for concurrent use.
package eq
