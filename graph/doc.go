// Package graph maps equalizer responses onto a frequency-response plot.
//
// The horizontal axis is logarithmic in frequency and the vertical axis is
// linear in dB with 0 dB on a center line. [LogScale] and the gain helpers
// convert between pixels and physical units; [Points], [Path] and
// [ReducePoints] turn sampled magnitudes into plot geometry.
//
// [Graph] binds a [Scale] to a canvas size and offers the higher-level
// operations a renderer needs: per-filter and composite curves, control
// point placement, and pointer interaction (drag, wheel and readout).
//
// All functions are pure; a Graph is immutable after [New] and safe for
// concurrent use.
package graph
