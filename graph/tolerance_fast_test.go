//go:build fastmath

package graph

// compositeTolDB is the allowed dB error of composite curves built with
// approximated conversions.
const compositeTolDB = 1e-3
