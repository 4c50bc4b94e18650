//go:build !fastmath

package graph

// compositeTolDB is the allowed dB error of composite curves.
const compositeTolDB = 1e-9
