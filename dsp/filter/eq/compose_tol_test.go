//go:build !fastmath

package eq

// composeTolDB is the allowed dB error of Compose with exact conversions.
const composeTolDB = 1e-9
