//go:build fastmath

package eq

// composeTolDB is the allowed dB error of Compose with approximated
// conversions.
const composeTolDB = 1e-3
