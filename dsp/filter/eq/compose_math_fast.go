//go:build fastmath

package eq

import (
	"github.com/cwbudde/algo-approx"
)

const ln10Over20 = 0.11512925464970228420089957273422

// dbToLinear computes 10^(db/20) as e^(db*ln(10)/20) with a fast exp approximation.
func dbToLinear(db float64) float64 {
	return approx.FastExp(db * ln10Over20)
}

// linearToDB computes 20*log10(g) as ln(g)*20/ln(10) with a fast log approximation.
func linearToDB(g float64) float64 {
	if g <= 0 {
		return MagnitudeFloorDB
	}
	return approx.FastLog(g) / ln10Over20
}
