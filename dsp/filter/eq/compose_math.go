//go:build !fastmath

package eq

import "github.com/cwbudde/algo-eqgraph/dsp/core"

func dbToLinear(db float64) float64 {
	return core.DBToLinear(db)
}

func linearToDB(g float64) float64 {
	return core.LinearToDB(g)
}
