// Package utils implements the floating-point constants and small generic helpers
// shared by the evaluation packages.
package utils

import (
	"math"
)

// IEEE-754 double precision constants.
const (
	// DblEpsilon is the distance between 1 and the next larger float64.
	DblEpsilon      = 2.2204460492503131e-16
	SqrtDblEpsilon  = 1.4901161193847656e-08
	Root3DblEpsilon = 6.0554544523933429e-06
	Root5DblEpsilon = 7.4009597974140505e-04
	LogDblEpsilon   = -3.6043653389117154e+01

	// DblMin is the smallest normalized positive float64.
	DblMin     = 2.2250738585072014e-308
	SqrtDblMin = 1.4916681462400413e-154
	LogDblMin  = -7.0839641853226408e+02

	DblMax     = math.MaxFloat64
	SqrtDblMax = 1.3407807929942596e+154
	LogDblMax  = 7.0978271289338397e+02
)

// IsInteger reports whether x is an integer up to a few hundred ulps.
func IsInteger(x float64) bool {
	return math.Abs(x-math.Floor(x+0.5)) < 100*DblEpsilon*math.Max(1, math.Abs(x))
}

// SafeExp returns exp(x), flagging arguments for which the result overflows
// or falls below the normalized range. The returned value is +Inf or 0 in those cases.
func SafeExp(x float64) (y float64, overflow, underflow bool) {
	switch {
	case x > LogDblMax:
		return math.Inf(1), true, false
	case x < LogDblMin:
		return 0, false, true
	default:
		return math.Exp(x), false, false
	}
}
