// Package fermidirac implements the complete Fermi-Dirac integrals
//
//	F_j(x) = 1/Gamma(j+1) int_0^inf t^j/(exp(t-x)+1) dt
//
// of orders -1, 0, 1/2, 1, 3/2 and of any integer order, and the incomplete
// integral of order 0.
//
// Every function is exposed in three forms: the checked form (suffix E)
// returns a result.Result, the strict form (suffix Strict) returns an error
// on failure, and the plain form returns the value, reporting failures
// through the warning handler of the result package.
package fermidirac

import (
	"github.com/tuneinsight/specfun/result"
)

// FM1E returns F_{-1}(x) = 1/(1+exp(-x)).
func FM1E(x float64) result.Result {
	return dispatch(fm1Regimes, x)
}

// FM1 is the best-effort form of FM1E.
func FM1(x float64) float64 {
	return result.BestEffort("fermidirac.FM1", FM1E(x))
}

// FM1Strict is the strict form of FM1E.
func FM1Strict(x float64) (float64, error) {
	return result.Strict("fermidirac.FM1", FM1E(x))
}

// F0E returns F_0(x) = ln(1+exp(x)).
func F0E(x float64) result.Result {
	return dispatch(f0Regimes, x)
}

// F0 is the best-effort form of F0E.
func F0(x float64) float64 {
	return result.BestEffort("fermidirac.F0", F0E(x))
}

// F0Strict is the strict form of F0E.
func F0Strict(x float64) (float64, error) {
	return result.Strict("fermidirac.F0", F0E(x))
}

// F1E returns F_1(x).
func F1E(x float64) result.Result {
	return dispatch(f1Regimes, x)
}

// F1 is the best-effort form of F1E.
func F1(x float64) float64 {
	return result.BestEffort("fermidirac.F1", F1E(x))
}

// F1Strict is the strict form of F1E.
func F1Strict(x float64) (float64, error) {
	return result.Strict("fermidirac.F1", F1E(x))
}

// FHalfE returns F_{1/2}(x).
func FHalfE(x float64) result.Result {
	return dispatch(fHalfRegimes, x)
}

// FHalf is the best-effort form of FHalfE.
func FHalf(x float64) float64 {
	return result.BestEffort("fermidirac.FHalf", FHalfE(x))
}

// FHalfStrict is the strict form of FHalfE.
func FHalfStrict(x float64) (float64, error) {
	return result.Strict("fermidirac.FHalf", FHalfE(x))
}

// F3HalfE returns F_{3/2}(x).
func F3HalfE(x float64) result.Result {
	return dispatch(f3HalfRegimes, x)
}

// F3Half is the best-effort form of F3HalfE.
func F3Half(x float64) float64 {
	return result.BestEffort("fermidirac.F3Half", F3HalfE(x))
}

// F3HalfStrict is the strict form of F3HalfE.
func F3HalfStrict(x float64) (float64, error) {
	return result.Strict("fermidirac.F3Half", F3HalfE(x))
}

// FIntE returns F_j(x) for integer j.
// Orders below -MaxNegativeOrder are a domain error.
func FIntE(j int, x float64) result.Result {
	switch {
	case j == -1:
		return FM1E(x)
	case j == 0:
		return F0E(x)
	case j == 1:
		return F1E(x)
	case j < -MaxNegativeOrder:
		return result.DomainError()
	case j < 0:
		return dispatchInt(negIntRegimes, j, x)
	default:
		return dispatchInt(intRegimes, j, x)
	}
}

// FInt is the best-effort form of FIntE.
func FInt(j int, x float64) float64 {
	return result.BestEffort("fermidirac.FInt", FIntE(j, x))
}

// FIntStrict is the strict form of FIntE.
func FIntStrict(j int, x float64) (float64, error) {
	return result.Strict("fermidirac.FInt", FIntE(j, x))
}

// FInc0E returns the incomplete integral
//
//	F_0(x, b) = int_b^inf 1/(exp(t-x)+1) dt = ln(1+exp(x-b)),
//
// for b >= 0.
func FInc0E(x, b float64) result.Result {
	if b < 0 {
		return result.DomainError()
	}
	return F0E(x - b)
}

// FInc0 is the best-effort form of FInc0E.
func FInc0(x, b float64) float64 {
	return result.BestEffort("fermidirac.FInc0", FInc0E(x, b))
}

// FInc0Strict is the strict form of FInc0E.
func FInc0Strict(x, b float64) (float64, error) {
	return result.Strict("fermidirac.FInc0", FInc0E(x, b))
}
