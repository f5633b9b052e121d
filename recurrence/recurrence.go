// Package recurrence implements stepping of three-term recurrences in an
// integer order, with magnitude renormalization and anchoring to
// independently known boundary values.
package recurrence

import (
	"math"

	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

// rescaleExp is log2 of the renormalization factor, close to sqrt(MaxFloat64).
const rescaleExp = 512

// Coefficients returns the coefficients of the recurrence
//
//	c0*y_{l-1} = c1*y_l + c2*y_{l+1}
//
// at order l >= 1.
type Coefficients func(l int) (c0, c1, c2 float64)

// Window holds the values of a solution at three consecutive orders.
type Window struct {
	Lm1, L, Lp1 float64
}

// Residual returns c0*Lm1 - c1*L - c2*Lp1, which vanishes up to rounding
// when the window satisfies the recurrence.
func (w Window) Residual(c0, c1, c2 float64) float64 {
	return c0*w.Lm1 - c1*w.L - c2*w.Lp1
}

// Backward returns y_target for the minimal solution of the recurrence given
// ratio = y_{target+1}/y_target, by stepping downward to order 0 and
// normalizing against the boundary values seed0 = y_0 and seed1 = y_1.
//
// The chain is anchored to whichever of the computed y_0 and y_1 is the larger
// in magnitude. Orders 0 and 1 return the seeds as is.
//
// If history is not nil, it must be of length at least target+1 and receives
// y_0, ..., y_target.
func Backward(target int, ratio float64, coeffs Coefficients, seed0, seed1 float64, history []float64) (float64, result.Status) {

	switch target {
	case 0:
		if history != nil {
			history[0] = seed0
		}
		return seed0, result.Success
	case 1:
		if history != nil {
			history[0], history[1] = seed0, seed1
		}
		return seed1, result.Success
	}

	w := Window{L: 1, Lp1: ratio}

	if history != nil {
		history[target] = w.L
	}

	var rescales int

	for l := target; l >= 1; l-- {

		c0, c1, c2 := coeffs(l)

		w.Lm1 = (c1*w.L + c2*w.Lp1) / c0

		if history != nil {
			history[l-1] = w.Lm1
		}

		if math.Abs(w.Lm1) > utils.SqrtDblMax {
			w.Lm1 = math.Ldexp(w.Lm1, -rescaleExp)
			w.L = math.Ldexp(w.L, -rescaleExp)
			w.Lp1 = math.Ldexp(w.Lp1, -rescaleExp)
			if history != nil {
				for i := l - 1; i <= target; i++ {
					history[i] = math.Ldexp(history[i], -rescaleExp)
				}
			}
			rescales++
		}

		if l > 1 {
			w = Window{L: w.Lm1, Lp1: w.L}
		}
	}

	// w now holds the computed y_0, y_1, y_2.
	var factor float64
	switch {
	case math.Abs(w.Lm1) > math.Abs(w.L):
		factor = seed0 / w.Lm1
	case w.L != 0:
		factor = seed1 / w.L
	default:
		return 0, result.Underflow
	}

	val := math.Ldexp(factor, -rescaleExp*rescales)

	if history != nil {
		for i := 2; i <= target; i++ {
			history[i] *= factor
		}
		history[0], history[1] = seed0, seed1
	}

	if val == 0 {
		return 0, result.Underflow
	}

	return val, result.Success
}

// Forward returns y_target by stepping upward from the boundary values
// seed0 = y_0 and seed1 = y_1. It is stable for dominant solutions only.
//
// If history is not nil, it must be of length at least target+1 and receives
// y_0, ..., y_target.
func Forward(target int, coeffs Coefficients, seed0, seed1 float64, history []float64) (float64, result.Status) {

	if history != nil {
		history[0] = seed0
		if target > 0 {
			history[1] = seed1
		}
	}

	switch target {
	case 0:
		return seed0, result.Success
	case 1:
		return seed1, result.Success
	}

	w := Window{Lm1: seed0, L: seed1}

	for l := 1; l < target; l++ {

		c0, c1, c2 := coeffs(l)

		w.Lp1 = (c0*w.Lm1 - c1*w.L) / c2

		if history != nil {
			history[l+1] = w.Lp1
		}

		if math.IsInf(w.Lp1, 0) {
			return w.Lp1, result.Overflow
		}

		w = Window{Lm1: w.L, L: w.Lp1}
	}

	if seed0 != 0 || seed1 != 0 {
		if math.Abs(w.L) < utils.DblMin {
			return w.L, result.Underflow
		}
	}

	return w.L, result.Success
}
