package fermidirac

import (
	"math"

	"github.com/tuneinsight/specfun/asymptotic"
	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

// fdAsymp returns F_j(x) for large x from
//
//	F_j(x) = cos(j pi) F_j(-x) + 2 sum_{n>=0} eta(2n) x^{j+1-2n} / Gamma(j+2-2n),
//
// which terminates, and is exact, for integer j.
// Each term is computed in logarithmic scale, so that neither x^{j+1} nor
// Gamma(j+2) overflow on their own.
func fdAsymp(j, x float64) result.Result {

	lnx := math.Log(x)
	lg, _ := math.Lgamma(j + 2)

	lead := (j+1)*lnx - lg
	if lead > utils.LogDblMax {
		return result.OverflowError()
	}

	e := asymptotic.Expansion{
		Lead: 0.5 * math.Exp(lead),
		Term: func(n int) float64 {
			lgn, sign := math.Lgamma(j + 2 - float64(2*n))
			return float64(sign) * eta(2*n) * math.Exp((j+1-float64(2*n))*lnx-lgn)
		},
	}

	if utils.IsInteger(j) {
		e.Terminal = int(math.Floor((j + 1) / 2))
	}

	sum, _, st := e.Sum()

	neg := fdNeg(j, -x)

	val := math.Cos(j*math.Pi)*neg.Val + 2*sum

	if math.IsInf(val, 0) {
		return result.OverflowError()
	}

	return result.Result{Val: val, Status: result.Worst(st, neg.Status)}
}
