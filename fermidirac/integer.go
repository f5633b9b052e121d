package fermidirac

import (
	"math"

	"github.com/tuneinsight/specfun/asymptotic"
	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

// MaxNegativeOrder is the largest |j| of a negative integer order j.
const MaxNegativeOrder = 100

// taylorMaxTerms caps the Taylor series at the origin.
const taylorMaxTerms = 64

// fdNegInt returns F_j(x) for integer j <= -2, which is a rational function
// of e^{-x}: F_j(x) = a (1+a)^j sum_i q_i a^{n-i}, with a = e^{-x} and n = -(j+1).
// For x < 0 the polynomial is evaluated in a = e^x, from the other end.
func fdNegInt(j int, x float64) result.Result {

	n := -(j + 1)

	q := make([]float64, n+1)
	q[1] = 1

	for k := 2; k <= n; k++ {
		q[k] = -q[k-1]
		for i := k - 1; i >= 2; i-- {
			q[i] = float64(i)*q[i] - float64(k-(i-1))*q[i-1]
		}
	}

	// s bounds the rounding of the alternating polynomial.
	var a, f, s float64

	if x >= 0 {
		a = math.Exp(-x)
		f = q[1]
		s = math.Abs(q[1])
		for i := 2; i <= n; i++ {
			f = f*a + q[i]
			s = s*a + math.Abs(q[i])
		}
	} else {
		a = math.Exp(x)
		f = q[n]
		s = math.Abs(q[n])
		for i := n - 1; i >= 1; i-- {
			f = f*a + q[i]
			s = s*a + math.Abs(q[i])
		}
	}

	r := result.Result{Val: f * a * math.Pow(1+a, float64(j))}

	if s > asymptotic.LossFactor*math.Abs(f) {
		r.Status = result.PrecisionLoss
	}

	return r
}

// fdTaylor returns F_j(x) for integer j >= 2 and small |x|, from the series
// F_j(x) = sum_n eta(j+1-n) x^n/n!.
func fdTaylor(j int, x float64) result.Result {

	sum := eta(j + 1)
	term := 1.0

	var prevSmall bool

	for n := 1; n <= taylorMaxTerms; n++ {

		term *= x / float64(n)
		add := eta(j+1-n) * term
		sum += add

		// eta vanishes at every other negative integer, so two
		// consecutive terms are required to be negligible.
		small := math.Abs(add) < utils.DblEpsilon*math.Abs(sum)
		if small && prevSmall {
			return result.Result{Val: sum}
		}
		prevSmall = small
	}

	return result.Result{Val: sum, Status: result.MaxIter}
}
