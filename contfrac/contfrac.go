// Package contfrac evaluates continued fractions
//
//	f = a_1/(b_1 + a_2/(b_2 + a_3/(b_3 + ...)))
//
// by forward recurrence on the numerator and denominator convergents.
// A typical use is the ratio y_{n+1}/y_n of the minimal solution of a
// three-term recurrence.
package contfrac

import (
	"math"

	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

const (
	// DefaultMaxIter is the default iteration cap of a Solver.
	DefaultMaxIter = 5000
	// DefaultTolerance is the default relative tolerance of a Solver.
	DefaultTolerance = 2 * utils.DblEpsilon
)

// Coefficients returns the partial numerator a_n and partial denominator b_n, n >= 1.
type Coefficients func(n int) (a, b float64)

// Solver is a continued fraction evaluator.
type Solver struct {
	MaxIter   int
	Tolerance float64
}

// NewSolver returns a Solver with the default iteration cap and tolerance.
func NewSolver() Solver {
	return Solver{MaxIter: DefaultMaxIter, Tolerance: DefaultTolerance}
}

// Evaluate evaluates the continued fraction defined by coeffs.
// It stops when the relative change between two consecutive convergents
// falls below the tolerance, and returns the last convergent, the number of
// iterations and the status. If the iteration cap is reached, the status is
// result.MaxIter and the last convergent is returned.
func (s Solver) Evaluate(coeffs Coefficients) (val float64, iter int, st result.Status) {

	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	tol := s.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	a1, b1 := coeffs(1)

	// A_{-1} = 1, B_{-1} = 0, A_0 = 0, B_0 = 1
	Anm2, Bnm2 := 1.0, 0.0
	Anm1, Bnm1 := 0.0, 1.0
	An := b1*Anm1 + a1*Anm2
	Bn := b1*Bnm1 + a1*Bnm2

	fn := An / Bn

	for iter = 2; iter <= maxIter; iter++ {

		an, bn := coeffs(iter)

		Anm2, Bnm2 = Anm1, Bnm1
		Anm1, Bnm1 = An, Bn
		An = bn*Anm1 + an*Anm2
		Bn = bn*Bnm1 + an*Bnm2

		// Rescaling all four accumulators by the same power of two
		// leaves the convergents unchanged.
		if math.Abs(An) > utils.SqrtDblMax || math.Abs(Bn) > utils.SqrtDblMax {
			An = math.Ldexp(An, -rescaleExp)
			Bn = math.Ldexp(Bn, -rescaleExp)
			Anm1 = math.Ldexp(Anm1, -rescaleExp)
			Bnm1 = math.Ldexp(Bnm1, -rescaleExp)
		}

		old := fn
		fn = An / Bn

		if math.Abs(old/fn-1) < tol {
			return fn, iter, result.Success
		}
	}

	return fn, maxIter, result.MaxIter
}

// rescaleExp is log2 of the rescaling factor, close to sqrt(MaxFloat64).
const rescaleExp = 512
