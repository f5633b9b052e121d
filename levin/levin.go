// Package levin implements the Levin u-transform for the acceleration of
// slowly convergent or divergent-but-summable series.
//
// Two workspaces are provided. A TruncWorkspace holds linear storage and
// estimates the truncation error only; it can also be driven one term at a
// time. A Workspace additionally tracks the derivatives of the estimate with
// respect to each term, in quadratic storage, to bound the round-off error.
package levin

import (
	"errors"
	"fmt"
	"math"
)

// ErrWorkspaceTooSmall is returned when a workspace cannot hold all the terms of a series.
var ErrWorkspaceTooSmall = errors.New("workspace too small")

// small is the relative truncation error below which an estimate is
// considered to be in the convergence region.
const small = 0.01

// Estimate is the outcome of the acceleration of a series.
type Estimate struct {
	// Sum is the accelerated estimate of the series.
	Sum float64
	// SumPlain is the plain sum of the terms used.
	SumPlain float64
	// AbsErr is the estimated absolute error of Sum.
	AbsErr float64
	// Precision is the estimated relative error of Sum.
	Precision float64
	// TermsUsed is the number of terms used.
	TermsUsed int
}

// DigitsCorrect returns the estimated number of correct decimal digits of Sum.
func (e Estimate) DigitsCorrect() float64 {
	return -math.Log10(e.Precision)
}

func newEstimate(sum, sumPlain, abserr float64, terms int) Estimate {
	e := Estimate{Sum: sum, SumPlain: sumPlain, AbsErr: abserr, TermsUsed: terms}
	if sum != 0 {
		e.Precision = abserr / math.Abs(sum)
	} else {
		e.Precision = abserr
	}
	return e
}

// trim drops the trailing zero terms of a series.
func trim(terms []float64) []float64 {
	n := len(terms)
	for n > 0 && terms[n-1] == 0 {
		n--
	}
	return terms[:n]
}

// trivial handles series of zero or one term.
func trivial(terms []float64) (Estimate, bool) {
	switch len(terms) {
	case 0:
		return Estimate{}, true
	case 1:
		return Estimate{Sum: terms[0], SumPlain: terms[0], TermsUsed: 1}, true
	}
	return Estimate{}, false
}

// truncation tracks the convergence of successive estimates.
type truncation struct {
	resultN, resultNm1 float64
	actualN, actualNm1 float64
	truncN, truncNm1   float64

	better, before, converged bool

	least       float64
	leastResult float64
}

func newTruncation() *truncation {
	return &truncation{least: math.MaxFloat64}
}

// update records a new estimate and returns true if it improves on the
// smallest truncation error seen in the convergence region.
func (t *truncation) update(result float64) (improved bool) {

	t.resultNm1, t.resultN = t.resultN, result

	t.actualNm1, t.actualN = t.actualN, math.Abs(t.resultN-t.resultNm1)

	// The average of two consecutive differences is a more reliable
	// estimate of the truncation error.
	t.truncNm1, t.truncN = t.truncN, 0.5*(t.actualN+t.actualNm1)

	t.better = t.truncN < t.truncNm1 || t.truncN < small*math.Abs(t.resultN)
	t.converged = t.converged || (t.better && t.before)
	t.before = t.better

	if t.converged && t.truncN < t.least {
		t.least = t.truncN
		t.leastResult = t.resultN
		return true
	}

	return false
}

func checkSize(n, size int) error {
	if n > size {
		return fmt.Errorf("%w: %d terms for a workspace of size %d", ErrWorkspaceTooSmall, n, size)
	}
	return nil
}
