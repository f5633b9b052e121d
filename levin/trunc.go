package levin

import (
	"math"

	"github.com/tuneinsight/specfun/utils"
)

// TruncWorkspace is the linear storage of the truncating Levin u-transform.
// A TruncWorkspace must not be used concurrently.
type TruncWorkspace struct {
	qnum     []float64
	qden     []float64
	sumPlain float64
}

// NewTruncWorkspace allocates a TruncWorkspace for series of up to n terms.
func NewTruncWorkspace(n int) *TruncWorkspace {
	return &TruncWorkspace{
		qnum: make([]float64, n),
		qden: make([]float64, n),
	}
}

// Size returns the maximum number of terms the workspace can hold.
func (w *TruncWorkspace) Size() int {
	return len(w.qnum)
}

// SumPlain returns the plain sum of the terms processed so far.
func (w *TruncWorkspace) SumPlain() float64 {
	return w.sumPlain
}

// Step processes the n-th term of a series, n = 0, 1, ..., and returns the
// accelerated estimate of the sum of the terms 0 to n. Terms must be processed
// in order, starting from n = 0, and must be non-zero. Step panics if n is
// not smaller than the size of the workspace.
func (w *TruncWorkspace) Step(term float64, n int) float64 {

	if n == 0 {
		w.sumPlain = 0
	}

	w.sumPlain += term

	np1 := float64(n + 1)

	w.qden[n] = 1 / (term * np1 * np1)
	w.qnum[n] = w.sumPlain * w.qden[n]

	factor := 1.0
	ratio := float64(n) / np1

	for j := n - 1; j >= 0; j-- {
		c := factor * float64(j+1) / np1
		factor *= ratio
		w.qden[j] = w.qden[j+1] - c*w.qden[j]
		w.qnum[j] = w.qnum[j+1] - c*w.qnum[j]
	}

	return w.qnum[0] / w.qden[0]
}

// Accel accelerates the series of the given terms. It stops as soon as the
// estimated truncation error falls below a small multiple of the machine
// epsilon relative to the estimate, and returns the estimate with the smallest
// truncation error seen in the convergence region. Trailing zero terms are ignored.
func (w *TruncWorkspace) Accel(terms []float64) (Estimate, error) {

	terms = trim(terms)

	if err := checkSize(len(terms), w.Size()); err != nil {
		return Estimate{}, err
	}

	if e, ok := trivial(terms); ok {
		return e, nil
	}

	t := newTruncation()

	used := len(terms)

	for n, term := range terms {

		t.update(w.Step(term, n))

		if t.converged && math.Abs(t.truncN/t.resultN) < 10*utils.DblEpsilon {
			used = n + 1
			break
		}
	}

	if t.converged {
		return newEstimate(t.leastResult, w.sumPlain, t.least, used), nil
	}

	return newEstimate(t.resultN, w.sumPlain, t.truncN, used), nil
}
