package levin

import (
	"math"

	"github.com/tuneinsight/specfun/utils"
)

// Workspace is the storage of the Levin u-transform with round-off error
// estimation. It holds the derivatives of the numerator and denominator
// tables with respect to each term, which takes quadratic storage.
// A Workspace must not be used concurrently.
type Workspace struct {
	size     int
	qnum     []float64
	qden     []float64
	dqnum    []float64
	dqden    []float64
	dsum     []float64
	sumPlain float64
}

// NewWorkspace allocates a Workspace for series of up to n terms.
func NewWorkspace(n int) *Workspace {
	return &Workspace{
		size:  n,
		qnum:  make([]float64, n),
		qden:  make([]float64, n),
		dqnum: make([]float64, n*n),
		dqden: make([]float64, n*n),
		dsum:  make([]float64, n),
	}
}

// Size returns the maximum number of terms the workspace can hold.
func (w *Workspace) Size() int {
	return w.size
}

// idx returns the index of the derivative with respect to term i of entry j.
func (w *Workspace) idx(i, j int) int {
	return i*w.size + j
}

// step processes the n-th term and returns the accelerated estimate. It also
// updates dsum[i], the derivative of the estimate with respect to term i.
func (w *Workspace) step(term float64, n int) float64 {

	if n == 0 {
		w.sumPlain = term
		w.qden[0] = 1 / term
		w.qnum[0] = 1
		w.dqden[w.idx(0, 0)] = -1 / (term * term)
		w.dqnum[w.idx(0, 0)] = 0
		w.dsum[0] = 1
		return term
	}

	w.sumPlain += term

	np1 := float64(n + 1)

	w.qden[n] = 1 / (term * np1 * np1)
	w.qnum[n] = w.sumPlain * w.qden[n]

	for i := 0; i < n; i++ {
		w.dqden[w.idx(i, n)] = 0
		w.dqnum[w.idx(i, n)] = w.qden[n]
	}

	w.dqden[w.idx(n, n)] = -w.qden[n] / term
	w.dqnum[w.idx(n, n)] = w.qden[n] + w.sumPlain*w.dqden[w.idx(n, n)]

	factor := 1.0
	ratio := float64(n) / np1

	for j := n - 1; j >= 0; j-- {

		c := factor * float64(j+1) / np1
		factor *= ratio

		w.qden[j] = w.qden[j+1] - c*w.qden[j]
		w.qnum[j] = w.qnum[j+1] - c*w.qnum[j]

		for i := 0; i < n; i++ {
			w.dqden[w.idx(i, j)] = w.dqden[w.idx(i, j+1)] - c*w.dqden[w.idx(i, j)]
			w.dqnum[w.idx(i, j)] = w.dqnum[w.idx(i, j+1)] - c*w.dqnum[w.idx(i, j)]
		}

		w.dqden[w.idx(n, j)] = w.dqden[w.idx(n, j+1)]
		w.dqnum[w.idx(n, j)] = w.dqnum[w.idx(n, j+1)]
	}

	result := w.qnum[0] / w.qden[0]

	for i := 0; i <= n; i++ {
		w.dsum[i] = (w.dqnum[w.idx(i, 0)] - result*w.dqden[w.idx(i, 0)]) / w.qden[0]
	}

	return result
}

// noise returns the round-off error of the estimate after n+1 terms,
// assuming an error of one machine epsilon on each term.
func (w *Workspace) noise(terms []float64, n int) float64 {
	var variance float64
	for i := 0; i <= n; i++ {
		dn := w.dsum[i] * utils.DblEpsilon * terms[i]
		variance += dn * dn
	}
	return math.Sqrt(variance)
}

// Accel accelerates the series of the given terms. It stops once the
// round-off error dominates the truncation error, or once the truncation
// error falls below a small multiple of the machine epsilon relative to the
// estimate. The absolute error is the larger of the truncation and round-off
// errors of the returned estimate. Trailing zero terms are ignored.
func (w *Workspace) Accel(terms []float64) (Estimate, error) {

	terms = trim(terms)

	if err := checkSize(len(terms), w.Size()); err != nil {
		return Estimate{}, err
	}

	if e, ok := trivial(terms); ok {
		return e, nil
	}

	t := newTruncation()
	leastNoise := math.MaxFloat64
	var noiseN float64

	used := len(terms)

	for n, term := range terms {

		res := w.step(term, n)

		noiseN = w.noise(terms, n)

		if t.update(res) {
			leastNoise = noiseN
		}

		if t.converged {
			if noiseN > t.truncN/3 || t.truncN < 10*utils.DblEpsilon*math.Abs(t.resultN) {
				used = n + 1
				break
			}
		}
	}

	if t.converged {
		return newEstimate(t.leastResult, w.sumPlain, math.Max(t.least, leastNoise), used), nil
	}

	return newEstimate(t.resultN, w.sumPlain, math.Max(t.truncN, noiseN), used), nil
}
