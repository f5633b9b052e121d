// Package asymptotic sums asymptotic expansions with optimal truncation.
package asymptotic

import (
	"math"

	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

const (
	// MaxTerms is the default cap on the number of terms of an expansion.
	MaxTerms = 200
	// LossFactor is the multiple of the machine epsilon above which the
	// relative magnitude of the last term signals a loss of precision.
	LossFactor = 1000
)

// Expansion is the series Lead + Term(1) + Term(2) + ...
type Expansion struct {
	Lead float64
	Term func(n int) float64

	// Terminal, if positive, is the index of the last non-zero term of a
	// series that terminates exactly. Terms are then not checked for growth.
	Terminal int

	// MaxTerms caps the number of terms; MaxTerms is used if not positive.
	MaxTerms int
}

// Sum sums the expansion. It stops before adding a term that is larger in
// magnitude than its predecessor, after the terminal index of a terminating
// expansion, or once a term is below the machine epsilon relative to the partial sum.
//
// The status is result.PrecisionLoss if the last term examined exceeds
// LossFactor times the machine epsilon relative to the sum.
func (e Expansion) Sum() (sum float64, terms int, st result.Status) {

	maxTerms := e.MaxTerms
	if maxTerms <= 0 {
		maxTerms = MaxTerms
	}

	sum = e.Lead

	add := math.MaxFloat64

	for n := 1; n <= maxTerms; n++ {

		if e.Terminal > 0 && n > e.Terminal {
			add = 0
			break
		}

		prev := add
		add = e.Term(n)

		if e.Terminal <= 0 && math.Abs(add) > math.Abs(prev) {
			break
		}

		if math.Abs(add/sum) < utils.DblEpsilon {
			break
		}

		sum += add
		terms = n
	}

	if math.Abs(add) > LossFactor*utils.DblEpsilon*math.Abs(sum) {
		st = result.PrecisionLoss
	}

	return
}
