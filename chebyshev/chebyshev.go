// Package chebyshev implements fixed-coefficient Chebyshev series, their
// evaluation by Clenshaw recurrence and their offline fitting.
package chebyshev

import (
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/specfun/utils/bignum"
)

// Series is a Chebyshev series sum' c_k T_k(y) on the interval [A, B],
// with y = (2x - A - B)/(B - A). The prime indicates that c_0 is
// weighted by one half.
type Series struct {
	Coeffs []float64
	Order  int
	A, B   float64
}

// New returns the series of the given coefficients on [a, b].
// Order is set to len(coeffs)-1.
func New(coeffs []float64, a, b float64) Series {
	return Series{Coeffs: coeffs, Order: len(coeffs) - 1, A: a, B: b}
}

// Eval evaluates the series at x, which is expected to lie in [A, B].
func (s Series) Eval(x float64) float64 {

	var d, dd float64

	y := (2*x - s.A - s.B) / (s.B - s.A)
	y2 := 2 * y

	for j := s.Order; j >= 1; j-- {
		d, dd = y2*d-dd+s.Coeffs[j], d
	}

	return y*d - dd + 0.5*s.Coeffs[0]
}

// Equal returns true if the two series have the same coefficients, order and interval.
func (s Series) Equal(other Series) bool {
	return cmp.Equal(s.Coeffs[:s.Order+1], other.Coeffs[:other.Order+1]) &&
		s.A == other.A && s.B == other.B
}

// Fit computes the series of the given order interpolating f at order+1
// Chebyshev nodes of [a, b]. The fit is carried out with prec bits of precision,
// and its coefficients are rounded to float64.
func Fit(f func(x *big.Float) (y *big.Float), a, b float64, order int, prec uint) Series {

	coeffs := bignum.ChebyshevApproximation(f, bignum.NewInterval(a, b, order+1, prec))

	c := make([]float64, len(coeffs))
	for i := range coeffs {
		c[i], _ = coeffs[i].Float64()
	}

	// Series carries c_0 at half weight.
	c[0] *= 2

	return New(c, a, b)
}
