package bignum

import (
	"math/big"
)

// ChebyshevEval evaluates y = sum Ti(x) * poly[i], where T0(x) = 1, T1(x) = (2x-a-b)/(b-a) and T{i+j}(x) = 2TiTj(x)- T|i-j|(x).
func ChebyshevEval(x *big.Float, poly []*big.Float, inter Interval) (y *big.Float) {

	T := make([]*big.Float, len(poly))
	for i := range T {
		T[i] = new(big.Float).SetPrec(x.Prec())
	}

	chebyshevBasisInPlace(len(poly), x, inter, T)

	tmp := new(big.Float)
	y = new(big.Float).SetPrec(x.Prec())
	for i := range poly {
		y.Add(y, tmp.Mul(T[i], poly[i]))
	}

	return
}
