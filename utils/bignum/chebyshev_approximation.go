package bignum

import (
	"math/big"
)

// ChebyshevApproximation computes the Chebyshev interpolant of f on [A, B] at
// interval.Nodes Chebyshev nodes and returns its coefficients c_0, ..., c_{Nodes-1},
// such that f(x) ~ sum c_i T_i((2x-A-B)/(B-A)).
//
// The reference precision is taken from the values stored in the Interval struct.
func ChebyshevApproximation(f func(x *big.Float) (y *big.Float), interval Interval) (coeffs []*big.Float) {

	nodes := chebyshevNodes(interval.Nodes, interval)

	fi := make([]*big.Float, len(nodes))

	for i := range nodes {
		fi[i] = f(nodes[i])
	}

	return chebyCoeffs(nodes, fi, interval)
}

// ChebyshevApproximationFloat64 is a variant of ChebyshevApproximation for
// functions of float64, whose values are lifted to the precision of the interval.
func ChebyshevApproximationFloat64(f func(x float64) (y float64), interval Interval) (coeffs []*big.Float) {
	prec := interval.A.Prec()
	return ChebyshevApproximation(func(x *big.Float) (y *big.Float) {
		xf64, _ := x.Float64()
		return NewFloat(f(xf64), prec)
	}, interval)
}

func chebyshevNodes(n int, interval Interval) (nodes []*big.Float) {

	prec := interval.A.Prec()

	nodes = make([]*big.Float, n)

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).Add(&interval.A, &interval.B)
	x.Mul(x, half)
	y := new(big.Float).Sub(&interval.B, &interval.A)
	y.Mul(y, half)

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetFloat64(float64(k) - 0.5)
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}

func chebyCoeffs(nodes []*big.Float, fi []*big.Float, interval Interval) (coeffs []*big.Float) {

	prec := interval.A.Prec()

	n := len(nodes)

	coeffs = make([]*big.Float, n)
	for i := range coeffs {
		coeffs[i] = new(big.Float).SetPrec(prec)
	}

	T := make([]*big.Float, n)
	for i := range T {
		T[i] = new(big.Float).SetPrec(prec)
	}

	tmp := new(big.Float).SetPrec(prec)

	for i := 0; i < n; i++ {

		chebyshevBasisInPlace(n, nodes[i], interval, T)

		for j := 0; j < n; j++ {
			tmp.Mul(fi[i], T[j])
			coeffs[j].Add(coeffs[j], tmp)
		}
	}

	N := new(big.Float).SetInt64(int64(n))

	coeffs[0].Quo(coeffs[0], N)

	NHalf := new(big.Float).Quo(N, NewFloat(2, prec))

	for i := 1; i < n; i++ {
		coeffs[i].Quo(coeffs[i], NHalf)
	}

	return
}

// chebyshevBasisInPlace writes T_0(u), ..., T_{deg-1}(u) in poly, with u = (2x-A-B)/(B-A).
func chebyshevBasisInPlace(deg int, x *big.Float, inter Interval, poly []*big.Float) {

	precision := x.Prec()

	two := NewFloat(2, precision)

	var tmp, u = new(big.Float), new(big.Float)
	var T, Tprev, Tnext = new(big.Float), new(big.Float), new(big.Float)

	// u = (2*x - (a+b))/(b-a)
	u.Set(x)
	u.Mul(u, two)
	u.Sub(u, &inter.A)
	u.Sub(u, &inter.B)
	tmp.Set(&inter.B)
	tmp.Sub(tmp, &inter.A)
	u.Quo(u, tmp)

	Tprev.SetPrec(precision)
	Tprev.SetFloat64(1)
	T.Set(u)

	for i := 0; i < deg; i++ {
		poly[i].Set(Tprev)
		Tnext.Mul(two, u)
		Tnext.Mul(Tnext, T)
		Tnext.Sub(Tnext, Tprev)
		Tprev.Set(T)
		T.Set(Tnext)
	}
}
