package bignum

import (
	"math/big"
)

// Interval is a struct storing information about interval
// for a polynomial approximation.
// Nodes: the number of points used for the interpolation.
// [A, B]: the domain of the interpolation.
type Interval struct {
	Nodes int
	A, B  big.Float
}

// NewInterval returns the Interval [a, b] with the given number of nodes,
// with its bounds stored at prec bits of precision.
func NewInterval(a, b float64, nodes int, prec uint) Interval {
	return Interval{
		Nodes: nodes,
		A:     *NewFloat(a, prec),
		B:     *NewFloat(b, prec),
	}
}
