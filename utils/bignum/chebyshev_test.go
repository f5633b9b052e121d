package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChebyshevApproximation(t *testing.T) {
	sigmoid := func(x *big.Float) (y *big.Float) {
		return Logistic(x)
	}

	prec := uint(96)

	t.Run("Sigmoid", func(t *testing.T) {

		interval := NewInterval(-4, 4, 48, prec)

		poly := ChebyshevApproximation(sigmoid, interval)
		require.Len(t, poly, 48)

		for _, x := range []float64{-3.9, -1.4142135623730951, 0, 0.5, 3.2} {
			xBig := NewFloat(x, prec)
			y0, _ := sigmoid(xBig).Float64()
			y1, _ := ChebyshevEval(xBig, poly, interval).Float64()
			require.InDelta(t, y0, y1, 1e-14)
		}
	})

	t.Run("Polynomial", func(t *testing.T) {
		// x^3 = 5/2 T_0(u) + 15/4 T_1(u) + 3/2 T_2(u) + 1/4 T_3(u) with u = x - 1.
		interval := NewInterval(0, 2, 8, prec)

		poly := ChebyshevApproximationFloat64(func(x float64) float64 { return x * x * x }, interval)

		want := []float64{2.5, 3.75, 1.5, 0.25}

		for i, c := range poly {
			v, _ := c.Float64()
			if i < len(want) {
				require.InDelta(t, want[i], v, 1e-14, "c%d", i)
			} else {
				require.InDelta(t, 0, v, 1e-14, "c%d", i)
			}
		}
	})

	t.Run("Exp", func(t *testing.T) {
		interval := NewInterval(-1, 1, 20, prec)
		poly := ChebyshevApproximation(Exp, interval)

		// c_k = 2 I_k(1) for k > 0, c_0 = I_0(1).
		c0, _ := poly[0].Float64()
		c1, _ := poly[1].Float64()
		require.InDelta(t, 1.2660658777520082, c0, 1e-15)
		require.InDelta(t, 2*0.5651591039924851, c1, 1e-15)

		y, _ := ChebyshevEval(NewFloat(0.3, prec), poly, interval).Float64()
		require.InDelta(t, math.Exp(0.3), y, 1e-15)
	})
}
