package chebyshev

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/specfun/utils/bignum"
)

// direct evaluates sum' c_k T_k(y) with T_k(y) = cos(k acos y).
func direct(s Series, x float64) float64 {
	y := (2*x - s.A - s.B) / (s.B - s.A)
	theta := math.Acos(y)
	sum := 0.5 * s.Coeffs[0]
	for k := 1; k <= s.Order; k++ {
		sum += s.Coeffs[k] * math.Cos(float64(k)*theta)
	}
	return sum
}

func TestEval(t *testing.T) {

	s := New([]float64{1.5, -0.25, 0.125, 0.0625, -0.03125, 0.015625}, -2, 3)

	t.Run("Direct", func(t *testing.T) {
		for _, x := range []float64{-1.99, -1, -0.3, 0, 0.5, 1.7, 2.99} {
			require.InDelta(t, direct(s, x), s.Eval(x), 4e-15, "x=%v", x)
		}
	})

	t.Run("Endpoints", func(t *testing.T) {
		// T_k(1) = 1 and T_k(-1) = (-1)^k.
		var plus, minus float64 = 0.5 * s.Coeffs[0], 0.5 * s.Coeffs[0]
		for k := 1; k <= s.Order; k++ {
			plus += s.Coeffs[k]
			minus += s.Coeffs[k] * math.Pow(-1, float64(k))
		}
		require.InDelta(t, plus, s.Eval(3), 1e-15)
		require.InDelta(t, minus, s.Eval(-2), 1e-15)
	})

	t.Run("Constant", func(t *testing.T) {
		require.Equal(t, 2.0, New([]float64{4}, -1, 1).Eval(0.7))
	})

	t.Run("Order", func(t *testing.T) {
		// Coefficients beyond Order are ignored.
		truncated := Series{Coeffs: s.Coeffs, Order: 2, A: s.A, B: s.B}
		full := New(s.Coeffs[:3], s.A, s.B)
		require.Equal(t, full.Eval(0.25), truncated.Eval(0.25))
		require.True(t, full.Equal(truncated))
	})
}

func TestFit(t *testing.T) {

	t.Run("Exp", func(t *testing.T) {
		s := Fit(bignum.Exp, 0, 2, 16, 128)
		require.Equal(t, 16, s.Order)
		for _, x := range []float64{0, 0.1, 0.99, 1.5, 2} {
			require.InEpsilon(t, math.Exp(x), s.Eval(x), 4e-15, "x=%v", x)
		}
	})

	t.Run("Log1pExp", func(t *testing.T) {
		s := Fit(bignum.Log1pExp, -1, 1, 24, 128)
		for _, x := range []float64{-1, -0.5, 0, 0.25, 1} {
			require.InEpsilon(t, math.Log1p(math.Exp(x)), s.Eval(x), 4e-15, "x=%v", x)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		f := func(x *big.Float) *big.Float { return bignum.SinH(x) }
		require.True(t, Fit(f, -1, 1, 10, 96).Equal(Fit(f, -1, 1, 10, 96)))
		require.False(t, Fit(f, -1, 1, 10, 96).Equal(Fit(f, -1, 2, 10, 96)))
	})
}
