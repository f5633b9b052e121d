package recurrence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/specfun/contfrac"
	"github.com/tuneinsight/specfun/result"
)

// besselCoeffs describes J_{l-1}(x) + J_{l+1}(x) = (2l/x) J_l(x),
// which is also satisfied by Y_l(x).
func besselCoeffs(x float64) Coefficients {
	return func(l int) (c0, c1, c2 float64) {
		return 1, 2 * float64(l) / x, -1
	}
}

// besselRatio returns J_{n+1}(x)/J_n(x).
func besselRatio(t *testing.T, n int, x float64) float64 {
	val, _, st := contfrac.NewSolver().Evaluate(func(k int) (float64, float64) {
		b := 2 * float64(n+k) / x
		if k == 1 {
			return 1, b
		}
		return -1, b
	})
	require.Equal(t, result.Success, st)
	return val
}

func TestBackward(t *testing.T) {

	t.Run("Seeds", func(t *testing.T) {
		x := 1.3
		for target, want := range []float64{math.J0(x), math.J1(x)} {
			v, st := Backward(target, 0.5, besselCoeffs(x), math.J0(x), math.J1(x), nil)
			require.Equal(t, result.Success, st)
			require.Equal(t, want, v)
		}
	})

	for _, tc := range []struct {
		name   string
		target int
		x      float64
	}{
		{"AnchorOrder0", 10, 1},
		{"AnchorOrder1", 8, 2.404825557695773}, // first zero of J_0
		{"Moderate", 5, 7.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ratio := besselRatio(t, tc.target, tc.x)
			v, st := Backward(tc.target, ratio, besselCoeffs(tc.x), math.J0(tc.x), math.J1(tc.x), nil)
			require.Equal(t, result.Success, st)
			require.InEpsilon(t, math.Jn(tc.target, tc.x), v, 1e-12)
		})
	}

	t.Run("History", func(t *testing.T) {
		x, target := 1.5, 12
		coeffs := besselCoeffs(x)
		history := make([]float64, target+1)

		v, st := Backward(target, besselRatio(t, target, x), coeffs, math.J0(x), math.J1(x), history)
		require.Equal(t, result.Success, st)
		require.Equal(t, v, history[target])
		require.Equal(t, math.J0(x), history[0])
		require.Equal(t, math.J1(x), history[1])

		for l := 1; l < target; l++ {
			require.InEpsilon(t, math.Jn(l, x), history[l], 1e-12, "l=%d", l)
			w := Window{Lm1: history[l-1], L: history[l], Lp1: history[l+1]}
			require.InDelta(t, 0, w.Residual(coeffs(l)), 1e-13*math.Abs(history[l-1]), "l=%d", l)
		}
	})

	t.Run("Rescale", func(t *testing.T) {
		// J_120(1) ~ 1e-235: the window crosses the renormalization threshold.
		x, target := 1.0, 120
		v, st := Backward(target, besselRatio(t, target, x), besselCoeffs(x), math.J0(x), math.J1(x), nil)
		require.Equal(t, result.Success, st)
		require.InEpsilon(t, math.Jn(target, x), v, 1e-10)
	})

	t.Run("Underflow", func(t *testing.T) {
		x, target := 1.0, 250
		v, st := Backward(target, besselRatio(t, target, x), besselCoeffs(x), math.J0(x), math.J1(x), nil)
		require.Equal(t, result.Underflow, st)
		require.Zero(t, v)
	})
}

func TestForward(t *testing.T) {

	t.Run("Seeds", func(t *testing.T) {
		v, st := Forward(0, besselCoeffs(1), 3, 4, nil)
		require.Equal(t, result.Success, st)
		require.Equal(t, 3.0, v)
		v, _ = Forward(1, besselCoeffs(1), 3, 4, nil)
		require.Equal(t, 4.0, v)
	})

	t.Run("BesselY", func(t *testing.T) {
		x := 1.5
		history := make([]float64, 7)
		v, st := Forward(6, besselCoeffs(x), math.Y0(x), math.Y1(x), history)
		require.Equal(t, result.Success, st)
		require.InEpsilon(t, math.Yn(6, x), v, 1e-13)
		for l := 0; l <= 6; l++ {
			require.InEpsilon(t, math.Yn(l, x), history[l], 1e-13, "l=%d", l)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		_, st := Forward(400, besselCoeffs(0.5), math.Y0(0.5), math.Y1(0.5), nil)
		require.Equal(t, result.Overflow, st)
	})
}
