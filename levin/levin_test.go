package levin

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTerms = 50

type series struct {
	name  string
	terms []float64
	want  float64
	rel   float64
}

func testSeries() []series {

	zeta2 := make([]float64, nTerms)
	for n := range zeta2 {
		np1 := float64(n + 1)
		zeta2[n] = 1 / (np1 * np1)
	}

	exp := func(x float64) []float64 {
		t := make([]float64, nTerms)
		t[0] = 1
		for n := 1; n < nTerms; n++ {
			t[n] = t[n-1] * (x / float64(n))
		}
		return t
	}

	log1m := func(x float64) []float64 {
		t := make([]float64, nTerms)
		t[0] = x
		for n := 1; n < nTerms; n++ {
			t[n] = t[n-1] * (x * float64(n)) / (float64(n) + 1)
		}
		return t
	}

	asymp := make([]float64, nTerms)
	asymp[0] = 3 / (math.Pi * math.Pi)
	for n := 1; n < nTerms; n++ {
		asymp[n] = -asymp[n-1] * (4*(float64(n)+1) - 1) / (math.Pi * math.Pi)
	}

	return []series{
		{"Zeta2", zeta2, math.Pi * math.Pi / 6, 1e-10},
		{"Exp10", exp(10), math.Exp(10), 1e-12},
		{"ExpMinus10", exp(-10), math.Exp(-10), 1e-6},
		{"LogHalf", log1m(0.5), math.Ln2, 1e-12},
		{"LogTwo", log1m(-1), -math.Ln2, 1e-12},
		{"AlternatingAsymptotic", asymp, 0.192594048773, 1e-10},
	}
}

func TestTruncAccel(t *testing.T) {
	w := NewTruncWorkspace(nTerms)
	for _, s := range testSeries() {
		t.Run(s.name, func(t *testing.T) {
			e, err := w.Accel(s.terms)
			require.NoError(t, err)
			require.InEpsilon(t, s.want, e.Sum, s.rel)
			require.LessOrEqual(t, e.TermsUsed, nTerms)
			require.Greater(t, e.TermsUsed, 1)
		})
	}
}

func TestAccel(t *testing.T) {
	w := NewWorkspace(nTerms)
	for _, s := range testSeries() {
		t.Run(s.name, func(t *testing.T) {
			e, err := w.Accel(s.terms)
			require.NoError(t, err)
			require.InEpsilon(t, s.want, e.Sum, s.rel)

			// The estimated number of correct digits must not exceed the
			// actual one. The reference values resolve two epsilons at best,
			// and the one of the asymptotic series only twelve digits.
			resolved := 2 * 2.220446049250313e-16
			actual := -math.Log10(math.Max(resolved, math.Abs(e.Sum-s.want)/math.Abs(s.want)))
			var slack float64
			if s.name == "AlternatingAsymptotic" {
				slack = 1
			}
			require.LessOrEqual(t, math.Min(e.DigitsCorrect(), -math.Log10(resolved)), actual+slack)
		})
	}
}

func TestStep(t *testing.T) {

	// Streaming the terms reproduces the estimate of the full table.
	terms := testSeries()[3].terms

	w := NewTruncWorkspace(nTerms)
	var est float64
	for n := 0; n < 20; n++ {
		est = w.Step(terms[n], n)
	}

	var plain float64
	for _, t := range terms[:20] {
		plain += t
	}

	require.InEpsilon(t, math.Ln2, est, 1e-12)
	require.InEpsilon(t, plain, w.SumPlain(), 1e-15)

	// Restarting at n = 0 resets the plain sum.
	require.Equal(t, 2.0, w.Step(2, 0))
	require.Equal(t, 2.0, w.SumPlain())
}

func TestEdgeCases(t *testing.T) {

	for _, accel := range []struct {
		name string
		f    func([]float64) (Estimate, error)
	}{
		{"Trunc", NewTruncWorkspace(4).Accel},
		{"Full", NewWorkspace(4).Accel},
	} {
		t.Run(accel.name, func(t *testing.T) {

			e, err := accel.f(nil)
			require.NoError(t, err)
			require.Equal(t, Estimate{}, e)

			e, err = accel.f([]float64{1.5, 0, 0})
			require.NoError(t, err)
			require.Equal(t, 1.5, e.Sum)
			require.Equal(t, 1, e.TermsUsed)

			// Trailing zeros do not count against the workspace size.
			_, err = accel.f([]float64{1, 0.5, 0.25, 0.125, 0, 0})
			require.NoError(t, err)

			_, err = accel.f([]float64{1, 0.5, 0.25, 0.125, 0.0625})
			require.True(t, errors.Is(err, ErrWorkspaceTooSmall))
		})
	}
}
