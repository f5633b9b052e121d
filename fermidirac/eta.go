package fermidirac

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// eta returns the Dirichlet eta function (1 - 2^{1-k}) zeta(k) at the integer k.
func eta(k int) float64 {

	switch {
	case k >= 2:
		return -math.Expm1(float64(1-k)*math.Ln2) * mathext.Zeta(float64(k), 1)
	case k == 1:
		return math.Ln2
	case k == 0:
		return 0.5
	}

	// zeta(-m) vanishes at the negative even integers.
	m := -k
	if m%2 == 0 {
		return 0
	}

	return -math.Expm1(float64(1+m)*math.Ln2) * zetaNegOdd(m)
}

// zetaNegOdd returns zeta(-m) for odd m = 2k-1, from the functional equation
// zeta(1-2k) = (-1)^k 2 (2k-1)! zeta(2k) / (2 pi)^{2k}.
func zetaNegOdd(m int) float64 {
	k := (m + 1) / 2
	lg, _ := math.Lgamma(float64(2 * k))
	z := 2 * math.Exp(lg-float64(2*k)*math.Log(2*math.Pi)) * mathext.Zeta(float64(2*k), 1)
	if k%2 == 1 {
		z = -z
	}
	return z
}
