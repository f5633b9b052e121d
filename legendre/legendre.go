package legendre

import (
	"github.com/tuneinsight/specfun/result"
)

// H3d0E returns H3d_0(lambda, eta) = sin(lambda eta)/(lambda sinh(eta)), for eta >= 0.
// At lambda = 0 it returns the limit eta/sinh(eta).
func H3d0E(lambda, eta float64) result.Result {
	return h3d0(lambda, eta)
}

// H3d0 is the best-effort form of H3d0E.
func H3d0(lambda, eta float64) float64 {
	return result.BestEffort("legendre.H3d0", H3d0E(lambda, eta))
}

// H3d0Strict is the strict form of H3d0E.
func H3d0Strict(lambda, eta float64) (float64, error) {
	return result.Strict("legendre.H3d0", H3d0E(lambda, eta))
}

// H3d1E returns
//
//	H3d_1(lambda, eta) = (coth(eta) sin(lambda eta)/lambda - cos(lambda eta)) / (sqrt(lambda^2+1) sinh(eta)),
//
// for eta >= 0.
func H3d1E(lambda, eta float64) result.Result {
	return h3d1(lambda, eta)
}

// H3d1 is the best-effort form of H3d1E.
func H3d1(lambda, eta float64) float64 {
	return result.BestEffort("legendre.H3d1", H3d1E(lambda, eta))
}

// H3d1Strict is the strict form of H3d1E.
func H3d1Strict(lambda, eta float64) (float64, error) {
	return result.Strict("legendre.H3d1", H3d1E(lambda, eta))
}

// H3dE returns H3d_ell(lambda, eta) for ell >= 0, finite lambda and eta >= 0.
// The method of each regime of eta is listed by Regimes(FamilyHl).
func H3dE(ell int, lambda, eta float64) result.Result {
	return h3d(ell, lambda, eta, nil)
}

// H3d is the best-effort form of H3dE.
func H3d(ell int, lambda, eta float64) float64 {
	return result.BestEffort("legendre.H3d", H3dE(ell, lambda, eta))
}

// H3dStrict is the strict form of H3dE.
func H3dStrict(ell int, lambda, eta float64) (float64, error) {
	return result.Strict("legendre.H3d", H3dE(ell, lambda, eta))
}

// H3dArray writes H3d_0(lambda, eta), ..., H3d_lmax(lambda, eta) in out,
// which must be of length at least lmax+1, and returns the worst status
// of the computation.
func H3dArray(lmax int, lambda, eta float64, out []float64) result.Status {
	if lmax < 0 || len(out) < lmax+1 {
		return result.Domain
	}
	return h3d(lmax, lambda, eta, out[:lmax+1]).Status
}

// H3dLnNormE returns the logarithm of the normalization
//
//	N(ell, lambda) = prod_{n=0}^{ell} (lambda^2 + n^2) = |Gamma(ell+1+i lambda)|^2 lambda sinh(pi lambda)/pi,
//
// which is a domain error for lambda = 0.
func H3dLnNormE(ell int, lambda float64) result.Result {
	return h3dLnNorm(ell, lambda)
}

// H3dLnNorm is the best-effort form of H3dLnNormE.
func H3dLnNorm(ell int, lambda float64) float64 {
	return result.BestEffort("legendre.H3dLnNorm", H3dLnNormE(ell, lambda))
}

// H3dLnNormStrict is the strict form of H3dLnNormE.
func H3dLnNormStrict(ell int, lambda float64) (float64, error) {
	return result.Strict("legendre.H3dLnNorm", H3dLnNormE(ell, lambda))
}
