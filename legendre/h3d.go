// Package legendre implements the Legendre functions H3d_l(lambda, eta) on
// three-dimensional hyperbolic space, normalized such that
//
//	H3d_0(lambda, eta) = sin(lambda eta)/(lambda sinh(eta)),
//
// and the functions of higher order satisfy
//
//	hypot(lambda, l) H3d_{l-1} = (2l+1) coth(eta) H3d_l - hypot(lambda, l+1) H3d_{l+1}.
package legendre

import (
	"math"

	"github.com/tuneinsight/specfun/contfrac"
	"github.com/tuneinsight/specfun/recurrence"
	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

// CFMaxIter is the least iteration cap of the continued fraction for the ratio
// H3d_{l+1}/H3d_l. The cap grows as 40 l, since convergence near the upward
// recurrence regime needs about 9 e^eta < 36 l iterations.
const CFMaxIter = 20000

func value(v float64) result.Result {
	return result.Result{Val: v}
}

func invalid(lambda, eta float64) bool {
	return math.IsNaN(lambda) || math.IsInf(lambda, 0) || math.IsNaN(eta)
}

func h3d0(lambda, eta float64) result.Result {
	if invalid(lambda, eta) {
		return result.DomainError()
	}
	r, ok := h0Regimes.Lookup(eta)
	if !ok {
		return result.DomainError()
	}
	return r.Handler(lambda, eta)
}

// sinc returns sin(lambda eta)/lambda, whose limit at lambda = 0 is eta.
func sinc(lambda, eta float64) float64 {
	if lambda == 0 {
		return eta
	}
	return math.Sin(lambda*eta) / lambda
}

func h0Underflows(lambda, eta float64) bool {
	return lambda != 0 && eta+math.Log(math.Abs(lambda)) > -utils.LogDblMin
}

func h3d0Sinh(lambda, eta float64) result.Result {
	if h0Underflows(lambda, eta) {
		return result.UnderflowError()
	}
	return value(sinc(lambda, eta) / math.Sinh(eta))
}

func h3d0Exp(lambda, eta float64) result.Result {
	if h0Underflows(lambda, eta) {
		return result.UnderflowError()
	}
	e, _, underflow := utils.SafeExp(-eta)
	if v := 2 * sinc(lambda, eta) * e; !underflow && v != 0 {
		return value(v)
	}
	return result.UnderflowError()
}

func h3d1(lambda, eta float64) result.Result {
	if invalid(lambda, eta) {
		return result.DomainError()
	}
	r, ok := h1Regimes.Lookup(eta)
	if !ok {
		return result.DomainError()
	}
	return r.Handler(lambda, eta)
}

// h3d1Series evaluates H3d_1 for eta below the fifth root of epsilon.
func h3d1Series(lambda, eta float64) result.Result {

	xi := math.Abs(eta * lambda)
	etasq := eta * eta

	if xi < utils.Root5DblEpsilon {
		xisq := xi * xi
		term1 := (etasq + xisq) / 3
		term2 := -(2*etasq*etasq + 5*etasq*xisq + 3*xisq*xisq) / 90
		sinhTerm := 1 - etasq/6*(1-7.0/60*etasq)
		return value(sinhTerm / math.Hypot(lambda, 1) * (term1 + term2) / eta)
	}

	cothTerm := 1 + etasq/3*(1-etasq/15)
	sinhTerm := 1 - etasq/6*(1-7.0/60*etasq)

	return h3d1Form(lambda, eta, xi, cothTerm, sinhTerm)
}

func h3d1Closed(lambda, eta float64) result.Result {
	return h3d1Form(lambda, eta, math.Abs(eta*lambda), eta/math.Tanh(eta), eta/math.Sinh(eta))
}

// h3d1Form returns H3d_1 given cothTerm = eta/tanh(eta) and sinhTerm = eta/sinh(eta).
func h3d1Form(lambda, eta, xi, cothTerm, sinhTerm float64) result.Result {

	// sinTerm = sin(xi)/xi, cosTerm = cos(xi)
	var sinTerm, cosTerm float64
	if xi < utils.Root5DblEpsilon {
		sinTerm = 1 - xi*xi/6*(1-xi*xi/20)
		cosTerm = 1 - 0.5*xi*xi*(1-xi*xi/12)
	} else {
		sinTerm = math.Sin(xi) / xi
		cosTerm = math.Cos(xi)
	}

	return value(sinhTerm / math.Hypot(lambda, 1) * (sinTerm*cothTerm - cosTerm) / eta)
}

// switchEta returns the least eta of the upward recurrence regime of order ell.
//
// Above ln(4 ell) the upward recurrence amplifies rounding by at most
// exp(4 ell e^{-eta}) <= e. Where (2l+1) coth(eta) <= hypot(lambda, l) for all
// l <= ell, that is eta >= atanh((2 ell+1)/hypot(lambda, ell)), the recurrence
// is oscillatory and neutrally stable upward, while the continued fraction
// only converges past l ~ lambda.
func switchEta(ell int, lambda float64) float64 {
	bound := math.Log(4 * float64(ell))
	if k := float64(2*ell+1) / math.Hypot(lambda, float64(ell)); k < 1 {
		bound = utils.Min(bound, math.Atanh(k))
	}
	return bound
}

// ratio returns H3d_{ell+1}/H3d_ell by continued fraction. The partial
// numerators -(lambda^2 + l^2) and denominators are divided by hypot(lambda, l),
// which leaves the value unchanged and keeps them finite for any finite lambda.
func ratio(ell int, lambda, coth float64) (float64, result.Status) {
	solver := contfrac.Solver{MaxIter: utils.Max(CFMaxIter, 40*ell), Tolerance: contfrac.DefaultTolerance}
	r, _, st := solver.Evaluate(func(n int) (a, b float64) {
		l := float64(ell + n)
		h := math.Hypot(lambda, l)
		b = (2*l + 1) * coth / h
		if n == 1 {
			return 1, b
		}
		return -h / math.Hypot(lambda, l-1), b
	})
	return r, st
}

// h3dCoeffs returns the recurrence satisfied by H3d_l.
func h3dCoeffs(lambda, coth float64) recurrence.Coefficients {
	return func(l int) (c0, c1, c2 float64) {
		fl := float64(l)
		return math.Hypot(lambda, fl), (2*fl + 1) * coth, -math.Hypot(lambda, fl+1)
	}
}

// alternatingCoeffs returns the recurrence satisfied by G_l = (-1)^l H3d_l.
func alternatingCoeffs(lambda, coth float64) recurrence.Coefficients {
	return func(l int) (c0, c1, c2 float64) {
		fl := float64(l)
		return math.Hypot(lambda, fl), -(2*fl + 1) * coth, -math.Hypot(lambda, fl+1)
	}
}

// seeds returns H3d_0 and H3d_1. If either underflows, ok is false and
// history, if not nil, holds them followed by zeros.
func seeds(ell int, lambda, eta float64, history []float64) (h0, h1 result.Result, ok bool) {

	h0, h1 = h3d0(lambda, eta), h3d1(lambda, eta)

	if h0.Status == result.Underflow || h1.Status == result.Underflow {
		if history != nil {
			utils.Fill(history[:ell+1], 0)
			history[0], history[1] = h0.Val, h1.Val
		}
		return h0, h1, false
	}

	return h0, h1, true
}

// h3dBackward computes H3d_ell by downward recurrence on G_l = (-1)^l H3d_l,
// started from the continued fraction for G_{ell+1}/G_ell = -H3d_{ell+1}/H3d_ell.
func h3dBackward(ell int, lambda, eta float64, history []float64) result.Result {

	h0, h1, ok := seeds(ell, lambda, eta, history)
	if !ok {
		return result.UnderflowError()
	}

	coth := 1 / math.Tanh(eta)

	r, stCF := ratio(ell, lambda, coth)

	g, st := recurrence.Backward(ell, -r, alternatingCoeffs(lambda, coth), h0.Val, -h1.Val, history)

	for l := 1; l < len(history) && l <= ell; l += 2 {
		history[l] = -history[l]
	}

	if ell%2 == 1 {
		g = -g
	}

	return result.Result{Val: g, Status: result.Worst(stCF, st)}.With(h0.Status, h1.Status)
}

// h3dForward computes H3d_ell by upward recurrence from H3d_0 and H3d_1.
func h3dForward(ell int, lambda, eta float64, history []float64) result.Result {

	h0, h1, ok := seeds(ell, lambda, eta, history)
	if !ok {
		return result.UnderflowError()
	}

	coth := 1 / math.Tanh(eta)
	v, st := recurrence.Forward(ell, h3dCoeffs(lambda, coth), h0.Val, h1.Val, history)

	return result.Result{Val: v, Status: st}.With(h0.Status, h1.Status)
}

func h3dOrigin(ell int, lambda, eta float64, history []float64) result.Result {
	if history != nil {
		utils.Fill(history[:ell+1], 0)
		history[0] = 1
	}
	return value(0)
}

// h3d computes H3d_ell, and H3d_0, ..., H3d_ell in history if not nil.
func h3d(ell int, lambda, eta float64, history []float64) result.Result {

	if ell < 0 || invalid(lambda, eta) {
		return result.DomainError()
	}

	switch ell {
	case 0:
		r := h3d0(lambda, eta)
		if history != nil {
			history[0] = r.Val
		}
		return r
	case 1:
		r0, r1 := h3d0(lambda, eta), h3d1(lambda, eta)
		if history != nil {
			history[0], history[1] = r0.Val, r1.Val
		}
		return r1
	}

	r, ok := orderRegimes(ell, lambda).Lookup(eta)
	if !ok {
		return result.DomainError()
	}

	return r.Handler(ell, lambda, eta, history)
}

// h3dLnNorm returns log prod_{n=0}^{ell} (lambda^2 + n^2).
func h3dLnNorm(ell int, lambda float64) result.Result {

	if ell < 0 || lambda == 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return result.DomainError()
	}

	var sum float64
	for n := 0; n <= ell; n++ {
		sum += 2 * math.Log(math.Hypot(lambda, float64(n)))
	}

	return value(sum)
}
