package legendre

import (
	"fmt"
	"math"

	"github.com/tuneinsight/specfun/regime"
	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

// Family identifies a family of H3d functions sharing one regime table in eta.
type Family int

const (
	// FamilyH0 is the order 0.
	FamilyH0 = Family(iota)
	// FamilyH1 is the order 1.
	FamilyH1
	// FamilyHl is the orders l >= 2, whose regime bounds depend on l and lambda.
	FamilyHl
)

func (f Family) String() string {
	switch f {
	case FamilyH0:
		return "H3d_0"
	case FamilyH1:
		return "H3d_1"
	case FamilyHl:
		return "H3d_l, l >= 2"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

type evaluator func(lambda, eta float64) result.Result

type orderEvaluator func(ell int, lambda, eta float64, history []float64) result.Result

// originUpper closes the regime eta = 0.
const originUpper = math.SmallestNonzeroFloat64

func domain(float64, float64) result.Result {
	return result.DomainError()
}

var h0Regimes = regime.Table[evaluator]{
	{Name: "negative", Upper: 0, Handler: domain},
	{Name: "origin", Upper: originUpper, Handler: func(float64, float64) result.Result {
		return value(1)
	}},
	{Name: "sinh", Upper: -0.5 * utils.LogDblEpsilon, Handler: h3d0Sinh},
	{Name: "exponential", Upper: math.Inf(1), Handler: h3d0Exp},
}

var h1Regimes = regime.Table[evaluator]{
	{Name: "negative", Upper: 0, Handler: domain},
	{Name: "origin", Upper: originUpper, Handler: func(float64, float64) result.Result {
		return value(0)
	}},
	{Name: "series", Upper: utils.Root5DblEpsilon, Handler: h3d1Series},
	{Name: "closed-form", Upper: -utils.LogDblMin, Handler: h3d1Closed},
	{Name: "underflow", Upper: math.Inf(1), Handler: func(float64, float64) result.Result {
		return result.UnderflowError()
	}},
}

// orderRegimes returns the regimes of H3d_ell at lambda, for ell >= 2.
// The backward bound switchEta(ell, lambda) is at least
// atanh(5/MaxFloat64) > originUpper, so every such table is ordered.
func orderRegimes(ell int, lambda float64) regime.Table[orderEvaluator] {
	return regime.Table[orderEvaluator]{
		{Name: "negative", Upper: 0, Handler: func(int, float64, float64, []float64) result.Result {
			return result.DomainError()
		}},
		{Name: "origin", Upper: originUpper, Handler: h3dOrigin},
		{Name: "backward", Upper: switchEta(ell, lambda), Handler: h3dBackward},
		{Name: "forward", Upper: math.Inf(1), Handler: h3dForward},
	}
}

func init() {
	for f, t := range map[Family]regime.Table[evaluator]{FamilyH0: h0Regimes, FamilyH1: h1Regimes} {
		if err := t.Validate(); err != nil {
			panic(fmt.Errorf("invalid regime table %s: %w", f, err))
		}
	}
	if err := orderRegimes(2, math.MaxFloat64).Validate(); err != nil {
		panic(fmt.Errorf("invalid regime table %s: %w", FamilyHl, err))
	}
}

// Regimes returns the names of the regimes of a family, ordered in increasing eta.
func Regimes(f Family) []string {
	switch f {
	case FamilyH0:
		return h0Regimes.Names()
	case FamilyH1:
		return h1Regimes.Names()
	case FamilyHl:
		return orderRegimes(2, 0).Names()
	}
	return nil
}
