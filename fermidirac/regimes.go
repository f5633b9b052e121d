package fermidirac

import (
	"fmt"
	"math"

	"github.com/tuneinsight/specfun/regime"
	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

// Family identifies a family of Fermi-Dirac integrals sharing one regime table.
type Family int

const (
	// FamilyM1 is the order -1.
	FamilyM1 = Family(iota)
	// Family0 is the order 0.
	Family0
	// Family1 is the order 1.
	Family1
	// FamilyHalf is the order 1/2.
	FamilyHalf
	// Family3Half is the order 3/2.
	Family3Half
	// FamilyInt is the integer orders j >= 2.
	FamilyInt
	// FamilyNegInt is the integer orders -MaxNegativeOrder <= j <= -2.
	FamilyNegInt
)

func (f Family) String() string {
	switch f {
	case FamilyM1:
		return "F_{-1}"
	case Family0:
		return "F_0"
	case Family1:
		return "F_1"
	case FamilyHalf:
		return "F_{1/2}"
	case Family3Half:
		return "F_{3/2}"
	case FamilyInt:
		return "F_j, j >= 2"
	case FamilyNegInt:
		return "F_j, j <= -2"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

type evaluator func(x float64) result.Result

type intEvaluator func(j int, x float64) result.Result

func underflow(float64) result.Result {
	return result.UnderflowError()
}

func overflow(float64) result.Result {
	return result.OverflowError()
}

func value(v float64) result.Result {
	return result.Result{Val: v}
}

var fm1Regimes = regime.Table[evaluator]{
	{Name: "underflow", Upper: utils.LogDblMin, Handler: underflow},
	{Name: "negative", Upper: 0, Handler: func(x float64) result.Result {
		ex := math.Exp(x)
		return value(ex / (1 + ex))
	}},
	{Name: "positive", Upper: math.Inf(1), Handler: func(x float64) result.Result {
		return value(1 / (1 + math.Exp(-x)))
	}},
}

var f0Regimes = regime.Table[evaluator]{
	{Name: "underflow", Upper: utils.LogDblMin, Handler: underflow},
	{Name: "series", Upper: -5, Handler: func(x float64) result.Result {
		ex := math.Exp(x)
		return value(ex * (1 - ex*(1.0/2-ex*(1.0/3-ex*(1.0/4-ex*(1.0/5-ex/6))))))
	}},
	{Name: "log1p", Upper: 10, Handler: func(x float64) result.Result {
		return value(math.Log1p(math.Exp(x)))
	}},
	{Name: "asymptotic", Upper: math.Inf(1), Handler: func(x float64) result.Result {
		if math.IsInf(x, 1) {
			return result.OverflowError()
		}
		ex := math.Exp(-x)
		return value(x + ex*(1-0.5*ex+ex*ex/3-ex*ex*ex/4))
	}},
}

var f1Regimes = regime.Table[evaluator]{
	{Name: "underflow", Upper: utils.LogDblMin, Handler: underflow},
	{Name: "series", Upper: -1, Handler: func(x float64) result.Result {
		return negSeries(x, func(r float64) float64 { return r * r })
	}},
	{Name: "cheb-a", Upper: 1, Handler: func(x float64) result.Result {
		return value(f1A.Eval(x))
	}},
	{Name: "cheb-b", Upper: 4, Handler: func(x float64) result.Result {
		return value(f1B.Eval(2.0/3.0*(x-1) - 1))
	}},
	{Name: "cheb-c", Upper: 10, Handler: func(x float64) result.Result {
		return value(f1C.Eval(1.0/3.0*(x-4) - 1))
	}},
	{Name: "cheb-d", Upper: 30, Handler: func(x float64) result.Result {
		return value(f1D.Eval(0.1*x-2) * x * x)
	}},
	{Name: "cheb-e", Upper: 1 / utils.SqrtDblEpsilon, Handler: func(x float64) result.Result {
		return value(f1E.Eval(60/x-1) * x * x)
	}},
	{Name: "leading", Upper: utils.SqrtDblMax, Handler: func(x float64) result.Result {
		return value(0.5 * x * x)
	}},
	{Name: "overflow", Upper: math.Inf(1), Handler: overflow},
}

var fHalfRegimes = regime.Table[evaluator]{
	{Name: "underflow", Upper: utils.LogDblMin, Handler: underflow},
	{Name: "series", Upper: -1, Handler: func(x float64) result.Result {
		return negSeries(x, func(r float64) float64 { return r * math.Sqrt(r) })
	}},
	{Name: "cheb-a", Upper: 1, Handler: func(x float64) result.Result {
		return value(fHalfA.Eval(x))
	}},
	{Name: "cheb-b", Upper: 4, Handler: func(x float64) result.Result {
		return value(fHalfB.Eval(2.0/3.0*(x-1) - 1))
	}},
	{Name: "cheb-c", Upper: 10, Handler: func(x float64) result.Result {
		return value(fHalfC.Eval(1.0/3.0*(x-4) - 1))
	}},
	{Name: "cheb-d", Upper: 30, Handler: func(x float64) result.Result {
		return value(fHalfD.Eval(0.1*x-2) * x * math.Sqrt(x))
	}},
	{Name: "asymptotic", Upper: math.Inf(1), Handler: func(x float64) result.Result {
		return fdAsymp(0.5, x)
	}},
}

var f3HalfRegimes = regime.Table[evaluator]{
	{Name: "underflow", Upper: utils.LogDblMin, Handler: underflow},
	{Name: "series", Upper: -1, Handler: func(x float64) result.Result {
		return negSeries(x, func(r float64) float64 { return r * r * math.Sqrt(r) })
	}},
	{Name: "cheb-a", Upper: 1, Handler: func(x float64) result.Result {
		return value(f3HalfA.Eval(x))
	}},
	{Name: "cheb-b", Upper: 4, Handler: func(x float64) result.Result {
		return value(f3HalfB.Eval(2.0/3.0*(x-1) - 1))
	}},
	{Name: "cheb-c", Upper: 10, Handler: func(x float64) result.Result {
		return value(f3HalfC.Eval(1.0/3.0*(x-4) - 1))
	}},
	{Name: "cheb-d", Upper: 30, Handler: func(x float64) result.Result {
		return value(f3HalfD.Eval(0.1*x-2) * x * x * math.Sqrt(x))
	}},
	{Name: "asymptotic", Upper: math.Inf(1), Handler: func(x float64) result.Result {
		return fdAsymp(1.5, x)
	}},
}

var intRegimes = regime.Table[intEvaluator]{
	{Name: "underflow", Upper: utils.LogDblMin, Handler: func(int, float64) result.Result {
		return result.UnderflowError()
	}},
	{Name: "series", Upper: 0, Handler: func(j int, x float64) result.Result {
		return fdNeg(float64(j), x)
	}},
	{Name: "taylor", Upper: 1, Handler: fdTaylor},
	{Name: "asymptotic", Upper: math.Inf(1), Handler: func(j int, x float64) result.Result {
		return fdAsymp(float64(j), x)
	}},
}

var negIntRegimes = regime.Table[intEvaluator]{
	{Name: "underflow-negative", Upper: utils.LogDblMin, Handler: func(int, float64) result.Result {
		return result.UnderflowError()
	}},
	{Name: "rational-negative", Upper: 0, Handler: fdNegInt},
	{Name: "rational-positive", Upper: -utils.LogDblMin, Handler: fdNegInt},
	{Name: "underflow-positive", Upper: math.Inf(1), Handler: func(int, float64) result.Result {
		return result.UnderflowError()
	}},
}

var tables = map[Family]regime.Table[evaluator]{
	FamilyM1:    fm1Regimes,
	Family0:     f0Regimes,
	Family1:     f1Regimes,
	FamilyHalf:  fHalfRegimes,
	Family3Half: f3HalfRegimes,
}

func init() {
	for f, t := range tables {
		if err := t.Validate(); err != nil {
			panic(fmt.Errorf("invalid regime table %s: %w", f, err))
		}
	}
	for f, t := range map[Family]regime.Table[intEvaluator]{FamilyInt: intRegimes, FamilyNegInt: negIntRegimes} {
		if err := t.Validate(); err != nil {
			panic(fmt.Errorf("invalid regime table %s: %w", f, err))
		}
	}
}

// Regimes returns the names of the regimes of a family, ordered from -Inf to +Inf.
func Regimes(f Family) []string {
	switch f {
	case FamilyInt:
		return intRegimes.Names()
	case FamilyNegInt:
		return negIntRegimes.Names()
	}
	if t, ok := tables[f]; ok {
		return t.Names()
	}
	return nil
}

func dispatch(t regime.Table[evaluator], x float64) result.Result {
	r, ok := t.Lookup(x)
	if !ok {
		return result.DomainError()
	}
	return r.Handler(x)
}

func dispatchInt(t regime.Table[intEvaluator], j int, x float64) result.Result {
	r, ok := t.Lookup(x)
	if !ok {
		return result.DomainError()
	}
	return r.Handler(j, x)
}
