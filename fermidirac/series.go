package fermidirac

import (
	"math"

	"github.com/tuneinsight/specfun/levin"
	"github.com/tuneinsight/specfun/result"
	"github.com/tuneinsight/specfun/utils"
)

const (
	// seriesMaxTerms caps the plain series in e^x.
	seriesMaxTerms = 100
	// negMaxIter caps the accelerated series in e^x.
	negMaxIter = 100
)

// negSeries sums F_j(x) = sum_{k>=1} (-1)^{k+1} e^{kx}/k^{j+1} for x < -1,
// where ratPow(r) = r^{j+1}.
func negSeries(x float64, ratPow func(r float64) float64) result.Result {

	ex := math.Exp(x)
	term := ex
	sum := term

	for n := 2; n < seriesMaxTerms; n++ {
		rat := float64(n-1) / float64(n)
		term *= -ex * ratPow(rat)
		sum += term
		if math.Abs(term/sum) < utils.DblEpsilon {
			break
		}
	}

	return result.Result{Val: sum}
}

// fdNeg returns F_j(x) for x <= 0 and real j, by the series in e^x,
// accelerated with the Levin u-transform when it converges slowly.
func fdNeg(j, x float64) result.Result {

	switch {
	case x < utils.LogDblMin:
		return result.Result{}
	case x < -1 && x < -math.Abs(j+1):
		return negSeries(x, func(r float64) float64 { return math.Pow(r, j+1) })
	}

	w := levin.NewTruncWorkspace(negMaxIter + 1)

	ex := -math.Exp(x)
	enx := -ex
	xn := x

	var f float64

	for n := 0; n <= negMaxIter; n++ {

		prev := f

		f = w.Step(enx/math.Pow(float64(n+1), j+1), n)

		xn += x

		if math.Abs(f-prev) < math.Abs(f)*10*utils.DblEpsilon || xn < utils.LogDblMin {
			return result.Result{Val: f}
		}

		enx *= ex
	}

	return result.Result{Val: f, Status: result.MaxIter}
}
