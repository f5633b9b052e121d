package sampling

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidMean is returned for a Poisson mean that is negative or not finite.
var ErrInvalidMean = errors.New("invalid Poisson mean")

// Poisson returns a Poisson variate of mean mu, drawn by distuv.Poisson
// with the receiver as its source of randomness.
func (s *Source) Poisson(mu float64) (int, error) {

	switch {
	case mu < 0 || math.IsNaN(mu) || math.IsInf(mu, 0):
		return 0, fmt.Errorf("sampling: %w: %v", ErrInvalidMean, mu)
	case mu == 0:
		return 0, nil
	}

	return int(distuv.Poisson{Lambda: mu, Src: s}.Rand()), nil
}
