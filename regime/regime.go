// Package regime implements the partition of a real domain into named,
// ordered sub-domains, each evaluated by its own handler.
package regime

import (
	"errors"
	"fmt"
	"math"

	"github.com/tuneinsight/specfun/utils"
)

var (
	// ErrEmptyTable is returned by Validate for a table without regimes.
	ErrEmptyTable = errors.New("empty regime table")
	// ErrUnsorted is returned by Validate when the upper bounds are not strictly increasing.
	ErrUnsorted = errors.New("regime upper bounds are not strictly increasing")
	// ErrOpenTable is returned by Validate when the last upper bound is not +Inf.
	ErrOpenTable = errors.New("last regime upper bound is not +Inf")
	// ErrDuplicateName is returned by Validate when two regimes share a name.
	ErrDuplicateName = errors.New("duplicate regime name")
)

// Regime is a named sub-domain x < Upper, bounded below by the upper bound of the previous regime.
type Regime[H any] struct {
	Name    string
	Upper   float64
	Handler H
}

// Table is an ordered partition of the real line.
// The regime of x is the first one for which x < Upper.
type Table[H any] []Regime[H]

// Validate checks that the table is a total, non-overlapping partition:
// strictly increasing upper bounds, terminated by +Inf, and unique names.
func (t Table[H]) Validate() (err error) {

	if len(t) == 0 {
		return ErrEmptyTable
	}

	uppers := make([]float64, len(t))
	names := map[string]bool{}
	for i, r := range t {
		uppers[i] = r.Upper
		if names[r.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
		}
		names[r.Name] = true
	}

	if !utils.IsSortedStrict(uppers) {
		return fmt.Errorf("%w: %v", ErrUnsorted, uppers)
	}

	if last := uppers[len(uppers)-1]; !math.IsInf(last, 1) {
		return fmt.Errorf("%w: %v", ErrOpenTable, last)
	}

	return nil
}

// Lookup returns the regime of x. It returns false if x is NaN or the table is empty.
// +Inf belongs to the last regime.
func (t Table[H]) Lookup(x float64) (Regime[H], bool) {

	if math.IsNaN(x) {
		return Regime[H]{}, false
	}

	for i, r := range t {
		if x < r.Upper || i == len(t)-1 {
			return r, true
		}
	}

	return Regime[H]{}, false
}

// Names returns the names of the regimes, in order.
func (t Table[H]) Names() (names []string) {
	names = make([]string, len(t))
	for i := range t {
		names[i] = t[i].Name
	}
	return
}

// Bounds returns the lower and upper bounds of the i-th regime.
func (t Table[H]) Bounds(i int) (lower, upper float64) {
	if i == 0 {
		lower = math.Inf(-1)
	} else {
		lower = t[i-1].Upper
	}
	return lower, t[i].Upper
}
