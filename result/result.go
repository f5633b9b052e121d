package result

import (
	"fmt"
	"math"
)

// Result is the outcome of a checked evaluation: a value and its status.
// The value is always set, also when the status is not Success.
type Result struct {
	Val    float64
	Status Status
}

// OK returns true if the evaluation succeeded.
func (r Result) OK() bool {
	return r.Status == Success
}

// With returns r with its status replaced by the worst of r.Status and s.
func (r Result) With(s ...Status) Result {
	r.Status = Worst(r.Status, Worst(s...))
	return r
}

// Scale returns r with its value multiplied by f.
func (r Result) Scale(f float64) Result {
	r.Val *= f
	return r
}

// DomainError returns the result of an argument outside the definition of a function.
func DomainError() Result {
	return Result{Val: math.NaN(), Status: Domain}
}

// UnderflowError returns a result that rounds to zero.
func UnderflowError() Result {
	return Result{Val: 0, Status: Underflow}
}

// OverflowError returns a result beyond the representable range.
func OverflowError() Result {
	return Result{Val: math.Inf(1), Status: Overflow}
}

// Error is the error surfaced by the strict tier. It carries the value computed
// despite the failure, which is meaningful for Underflow (0) and Overflow (+Inf).
type Error struct {
	Func   string
	Status Status
	Val    float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (value %g)", e.Func, e.Status, e.Val)
}

// Unwrap returns the sentinel error of the status, so that callers can
// test the failure class with errors.Is.
func (e *Error) Unwrap() error {
	return e.Status.Err()
}
