// Package result implements the status taxonomy shared by every evaluation and the
// three calling tiers (checked, strict and best-effort) built on top of it.
package result

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/specfun/utils"
)

// Status classifies the outcome of an evaluation.
// Constants are declared in ascending order of severity, so that the
// most severe of several statuses is their maximum.
type Status int

const (
	// Success: the value is accurate to the nominal precision.
	Success = Status(iota)
	// Underflow: the true result rounds to zero; the value is 0.
	Underflow
	// PrecisionLoss: the value was computed but its estimated accuracy is below nominal.
	PrecisionLoss
	// MaxIter: an iterative method hit its iteration cap; the value is the last estimate.
	MaxIter
	// Overflow: the true result exceeds the representable range; the value is +Inf.
	Overflow
	// Domain: the argument lies outside the function's definition.
	Domain
)

// Sentinel errors returned, wrapped in an *Error, by the strict tier.
var (
	ErrUnderflow     = errors.New("underflow")
	ErrPrecisionLoss = errors.New("loss of precision")
	ErrMaxIter       = errors.New("exceeded max number of iterations")
	ErrOverflow      = errors.New("overflow")
	ErrDomain        = errors.New("input domain error")
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Underflow:
		return "underflow"
	case PrecisionLoss:
		return "precision loss"
	case MaxIter:
		return "max iterations"
	case Overflow:
		return "overflow"
	case Domain:
		return "domain error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Err returns the sentinel error of the status, or nil on success.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case Underflow:
		return ErrUnderflow
	case PrecisionLoss:
		return ErrPrecisionLoss
	case MaxIter:
		return ErrMaxIter
	case Overflow:
		return ErrOverflow
	default:
		return ErrDomain
	}
}

// Worst returns the most severe of the given statuses, following the order
// Domain > Overflow > MaxIter > PrecisionLoss > Underflow > Success.
func Worst(s ...Status) Status {
	if len(s) == 0 {
		return Success
	}
	return utils.Max(s[0], s[1:]...)
}
