package result

import (
	"log"
	"sync/atomic"
)

// WarningHandler receives the diagnostics emitted by the best-effort tier.
// Handlers may be called concurrently.
type WarningHandler func(fn string, r Result)

var warningHandler atomic.Pointer[WarningHandler]

func logWarning(fn string, r Result) {
	log.Printf("specfun: %s: %s (value %g)", fn, r.Status, r.Val)
}

// SetWarningHandler installs h as the best-effort diagnostic sink and returns
// the previous handler. A nil h restores the default handler, which writes
// one line through the standard logger.
func SetWarningHandler(h WarningHandler) (old WarningHandler) {
	if p := warningHandler.Load(); p != nil {
		old = *p
	} else {
		old = logWarning
	}

	if h == nil {
		warningHandler.Store(nil)
	} else {
		warningHandler.Store(&h)
	}

	return
}

func warn(fn string, r Result) {
	if p := warningHandler.Load(); p != nil {
		(*p)(fn, r)
		return
	}
	logWarning(fn, r)
}

// Strict is the strict tier: it returns the computed value together with an
// *Error if the status is not Success.
func Strict(fn string, r Result) (float64, error) {
	if r.Status != Success {
		return r.Val, &Error{Func: fn, Status: r.Status, Val: r.Val}
	}
	return r.Val, nil
}

// BestEffort is the best-effort tier: it returns the computed value regardless
// of the status, emitting a diagnostic through the warning handler on failure.
func BestEffort(fn string, r Result) float64 {
	if r.Status != Success {
		warn(fn, r)
	}
	return r.Val
}
