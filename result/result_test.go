package result

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorst(t *testing.T) {
	require.Equal(t, Success, Worst())
	require.Equal(t, Success, Worst(Success, Success))
	require.Equal(t, Underflow, Worst(Success, Underflow))
	require.Equal(t, PrecisionLoss, Worst(Underflow, PrecisionLoss, Success))
	require.Equal(t, MaxIter, Worst(PrecisionLoss, MaxIter))
	require.Equal(t, Overflow, Worst(MaxIter, Overflow, Underflow))
	require.Equal(t, Domain, Worst(Overflow, Domain))
}

func TestWith(t *testing.T) {
	r := Result{Val: 1, Status: PrecisionLoss}
	require.Equal(t, PrecisionLoss, r.With(Underflow).Status)
	require.Equal(t, Overflow, r.With(Success, Overflow).Status)
	require.Equal(t, 1.0, r.With(Domain).Val)
}

func TestStrict(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		v, err := Strict("f", Result{Val: 2})
		require.NoError(t, err)
		require.Equal(t, 2.0, v)
	})

	t.Run("Underflow", func(t *testing.T) {
		v, err := Strict("f", UnderflowError())
		require.Error(t, err)
		require.Zero(t, v)
		require.True(t, errors.Is(err, ErrUnderflow))

		var e *Error
		require.True(t, errors.As(err, &e))
		require.Equal(t, "f", e.Func)
		require.Equal(t, Underflow, e.Status)
	})

	t.Run("Overflow", func(t *testing.T) {
		v, err := Strict("f", OverflowError())
		require.True(t, errors.Is(err, ErrOverflow))
		require.True(t, math.IsInf(v, 1))
	})

	t.Run("Domain", func(t *testing.T) {
		v, err := Strict("f", DomainError())
		require.True(t, errors.Is(err, ErrDomain))
		require.True(t, math.IsNaN(v))
	})
}

func TestBestEffort(t *testing.T) {

	var calls []string
	old := SetWarningHandler(func(fn string, r Result) {
		calls = append(calls, fn+": "+r.Status.String())
	})
	defer SetWarningHandler(old)

	require.Equal(t, 3.0, BestEffort("f", Result{Val: 3}))
	require.Empty(t, calls)

	require.Equal(t, 0.0, BestEffort("g", UnderflowError()))
	require.Equal(t, []string{"g: underflow"}, calls)
}

func TestStatusErr(t *testing.T) {
	require.NoError(t, Success.Err())
	for _, s := range []Status{Underflow, PrecisionLoss, MaxIter, Overflow, Domain} {
		require.Error(t, s.Err(), s.String())
	}
}
