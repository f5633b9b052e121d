package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	require.Equal(t, math.Nextafter(1, 2)-1, DblEpsilon)
	require.Equal(t, math.SmallestNonzeroFloat64*(1<<52), DblMin)
	require.InEpsilon(t, math.Sqrt(DblEpsilon), SqrtDblEpsilon, 1e-15)
	require.InEpsilon(t, math.Pow(DblEpsilon, 1.0/5.0), Root5DblEpsilon, 1e-15)
	require.InEpsilon(t, math.Log(DblEpsilon), LogDblEpsilon, 1e-15)
	require.InEpsilon(t, math.Sqrt(DblMin), SqrtDblMin, 1e-15)
	require.InEpsilon(t, math.Log(DblMin), LogDblMin, 1e-15)
	require.InEpsilon(t, math.Sqrt(DblMax), SqrtDblMax, 1e-15)
	require.InEpsilon(t, math.Log(DblMax), LogDblMax, 1e-15)
}

func TestIsInteger(t *testing.T) {
	require.True(t, IsInteger(0))
	require.True(t, IsInteger(-3))
	require.True(t, IsInteger(3+1e-15))
	require.False(t, IsInteger(0.5))
	require.False(t, IsInteger(1.5))
}

func TestSafeExp(t *testing.T) {
	y, over, under := SafeExp(1)
	require.Equal(t, math.E, y)
	require.False(t, over || under)

	y, over, _ = SafeExp(LogDblMax + 1)
	require.True(t, over)
	require.True(t, math.IsInf(y, 1))

	y, _, under = SafeExp(LogDblMin - 1)
	require.True(t, under)
	require.Zero(t, y)
}
