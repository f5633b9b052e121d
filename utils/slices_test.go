package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxMin(t *testing.T) {
	require.Equal(t, 3, Max(1, 3, 2))
	require.Equal(t, 1, Min(1, 3, 2))
	require.Equal(t, -1.5, Max(-1.5))
	require.Equal(t, "b", Max("a", "b"))
}

func TestIsSortedStrict(t *testing.T) {
	require.True(t, IsSortedStrict([]float64{}))
	require.True(t, IsSortedStrict([]float64{-1, 0, 1}))
	require.False(t, IsSortedStrict([]float64{-1, 0, 0}))
	require.False(t, IsSortedStrict([]int{2, 1}))
}

func TestFill(t *testing.T) {
	s := make([]float64, 4)
	Fill(s, 2.5)
	require.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, s)
}
