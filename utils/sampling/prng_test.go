package sampling_test

import (
	"errors"
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/specfun/utils/sampling"
	"gonum.org/v1/gonum/stat/distuv"
)

func Test_PRNG(t *testing.T) {

	t.Run("PRNG", func(t *testing.T) {

		key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
			0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())
	})

	t.Run("Seeded", func(t *testing.T) {

		Ha, err := sampling.NewSeededPRNG(17)
		require.NoError(t, err)
		Hb, err := sampling.NewSeededPRNG(17)
		require.NoError(t, err)
		Hc, err := sampling.NewSeededPRNG(18)
		require.NoError(t, err)

		require.Len(t, Ha.Key(), sampling.KeySize)
		require.Equal(t, Ha.Key(), Hb.Key())
		require.NotEqual(t, Ha.Key(), Hc.Key())

		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)
		Ha.Read(sum0)
		Hb.Read(sum1)
		require.Equal(t, sum0, sum1)
	})
}

func TestSource(t *testing.T) {

	prng, err := sampling.NewSeededPRNG(1)
	require.NoError(t, err)
	src := sampling.NewSource(prng)

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}

	values := make([]float64, 10000)
	for i := range values {
		values[i] = uniform.Rand()
		require.GreaterOrEqual(t, values[i], 0.0)
		require.Less(t, values[i], 1.0)
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	require.InDelta(t, 0.5, mean, 0.02)

	variance, err := stats.Variance(values)
	require.NoError(t, err)
	require.InDelta(t, 1.0/12, variance, 0.005)
}

func TestPoisson(t *testing.T) {

	for _, tc := range []struct {
		mu, meanTol, varTol float64
	}{
		{0.5, 0.03, 0.05},
		{3.5, 0.07, 0.2},
		{40, 0.25, 2.5},
		{1e4, 4, 1000},
	} {
		prng, err := sampling.NewSeededPRNG(17)
		require.NoError(t, err)
		src := sampling.NewSource(prng)

		values := make([]float64, 20000)
		for i := range values {
			k, err := src.Poisson(tc.mu)
			require.NoError(t, err)
			require.GreaterOrEqual(t, k, 0)
			values[i] = float64(k)
		}

		mean, err := stats.Mean(values)
		require.NoError(t, err)
		require.InDelta(t, tc.mu, mean, tc.meanTol, "mu=%v", tc.mu)

		variance, err := stats.Variance(values)
		require.NoError(t, err)
		require.InDelta(t, tc.mu, variance, tc.varTol, "mu=%v", tc.mu)
	}

	t.Run("Zero", func(t *testing.T) {
		prng, _ := sampling.NewSeededPRNG(0)
		k, err := sampling.NewSource(prng).Poisson(0)
		require.NoError(t, err)
		require.Equal(t, 0, k)
	})

	t.Run("Invalid", func(t *testing.T) {
		prng, _ := sampling.NewSeededPRNG(0)
		src := sampling.NewSource(prng)
		for _, mu := range []float64{-1, math.NaN(), math.Inf(1)} {
			_, err := src.Poisson(mu)
			require.True(t, errors.Is(err, sampling.ErrInvalidMean))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		draw := func() []int {
			prng, _ := sampling.NewSeededPRNG(17)
			src := sampling.NewSource(prng)
			ks := make([]int, 100)
			for i := range ks {
				ks[i], _ = src.Poisson(25)
			}
			return ks
		}
		require.Equal(t, draw(), draw())
	})
}
