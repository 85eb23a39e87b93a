package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPearson(t *testing.T) {
	t.Run("perfect positive correlation", func(t *testing.T) {
		corr, err := Pearson([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, corr.R, 1e-12)
		assert.Equal(t, 0.0, corr.P)
		assert.True(t, math.IsInf(corr.T, 1))
	})

	t.Run("perfect negative correlation", func(t *testing.T) {
		corr, err := Pearson([]float64{1, 2, 3}, []float64{3, 2, 1})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, corr.R, 1e-12)
		assert.True(t, math.IsInf(corr.T, -1))
	})

	t.Run("strong but imperfect correlation", func(t *testing.T) {
		// r = 12/sqrt(10*14.8) computed by hand
		corr, err := Pearson([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 6})
		require.NoError(t, err)
		assert.InDelta(t, 0.98639, corr.R, 1e-4)
		assert.InDelta(t, 10.392, corr.T, 1e-2)
		assert.Less(t, corr.P, 0.01)
		assert.Equal(t, 5, corr.N)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Pearson([]float64{1, 2, 3}, []float64{1, 2})
		assert.Error(t, err)
	})

	t.Run("too few observations", func(t *testing.T) {
		_, err := Pearson([]float64{1, 2}, []float64{1, 2})
		assert.Error(t, err)
	})

	t.Run("constant sample", func(t *testing.T) {
		_, err := Pearson([]float64{2, 2, 2}, []float64{1, 2, 3})
		assert.Error(t, err)
	})
}

func TestFitOLS(t *testing.T) {
	t.Run("exact linear fit", func(t *testing.T) {
		fit, err := FitOLS([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, fit.Intercept, 1e-12)
		assert.InDelta(t, 2.0, fit.Slope, 1e-12)
		assert.InDelta(t, 1.0, fit.R2, 1e-12)
		assert.Equal(t, 0.0, fit.SlopeP)
	})

	t.Run("noisy fit statistics", func(t *testing.T) {
		// slope 0.8, intercept 0.6, RSS 3.6, R2 0.64 computed by hand
		fit, err := FitOLS([]float64{1, 2, 3, 4, 5}, []float64{2, 1, 4, 3, 5})
		require.NoError(t, err)
		assert.InDelta(t, 0.6, fit.Intercept, 1e-9)
		assert.InDelta(t, 0.8, fit.Slope, 1e-9)
		assert.InDelta(t, 0.64, fit.R2, 1e-9)
		assert.InDelta(t, 0.34641, fit.SlopeStdErr, 1e-4)
		assert.InDelta(t, 1.14891, fit.InterceptStdErr, 1e-4)
		assert.InDelta(t, 2.3094, fit.SlopeT, 1e-3)
		assert.InDelta(t, 0.104, fit.SlopeP, 5e-3)
		assert.Equal(t, 5, fit.N)
	})

	t.Run("predict", func(t *testing.T) {
		fit := Regression{Intercept: 1, Slope: 2}
		assert.InDelta(t, 7.0, fit.Predict(3), 1e-12)
	})

	t.Run("constant regressor", func(t *testing.T) {
		_, err := FitOLS([]float64{4, 4, 4}, []float64{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("too few observations", func(t *testing.T) {
		_, err := FitOLS([]float64{1, 2}, []float64{1, 2})
		assert.Error(t, err)
	})
}

func TestOneSampleTTest(t *testing.T) {
	t.Run("mean clearly above zero", func(t *testing.T) {
		// mean 3, sd sqrt(2.5), t = 3/(sd/sqrt(5)) computed by hand
		tt, err := OneSampleTTest([]float64{1, 2, 3, 4, 5}, 0)
		require.NoError(t, err)
		assert.InDelta(t, 4.2426, tt.T, 1e-3)
		assert.InDelta(t, 0.0132, tt.P, 1e-3)
		assert.InDelta(t, 3.0, tt.MeanDiff, 1e-12)
		assert.Equal(t, 4, tt.DF)
	})

	t.Run("mean equal to mu", func(t *testing.T) {
		tt, err := OneSampleTTest([]float64{-1, 0, 1}, 0)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, tt.T, 1e-12)
		assert.InDelta(t, 1.0, tt.P, 1e-9)
	})

	t.Run("zero variance", func(t *testing.T) {
		_, err := OneSampleTTest([]float64{2, 2, 2}, 0)
		assert.Error(t, err)
	})

	t.Run("too few observations", func(t *testing.T) {
		_, err := OneSampleTTest([]float64{1}, 0)
		assert.Error(t, err)
	})
}

func TestTwoSidedP(t *testing.T) {
	// with many degrees of freedom the t distribution approaches the normal
	assert.InDelta(t, 0.05, twoSidedP(1.96, 10000), 1e-3)
	assert.InDelta(t, 1.0, twoSidedP(0, 10), 1e-12)
}
