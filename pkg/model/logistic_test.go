package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/model"
)

// separable builds a linearly separable 1-D problem: negatives near -1,
// positives near +1.
func separable(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range X {
		offset := float64(i%5) * 0.1
		if i%2 == 0 {
			X[i] = []float64{-1 - offset}
		} else {
			X[i] = []float64{1 + offset}
			y[i] = 1
		}
	}
	return X, y
}

func TestLogisticRegression_FitSeparable(t *testing.T) {
	X, y := separable(40)

	clf := model.NewLogisticRegression(1, model.L2)
	require.NoError(t, clf.Fit(X, y))
	require.True(t, clf.Trained())

	preds := clf.Predict(X)
	assert.Equal(t, 1.0, model.Accuracy(y, preds), "separable data must fit exactly")

	proba := clf.PredictProba(X)
	for i, p := range proba {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		if y[i] == 1 {
			assert.Greater(t, p, 0.5)
		} else {
			assert.Less(t, p, 0.5)
		}
	}
}

// TestLogisticRegression_Deterministic: the solver has no random state, so
// refitting reproduces identical parameters.
func TestLogisticRegression_Deterministic(t *testing.T) {
	X, y := separable(30)

	a := model.NewLogisticRegression(10, model.L1)
	require.NoError(t, a.Fit(X, y))
	b := model.NewLogisticRegression(10, model.L1)
	require.NoError(t, b.Fit(X, y))

	assert.Equal(t, a.W, b.W)
	assert.Equal(t, a.B, b.B)
}

// TestLogisticRegression_RegularizationShrinks: a stronger penalty (smaller
// C) must not grow the weight norm.
func TestLogisticRegression_RegularizationShrinks(t *testing.T) {
	X, y := separable(40)

	for _, pen := range []model.Penalty{model.L1, model.L2} {
		weak := model.NewLogisticRegression(100, pen)
		require.NoError(t, weak.Fit(X, y))
		strong := model.NewLogisticRegression(0.001, pen)
		require.NoError(t, strong.Fit(X, y))

		assert.Less(t, math.Abs(strong.W[0]), math.Abs(weak.W[0]),
			"penalty %s: C=0.001 must shrink weights below C=100", pen)
	}
}

// TestLogisticRegression_L1Sparsity: with a strong L1 penalty the proximal
// step drives the weight of a pure-noise constant feature to exactly zero.
func TestLogisticRegression_L1Sparsity(t *testing.T) {
	X, y := separable(40)
	for i := range X {
		X[i] = append(X[i], 0) // constant feature carries no signal
	}

	clf := model.NewLogisticRegression(0.01, model.L1)
	require.NoError(t, clf.Fit(X, y))
	assert.Zero(t, clf.W[1])
}

func TestLogisticRegression_Errors(t *testing.T) {
	clf := model.NewLogisticRegression(1, model.L2)
	assert.ErrorIs(t, clf.Fit(nil, nil), model.ErrNoData)

	assert.Error(t, clf.Fit([][]float64{{1}, {2}}, []float64{0}))

	bad := model.NewLogisticRegression(1, model.Penalty("elasticnet"))
	assert.Error(t, bad.Fit([][]float64{{1}}, []float64{0}))
}

func TestLogisticRegression_CoefIntercept(t *testing.T) {
	X, y := separable(20)

	clf := model.NewLogisticRegression(1, model.L2)
	require.NoError(t, clf.Fit(X, y))

	require.Len(t, clf.Coef(), 1)
	assert.Greater(t, clf.Coef()[0], 0.0, "positive class sits at positive x")
	assert.False(t, math.IsNaN(clf.Intercept()))
}
