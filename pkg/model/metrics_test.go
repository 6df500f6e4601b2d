package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/model"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.75, model.Accuracy(
		[]float64{1, 0, 1, 0},
		[]float64{1, 0, 0, 0},
	))
	assert.Zero(t, model.Accuracy(nil, nil))
}

func TestROCAUC_PerfectAndReversed(t *testing.T) {
	y := []float64{0, 0, 1, 1}

	auc, err := model.ROCAUC(y, []float64{0.1, 0.2, 0.8, 0.9})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, auc, 1e-12)

	auc, err = model.ROCAUC(y, []float64{0.9, 0.8, 0.2, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, auc, 1e-12)
}

func TestROCAUC_TiedScores(t *testing.T) {
	// All scores equal: every ordering is a coin flip, AUC is exactly 0.5.
	auc, err := model.ROCAUC([]float64{0, 1, 0, 1}, []float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, auc, 1e-12)
}

func TestROCAUC_PartialRanking(t *testing.T) {
	// The low-scored positive loses to both negatives: 4 of 6 pairs ordered
	// correctly.
	auc, err := model.ROCAUC(
		[]float64{1, 1, 0, 0, 1},
		[]float64{0.9, 0.8, 0.7, 0.2, 0.1},
	)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/6.0, auc, 1e-12)
}

// TestROCAUC_SingleClass is the documented degenerate case: the score is
// undefined, reported as an explicit error.
func TestROCAUC_SingleClass(t *testing.T) {
	_, err := model.ROCAUC([]float64{1, 1, 1}, []float64{0.1, 0.2, 0.3})
	assert.ErrorIs(t, err, model.ErrSingleClass)

	_, err = model.ROCAUC([]float64{0, 0}, []float64{0.1, 0.2})
	assert.ErrorIs(t, err, model.ErrSingleClass)
}

func TestROCCurve_Endpoints(t *testing.T) {
	y := []float64{0, 1, 0, 1, 1}
	scores := []float64{0.2, 0.9, 0.4, 0.6, 0.3}

	fpr, tpr := model.ROCCurve(y, scores)
	require.NotEmpty(t, fpr)
	require.Len(t, tpr, len(fpr))

	assert.Zero(t, fpr[0])
	assert.Zero(t, tpr[0])
	assert.Equal(t, 1.0, fpr[len(fpr)-1])
	assert.Equal(t, 1.0, tpr[len(tpr)-1])

	// Rates never decrease along the sweep.
	for i := 1; i < len(fpr); i++ {
		assert.GreaterOrEqual(t, fpr[i], fpr[i-1])
		assert.GreaterOrEqual(t, tpr[i], tpr[i-1])
	}
}

func TestROCCurve_SingleClass(t *testing.T) {
	fpr, tpr := model.ROCCurve([]float64{1, 1}, []float64{0.1, 0.9})
	assert.Nil(t, fpr)
	assert.Nil(t, tpr)
}

func TestClassificationReport(t *testing.T) {
	yTrue := []float64{1, 1, 1, 0, 0, 0}
	yPred := []float64{1, 1, 0, 0, 0, 1}

	rep := model.ClassificationReport(yTrue, yPred)

	require.Len(t, rep.Classes, 2)
	assert.InDelta(t, 4.0/6.0, rep.Accuracy, 1e-12)

	zero := rep.Classes[0]
	assert.Equal(t, 0, zero.Class)
	assert.InDelta(t, 2.0/3.0, zero.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, zero.Recall, 1e-12)
	assert.Equal(t, 3, zero.Support)

	one := rep.Classes[1]
	assert.Equal(t, 1, one.Class)
	assert.InDelta(t, 2.0/3.0, one.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, one.Recall, 1e-12)
	assert.Equal(t, 3, one.Support)

	assert.Equal(t, 6, rep.TotalRows)
	assert.InDelta(t, rep.MacroF1, rep.WeightedF1, 1e-12, "balanced classes: averages agree")
}
