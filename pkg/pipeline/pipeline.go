// Package pipeline composes the standardization step with the logistic
// classifier and selects hyperparameters by cross-validated grid search.
package pipeline

import (
	"errors"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/model"
	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/stats"
)

// ErrNotFitted indicates prediction was requested from an unfitted pipeline.
var ErrNotFitted = errors.New("pipeline: not fitted")

// Pipeline is the explicit two-stage model: a standard scaler whose
// statistics come only from the rows passed to Fit, feeding a logistic
// classifier. Immutable once fitted.
type Pipeline struct {
	Scaler *stats.StandardScaler
	Clf    *model.LogisticRegression

	fitted bool
}

// New builds an unfitted pipeline around the given classifier.
func New(clf *model.LogisticRegression) *Pipeline {
	return &Pipeline{Scaler: stats.NewStandardScaler(), Clf: clf}
}

// Fit estimates scaler statistics from X, scales X, and trains the
// classifier on the scaled rows.
func (p *Pipeline) Fit(X [][]float64, y []float64) error {
	scaled, err := p.Scaler.FitTransform(X)
	if err != nil {
		return err
	}
	if err := p.Clf.Fit(scaled, y); err != nil {
		return err
	}
	p.fitted = true
	return nil
}

// Predict scales X with the fitted statistics and returns hard labels.
func (p *Pipeline) Predict(X [][]float64) ([]float64, error) {
	scaled, err := p.transform(X)
	if err != nil {
		return nil, err
	}
	return p.Clf.Predict(scaled), nil
}

// PredictProba scales X with the fitted statistics and returns p(y=1).
func (p *Pipeline) PredictProba(X [][]float64) ([]float64, error) {
	scaled, err := p.transform(X)
	if err != nil {
		return nil, err
	}
	return p.Clf.PredictProba(scaled), nil
}

// Coef returns the fitted classifier weights, one per feature.
func (p *Pipeline) Coef() []float64 { return p.Clf.Coef() }

// Intercept returns the fitted classifier bias.
func (p *Pipeline) Intercept() float64 { return p.Clf.Intercept() }

func (p *Pipeline) transform(X [][]float64) ([][]float64, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	return p.Scaler.Transform(X)
}
