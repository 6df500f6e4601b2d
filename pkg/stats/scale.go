package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrNotFitted indicates Transform was called before Fit.
var ErrNotFitted = errors.New("stats: scaler is not fitted")

// StandardScaler standardizes each column to zero mean and unit variance.
// Mean and scale are estimated only from the rows passed to Fit, so the
// caller controls which split the statistics leak from.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit estimates per-column mean and standard deviation. Columns with zero
// spread get scale 1 so Transform maps them to zero instead of dividing by
// zero.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("stats: cannot fit scaler on empty matrix")
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := Column(X, j)
		s.Mean[j] = stat.Mean(col, nil)
		s.Std[j] = stat.PopStdDev(col, nil)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns a standardized copy of X using the fitted statistics.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, ErrNotFitted
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out, nil
}

// FitTransform fits the scaler on X and returns the transformed matrix.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
