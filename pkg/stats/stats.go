// Package stats provides the descriptive statistics and feature transforms
// used by the donation pipeline: column summaries, a fit/transform standard
// scaler, and the stateless log1p transform.
package stats

import "gonum.org/v1/gonum/stat"

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// Variance computes the sample variance of a slice.
func Variance(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.Variance(x, nil)
}

// Std computes the sample standard deviation of a slice.
func Std(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.StdDev(x, nil)
}

// Column copies column j out of a row-major matrix.
func Column(X [][]float64, j int) []float64 {
	col := make([]float64, len(X))
	for i, row := range X {
		col[i] = row[j]
	}
	return col
}

// ColumnVariances returns the sample variance of every column. Diagnostic
// only; the caller's matrix is never modified.
func ColumnVariances(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	out := make([]float64, len(X[0]))
	for j := range X[0] {
		out[j] = Variance(Column(X, j))
	}
	return out
}
