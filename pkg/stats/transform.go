package stats

import "math"

// Log1p applies ln(1+x) element-wise and returns a new matrix of the same
// shape and row order. The transform is stateless: nothing is fit, so train
// and test can be transformed independently without leakage. log1p rather
// than plain log keeps zero-valued counts in the domain.
func Log1p(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		t := make([]float64, len(row))
		for j, v := range row {
			t[j] = math.Log1p(v)
		}
		out[i] = t
	}
	return out
}

// Expm1 inverts Log1p element-wise, exp(x)-1.
func Expm1(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		t := make([]float64, len(row))
		for j, v := range row {
			t[j] = math.Expm1(v)
		}
		out[i] = t
	}
	return out
}
