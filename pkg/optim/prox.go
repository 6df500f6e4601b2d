// Package optim holds the first-order update steps used by the logistic
// solver: a plain gradient step for smooth objectives and a proximal
// (soft-threshold) step that carries L1 penalties.
package optim

import "math"

// GD is a full-batch gradient descent optimizer with a fixed step size.
type GD struct{ StepSize float64 }

func NewGD(stepSize float64) *GD { return &GD{StepSize: stepSize} }

// Step updates weights in place along the negative gradient.
func (o *GD) Step(weights, grads []float64) {
	for i := range weights {
		weights[i] -= o.StepSize * grads[i]
	}
}

// ProxStep performs one proximal gradient update: a gradient step on the
// smooth part of the objective followed by soft-thresholding at level
// StepSize*lambda. With lambda 0 it degenerates to Step.
func (o *GD) ProxStep(weights, grads []float64, lambda float64) {
	t := o.StepSize * lambda
	for i := range weights {
		w := weights[i] - o.StepSize*grads[i]
		weights[i] = SoftThreshold(w, t)
	}
}

// SoftThreshold shrinks x toward zero by t, clamping at zero. This is the
// proximal operator of t*|x|.
func SoftThreshold(x, t float64) float64 {
	if x > t {
		return x - t
	}
	if x < -t {
		return x + t
	}
	return 0
}

// MaxAbsDiff reports the largest element-wise absolute difference between two
// equal-length vectors. Solvers use it as a convergence check.
func MaxAbsDiff(a, b []float64) float64 {
	m := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > m {
			m = d
		}
	}
	return m
}
