package model

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/optim"
)

// Penalty selects the regularization term of the logistic objective.
type Penalty string

const (
	L1 Penalty = "l1"
	L2 Penalty = "l2"
)

var (
	// ErrNotTrained indicates Predict was called before Fit.
	ErrNotTrained = errors.New("model: classifier is not trained")
	// ErrNoData indicates Fit received an empty matrix.
	ErrNoData = errors.New("model: no training rows")
)

// LogisticRegression is a binary classifier trained by full-batch proximal
// gradient descent. One solver covers both penalties: an L2 term folds into
// the smooth gradient, an L1 term is applied through the proximal step.
// Weights start at zero and no randomness enters the solver, so refitting on
// the same rows reproduces the same parameters bit for bit.
type LogisticRegression struct {
	W []float64
	B float64

	C        float64 // inverse regularization strength
	Pen      Penalty
	StepSize float64
	MaxIter  int
	Tol      float64

	trained bool
}

// NewLogisticRegression configures an untrained classifier with inverse
// regularization strength c and the given penalty.
func NewLogisticRegression(c float64, pen Penalty) *LogisticRegression {
	return &LogisticRegression{
		C:        c,
		Pen:      pen,
		StepSize: 0.1,
		MaxIter:  5000,
		Tol:      1e-8,
	}
}

// Fit minimizes mean binary cross-entropy plus the penalty scaled by
// 1/(C*n). The intercept is never penalized.
func (m *LogisticRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return ErrNoData
	}
	if len(X) != len(y) {
		return errors.New("model: X and y length mismatch")
	}
	if m.Pen != L1 && m.Pen != L2 {
		return fmt.Errorf("model: unsupported penalty %q", m.Pen)
	}

	n := len(X)
	d := len(X[0])
	m.W = make([]float64, d)
	m.B = 0
	lambda := 1 / (m.C * float64(n))
	opt := optim.NewGD(m.StepSize)
	prev := make([]float64, d)

	for iter := 0; iter < m.MaxIter; iter++ {
		p := m.decision(X)
		for i := range p {
			p[i] = sigmoid(p[i])
		}

		// Gradient of the mean cross-entropy.
		gW := make([]float64, d)
		gB := 0.0
		for i, row := range X {
			dy := (p[i] - y[i]) / float64(n)
			for j, xij := range row {
				gW[j] += dy * xij
			}
			gB += dy
		}

		copy(prev, m.W)
		if m.Pen == L2 {
			for j := range gW {
				gW[j] += lambda * m.W[j]
			}
			opt.Step(m.W, gW)
		} else {
			opt.ProxStep(m.W, gW, lambda)
		}
		m.B -= m.StepSize * gB

		if optim.MaxAbsDiff(prev, m.W) < m.Tol {
			break
		}
	}
	m.trained = true
	return nil
}

// PredictProba returns p(y=1) for each row. Rows are scored in parallel
// across the available cores.
func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	out := m.decisionParallel(X)
	for i := range out {
		out[i] = sigmoid(out[i])
	}
	return out
}

// Predict returns hard 0/1 labels at the 0.5 probability threshold.
func (m *LogisticRegression) Predict(X [][]float64) []float64 {
	proba := m.PredictProba(X)
	out := make([]float64, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			out[i] = 1
		}
	}
	return out
}

// Coef returns the fitted weight vector.
func (m *LogisticRegression) Coef() []float64 { return m.W }

// Intercept returns the fitted bias.
func (m *LogisticRegression) Intercept() float64 { return m.B }

// Trained reports whether Fit has completed.
func (m *LogisticRegression) Trained() bool { return m.trained }

func (m *LogisticRegression) decision(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		sum := m.B
		for j, v := range row {
			sum += m.W[j] * v
		}
		out[i] = sum
	}
	return out
}

func (m *LogisticRegression) decisionParallel(X [][]float64) []float64 {
	out := make([]float64, len(X))
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > len(X) {
			end = len(X)
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				sum := m.B
				for j, v := range X[i] {
					sum += m.W[j] * v
				}
				out[i] = sum
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }
