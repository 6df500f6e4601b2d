package model

// Model is a generic supervised learning interface.
type Model interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
}

// Classifier optionally exposes probabilities.
type Classifier interface {
	Model
	PredictProba(X [][]float64) []float64 // returns p(y=1) for binary classifiers
}

// LinearClassifier additionally exposes the fitted linear parameters, which
// the evaluator ranks as feature importances.
type LinearClassifier interface {
	Classifier
	Coef() []float64
	Intercept() float64
}
