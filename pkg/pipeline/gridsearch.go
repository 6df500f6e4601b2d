package pipeline

import (
	"errors"
	"fmt"
	"sync"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/model"
	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/split"
)

// ErrNoValidCandidate indicates every grid candidate scored on zero folds.
var ErrNoValidCandidate = errors.New("pipeline: no grid candidate produced a defined CV score")

// Params is one hyperparameter combination of the search grid.
type Params struct {
	C       float64
	Penalty model.Penalty
}

func (p Params) String() string {
	return fmt.Sprintf("C=%g penalty=%s", p.C, p.Penalty)
}

// CandidateResult is the cross-validation outcome for one combination.
type CandidateResult struct {
	Params   Params
	MeanAUC  float64
	FoldAUCs []float64
	Skipped  int // folds where AUC was undefined (single-class fold)
}

// Grid is the hyperparameter search space. DefaultGrid reproduces the
// production search: six C values crossed with both penalties, one solver.
type Grid struct {
	C         []float64
	Penalties []model.Penalty
}

func DefaultGrid() Grid {
	return Grid{
		C:         []float64{0.001, 0.01, 0.1, 1, 10, 100},
		Penalties: []model.Penalty{model.L1, model.L2},
	}
}

// Combinations expands the grid in declared order: penalty-major, then C.
func (g Grid) Combinations() []Params {
	out := make([]Params, 0, len(g.C)*len(g.Penalties))
	for _, pen := range g.Penalties {
		for _, c := range g.C {
			out = append(out, Params{C: c, Penalty: pen})
		}
	}
	return out
}

// SearchResult is the outcome of a grid search: the winning combination, its
// mean CV score, the model refit on all training rows, and the full results
// table in grid order.
type SearchResult struct {
	BestParams Params
	BestScore  float64
	BestModel  *Pipeline
	Results    []CandidateResult
}

// GridSearchCV exhaustively scores every grid combination by stratified
// k-fold cross-validation on (X, y), scoring each held-out fold by ROC AUC
// and averaging. Folds where AUC is undefined (a single-class fold) are
// excluded from the average and counted in the candidate's Skipped field.
// Candidates are evaluated concurrently, but results land in a fixed slice
// indexed by grid position and the argmax scans that slice in grid order, so
// the winner is deterministic: ties resolve to the earliest combination.
// The winner is refit on all of (X, y).
func GridSearchCV(grid Grid, X [][]float64, y []float64, k int, seed int64) (*SearchResult, error) {
	folds, err := split.KFold(y, k, seed)
	if err != nil {
		return nil, err
	}

	combos := grid.Combinations()
	results := make([]CandidateResult, len(combos))
	errs := make([]error, len(combos))

	var wg sync.WaitGroup
	for ci, params := range combos {
		wg.Add(1)
		go func(ci int, params Params) {
			defer wg.Done()
			results[ci], errs[ci] = crossValidate(params, X, y, folds)
		}(ci, params)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	best := -1
	for ci, r := range results {
		if len(r.FoldAUCs) == 0 {
			continue
		}
		if best < 0 || r.MeanAUC > results[best].MeanAUC {
			best = ci
		}
	}
	if best < 0 {
		return nil, ErrNoValidCandidate
	}

	winner := New(model.NewLogisticRegression(combos[best].C, combos[best].Penalty))
	if err := winner.Fit(X, y); err != nil {
		return nil, fmt.Errorf("pipeline: refitting winner %s: %w", combos[best], err)
	}

	return &SearchResult{
		BestParams: combos[best],
		BestScore:  results[best].MeanAUC,
		BestModel:  winner,
		Results:    results,
	}, nil
}

func crossValidate(params Params, X [][]float64, y []float64, folds [][]int) (CandidateResult, error) {
	res := CandidateResult{Params: params}
	sum := 0.0
	for _, fold := range folds {
		trainIdx := split.Complement(fold, len(y))
		xTr, yTr := split.Take(X, y, trainIdx)
		xVal, yVal := split.Take(X, y, fold)

		p := New(model.NewLogisticRegression(params.C, params.Penalty))
		if err := p.Fit(xTr, yTr); err != nil {
			return res, fmt.Errorf("pipeline: fitting %s: %w", params, err)
		}
		scores, err := p.PredictProba(xVal)
		if err != nil {
			return res, err
		}
		auc, err := model.ROCAUC(yVal, scores)
		if errors.Is(err, model.ErrSingleClass) {
			res.Skipped++
			continue
		}
		if err != nil {
			return res, err
		}
		res.FoldAUCs = append(res.FoldAUCs, auc)
		sum += auc
	}
	if len(res.FoldAUCs) > 0 {
		res.MeanAUC = sum / float64(len(res.FoldAUCs))
	}
	return res, nil
}
