// Package split partitions labelled rows into train/test subsets and
// cross-validation folds, stratified on the class label. Every partition is a
// deterministic function of the caller's seed.
package split

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

var (
	// ErrLengthMismatch indicates X and y disagree on row count.
	ErrLengthMismatch = errors.New("split: X and y length mismatch")
	// ErrBadRatio indicates a test ratio outside (0, 1).
	ErrBadRatio = errors.New("split: test ratio must be in (0, 1)")
	// ErrBadFolds indicates k < 2 or k > number of rows.
	ErrBadFolds = errors.New("split: fold count must be in [2, len(y)]")
)

// Result is a stratified train/test partition. The two index sets are
// disjoint and together cover every input row exactly once.
type Result struct {
	XTrain, XTest [][]float64
	YTrain, YTest []float64
	TrainIdx      []int
	TestIdx       []int
}

// TrainTest splits X, y into stratified train and test sets. The total test
// size is round(testRatio * n); per-class test counts follow largest-remainder
// apportionment so class proportions survive the split within rounding. The
// same seed always yields the identical partition.
func TrainTest(X [][]float64, y []float64, testRatio float64, seed int64) (*Result, error) {
	if len(X) != len(y) {
		return nil, ErrLengthMismatch
	}
	if testRatio <= 0 || testRatio >= 1 {
		return nil, ErrBadRatio
	}

	n := len(y)
	wantTest := int(math.Round(testRatio * float64(n)))
	groups := groupByClass(y)
	classes := sortedClasses(groups)

	// Integer share per class, then hand out the remainder to the classes
	// with the largest fractional parts.
	testCounts := make(map[float64]int, len(classes))
	type frac struct {
		class float64
		rem   float64
	}
	fracs := make([]frac, 0, len(classes))
	assigned := 0
	for _, c := range classes {
		exact := testRatio * float64(len(groups[c]))
		base := int(math.Floor(exact))
		testCounts[c] = base
		assigned += base
		fracs = append(fracs, frac{class: c, rem: exact - float64(base)})
	}
	sort.Slice(fracs, func(i, j int) bool {
		if fracs[i].rem != fracs[j].rem {
			return fracs[i].rem > fracs[j].rem
		}
		return fracs[i].class < fracs[j].class
	})
	for i := 0; assigned < wantTest && i < len(fracs); i++ {
		testCounts[fracs[i].class]++
		assigned++
	}

	rng := rand.New(rand.NewSource(seed))
	res := &Result{}
	for _, c := range classes {
		idx := groups[c]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		nt := testCounts[c]
		res.TestIdx = append(res.TestIdx, idx[:nt]...)
		res.TrainIdx = append(res.TrainIdx, idx[nt:]...)
	}
	sort.Ints(res.TrainIdx)
	sort.Ints(res.TestIdx)

	res.XTrain, res.YTrain = gather(X, y, res.TrainIdx)
	res.XTest, res.YTest = gather(X, y, res.TestIdx)
	return res, nil
}

// KFold assigns rows to k stratified cross-validation folds: within each
// class, shuffled indices are dealt round-robin across folds, so every fold
// carries near-identical class proportions. Returns k index sets.
func KFold(y []float64, k int, seed int64) ([][]int, error) {
	if k < 2 || k > len(y) {
		return nil, ErrBadFolds
	}
	rng := rand.New(rand.NewSource(seed))
	folds := make([][]int, k)
	groups := groupByClass(y)
	for _, c := range sortedClasses(groups) {
		idx := groups[c]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		for i, row := range idx {
			folds[i%k] = append(folds[i%k], row)
		}
	}
	for _, f := range folds {
		sort.Ints(f)
	}
	return folds, nil
}

// Complement returns all indices in [0, n) not present in fold, preserving
// ascending order. Used to build the training side of a CV iteration.
func Complement(fold []int, n int) []int {
	in := make([]bool, n)
	for _, i := range fold {
		in[i] = true
	}
	out := make([]int, 0, n-len(fold))
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}

// Take gathers the rows of X and y at the given indices.
func Take(X [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	return gather(X, y, idx)
}

func gather(X [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	gx := make([][]float64, len(idx))
	gy := make([]float64, len(idx))
	for i, row := range idx {
		gx[i] = X[row]
		gy[i] = y[row]
	}
	return gx, gy
}

func groupByClass(y []float64) map[float64][]int {
	groups := make(map[float64][]int)
	for i, v := range y {
		groups[v] = append(groups[v], i)
	}
	return groups
}

func sortedClasses(groups map[float64][]int) []float64 {
	classes := make([]float64, 0, len(groups))
	for c := range groups {
		classes = append(classes, c)
	}
	sort.Float64s(classes)
	return classes
}
