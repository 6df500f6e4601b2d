package model

import (
	"errors"
	"sort"
)

// ErrSingleClass indicates ROC AUC was requested for labels containing only
// one class, where the score is undefined. Callers decide whether to skip the
// value (cross-validation folds do) or abort.
var ErrSingleClass = errors.New("model: ROC AUC undefined for a single-class label set")

// Accuracy is the fraction of exact label matches.
func Accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// ROCAUC computes the area under the ROC curve from class-1 scores via the
// rank statistic, with average ranks over tied scores. Returns ErrSingleClass
// when yTrue holds only positives or only negatives.
func ROCAUC(yTrue, scores []float64) (float64, error) {
	n := len(yTrue)
	nPos := 0
	for _, v := range yTrue {
		if v == 1 {
			nPos++
		}
	}
	nNeg := n - nPos
	if nPos == 0 || nNeg == 0 {
		return 0, ErrSingleClass
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] < scores[idx[b]] })

	// Sum the (tie-averaged) ranks of the positive examples.
	rankSum := 0.0
	for i := 0; i < n; {
		j := i
		for j < n && scores[idx[j]] == scores[idx[i]] {
			j++
		}
		// Ranks are 1-based; every member of a tie group gets the group mean.
		avgRank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			if yTrue[idx[k]] == 1 {
				rankSum += avgRank
			}
		}
		i = j
	}
	auc := (rankSum - float64(nPos)*float64(nPos+1)/2) / (float64(nPos) * float64(nNeg))
	return auc, nil
}

// ROCCurve returns the false/true positive rates swept over every distinct
// score threshold, from (0,0) to (1,1), for plotting.
func ROCCurve(yTrue, scores []float64) (fpr, tpr []float64) {
	n := len(yTrue)
	nPos, nNeg := 0, 0
	for _, v := range yTrue {
		if v == 1 {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return nil, nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	fpr = []float64{0}
	tpr = []float64{0}
	tp, fp := 0, 0
	for i := 0; i < n; {
		j := i
		for j < n && scores[idx[j]] == scores[idx[i]] {
			if yTrue[idx[j]] == 1 {
				tp++
			} else {
				fp++
			}
			j++
		}
		fpr = append(fpr, float64(fp)/float64(nNeg))
		tpr = append(tpr, float64(tp)/float64(nPos))
		i = j
	}
	return fpr, tpr
}

// ClassMetrics is one row of a classification report.
type ClassMetrics struct {
	Class     int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is a per-class precision/recall/F1 summary with the usual averages.
type Report struct {
	Classes    []ClassMetrics
	Accuracy   float64
	MacroF1    float64
	WeightedF1 float64
	TotalRows  int
}

// ClassificationReport computes per-class precision, recall, F1 and support,
// treating each observed class in turn as the positive label.
func ClassificationReport(yTrue, yPred []float64) Report {
	seen := map[int]bool{}
	for _, v := range yTrue {
		seen[int(v)] = true
	}
	for _, v := range yPred {
		seen[int(v)] = true
	}
	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	rep := Report{Accuracy: Accuracy(yTrue, yPred), TotalRows: len(yTrue)}
	for _, c := range classes {
		tp, fp, fn, support := 0, 0, 0, 0
		for i := range yTrue {
			t := int(yTrue[i]) == c
			p := int(yPred[i]) == c
			if t {
				support++
			}
			switch {
			case t && p:
				tp++
			case !t && p:
				fp++
			case t && !p:
				fn++
			}
		}
		cm := ClassMetrics{Class: c, Support: support}
		if tp+fp > 0 {
			cm.Precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			cm.Recall = float64(tp) / float64(tp+fn)
		}
		if cm.Precision+cm.Recall > 0 {
			cm.F1 = 2 * cm.Precision * cm.Recall / (cm.Precision + cm.Recall)
		}
		rep.Classes = append(rep.Classes, cm)
	}

	for _, cm := range rep.Classes {
		rep.MacroF1 += cm.F1 / float64(len(rep.Classes))
		if rep.TotalRows > 0 {
			rep.WeightedF1 += cm.F1 * float64(cm.Support) / float64(rep.TotalRows)
		}
	}
	return rep
}
