// Package report renders the study results: a numbered human-readable
// narrative on a writer, and the figures as PNG files.
package report

import (
	"fmt"
	"io"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/experiment"
)

// Print writes the full numbered narrative of a finished run to w, in the
// order the stages executed.
func Print(w io.Writer, sum *experiment.Summary) {
	source := sum.DataPath
	if sum.Synthetic {
		source = "synthetic fallback (file not found)"
	}

	section(w, 1, "Load data")
	fmt.Fprintf(w, "Source: %s\n", source)
	fmt.Fprintf(w, "Shape: %d rows x %d columns\n", sum.Rows, sum.Cols)
	fmt.Fprintln(w, "First rows:")
	printMatrix(w, sum.Columns, sum.Head)

	section(w, 2, "Summary statistics")
	fmt.Fprintf(w, "%-42s %8s %10s %10s %10s %10s %10s %10s %10s\n",
		"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range sum.Describe {
		fmt.Fprintf(w, "%-42s %8d %10.3f %10.3f %10.3f %10.3f %10.3f %10.3f %10.3f\n",
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	}

	section(w, 3, "Target derivation and class balance")
	for _, b := range sum.Balance {
		fmt.Fprintf(w, "class %d: %d rows (%.2f%%)\n", b.Class, b.Count, b.Percent)
	}

	section(w, 4, "Train/test split")
	fmt.Fprintf(w, "train: %d rows, test: %d rows (stratified, test ratio 0.25)\n",
		sum.TrainRows, sum.TestRows)

	section(w, 5, "Raw feature variance")
	for i, v := range sum.RawVariances {
		fmt.Fprintf(w, "%-42s %14.3f\n", sum.FeatureNames[i], v)
	}

	section(w, 6, "Log normalization")
	fmt.Fprintln(w, "Applied log1p element-wise to train and test features.")
	fmt.Fprintln(w, "First transformed training rows:")
	printMatrix(w, sum.FeatureNames, sum.LogHead)

	section(w, 7, "Grid search")
	fmt.Fprintf(w, "%-28s %10s %8s\n", "candidate", "mean AUC", "folds")
	for _, r := range sum.Search.Results {
		note := ""
		if r.Skipped > 0 {
			note = fmt.Sprintf(" (%d folds skipped, AUC undefined)", r.Skipped)
		}
		fmt.Fprintf(w, "%-28s %10.4f %8d%s\n", r.Params, r.MeanAUC, len(r.FoldAUCs), note)
	}

	section(w, 8, "Best hyperparameters")
	fmt.Fprintf(w, "%s\n", sum.Search.BestParams)
	fmt.Fprintf(w, "best cross-validated ROC AUC: %.4f\n", sum.Search.BestScore)

	section(w, 9, "Test metrics")
	fmt.Fprintf(w, "accuracy: %.4f\n", sum.Accuracy)
	fmt.Fprintf(w, "ROC AUC:  %.4f\n", sum.AUC)

	section(w, 10, "Classification report")
	fmt.Fprintf(w, "%8s %10s %10s %10s %10s\n", "class", "precision", "recall", "f1", "support")
	for _, c := range sum.Report.Classes {
		fmt.Fprintf(w, "%8d %10.3f %10.3f %10.3f %10d\n",
			c.Class, c.Precision, c.Recall, c.F1, c.Support)
	}
	fmt.Fprintf(w, "macro f1:    %.3f\n", sum.Report.MacroF1)
	fmt.Fprintf(w, "weighted f1: %.3f\n", sum.Report.WeightedF1)

	section(w, 11, "Feature importances")
	for _, fw := range sum.Importances {
		fmt.Fprintf(w, "%-42s %10.4f\n", fw.Name, fw.Weight)
	}
}

func section(w io.Writer, n int, title string) {
	fmt.Fprintf(w, "\n=== %d. %s ===\n", n, title)
}

func printMatrix(w io.Writer, header []string, rows [][]float64) {
	for _, h := range header {
		fmt.Fprintf(w, "%-24s", h)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for _, v := range row {
			fmt.Fprintf(w, "%-24.4f", v)
		}
		fmt.Fprintln(w)
	}
}
