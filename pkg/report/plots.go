package report

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/experiment"
	"github.com/reddysravanii/Blood-Donation-Forecast/pkg/stats"
)

// SavePlots writes the study figures as PNG files under dir: the target
// class distribution, one histogram per feature before and after the log
// transform, the test ROC curve, and the ranked feature importances.
func SavePlots(sum *experiment.Summary, dir string) error {
	if err := plotTargetDistribution(sum, filepath.Join(dir, "target_distribution.png")); err != nil {
		return err
	}
	for i, name := range sum.FeatureNames {
		raw := stats.Column(sum.TrainRaw, i)
		logged := stats.Column(sum.TrainLog, i)
		if err := plotHistogram(raw, name, filepath.Join(dir, fmt.Sprintf("feature_%d_raw.png", i+1))); err != nil {
			return err
		}
		if err := plotHistogram(logged, name+" (log1p)", filepath.Join(dir, fmt.Sprintf("feature_%d_log.png", i+1))); err != nil {
			return err
		}
	}
	if err := plotROC(sum, filepath.Join(dir, "roc_curve.png")); err != nil {
		return err
	}
	return plotImportances(sum, filepath.Join(dir, "feature_importance.png"))
}

func plotTargetDistribution(sum *experiment.Summary, path string) error {
	p := plot.New()
	p.Title.Text = "Target Class Distribution"
	p.Y.Label.Text = "Count"

	values := make(plotter.Values, len(sum.Balance))
	labels := make([]string, len(sum.Balance))
	for i, b := range sum.Balance {
		values[i] = float64(b.Count)
		labels[i] = fmt.Sprintf("%d", b.Class)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{B: 200, A: 255}
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

func plotHistogram(values []float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(values), 16)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{B: 200, A: 255}
	p.Add(h)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

func plotROC(sum *experiment.Summary, path string) error {
	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"

	pts := make(plotter.XYs, len(sum.ROCFpr))
	for i := range sum.ROCFpr {
		pts[i].X = sum.ROCFpr[i]
		pts[i].Y = sum.ROCTpr[i]
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	curve.Color = color.RGBA{B: 255, A: 255}
	curve.LineStyle.Width = vg.Points(2)
	p.Add(curve)

	// Chance diagonal for reference.
	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return err
	}
	diag.Color = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	diag.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(diag)
	p.Legend.Add(fmt.Sprintf("AUC = %.3f", sum.AUC), curve)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

func plotImportances(sum *experiment.Summary, path string) error {
	p := plot.New()
	p.Title.Text = "Feature Importances"
	p.Y.Label.Text = "Coefficient"

	values := make(plotter.Values, len(sum.Importances))
	labels := make([]string, len(sum.Importances))
	for i, fw := range sum.Importances {
		values[i] = fw.Weight
		labels[i] = fw.Name
	}
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 200, A: 255}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.5
	p.X.Tick.Label.XAlign = -0.8

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
