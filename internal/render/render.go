// Package render draws the validation plots as PNG files. It consumes
// computed series only; all metric math happens in the core library.
package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	binclass "github.com/jamesainslie/go-binclass"
)

// Options control plot output.
type Options struct {
	// Dir is the output directory, created if missing.
	Dir string

	// ClassNames are the (negative, positive) display names for the
	// confusion-matrix axes.
	ClassNames [2]string

	// Size is the square plot edge in inches.
	Size float64
}

// matplotlib's default blue, for continuity with reports produced by the
// earlier Python tooling.
var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// WriteAll renders every plot for one validation result and returns the
// written file paths.
func WriteAll(res *binclass.Result, opts Options) ([]string, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var paths []string
	write := func(name string, draw func(path string) error) error {
		path := filepath.Join(opts.Dir, name)
		if err := draw(path); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		paths = append(paths, path)
		return nil
	}

	if err := write("confusion_matrix.png", func(path string) error {
		return ConfusionMatrix(res.Confusion, opts.ClassNames, opts.Size, path)
	}); err != nil {
		return nil, err
	}
	if err := write("roc_curve.png", func(path string) error {
		return ROCCurve(res.ROC, res.Report.AUC, opts.Size, path)
	}); err != nil {
		return nil, err
	}
	if err := write("precision_recall_curve.png", func(path string) error {
		return PrecisionRecall(res.PR, res.AveragePrecision, opts.Size, path)
	}); err != nil {
		return nil, err
	}

	for _, m := range binclass.SweepMetrics {
		metric := m
		if err := write(metric.String()+".png", func(path string) error {
			return SweepChart(metric, res.Sweep[metric], opts.Size, path)
		}); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// confusionGrid adapts the 2x2 counts to the heatmap's grid interface.
// Column is the predicted class, row the true class.
type confusionGrid struct {
	z [2][2]float64
}

func (g confusionGrid) Dims() (c, r int)   { return 2, 2 }
func (g confusionGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g confusionGrid) X(c int) float64    { return float64(c) }
func (g confusionGrid) Y(r int) float64    { return float64(r) }

// ConfusionMatrix renders the counts as a 2x2 heatmap with one count label
// per cell.
func ConfusionMatrix(c binclass.Confusion, classNames [2]string, size float64, path string) error {
	grid := confusionGrid{z: [2][2]float64{
		{float64(c.TN), float64(c.FP)}, // true negative class row
		{float64(c.FN), float64(c.TP)}, // true positive class row
	}}

	h := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	// A flat matrix (all cells equal) would leave the palette with an
	// empty value range.
	if h.Min == h.Max {
		h.Min = 0
		if h.Max == 0 {
			h.Max = 1
		}
	}

	p := plot.New()
	p.Title.Text = "Confusion Matrix"
	p.X.Label.Text = "Predicted label"
	p.Y.Label.Text = "True label"
	p.Add(h)

	ticks := []plot.Tick{
		{Value: 0, Label: classNames[0]},
		{Value: 1, Label: classNames[1]},
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{
			{X: 0, Y: 0}, {X: 1, Y: 0},
			{X: 0, Y: 1}, {X: 1, Y: 1},
		},
		Labels: []string{
			fmt.Sprintf("%d", c.TN), fmt.Sprintf("%d", c.FP),
			fmt.Sprintf("%d", c.FN), fmt.Sprintf("%d", c.TP),
		},
	})
	if err != nil {
		return fmt.Errorf("cell labels: %w", err)
	}
	p.Add(labels)

	return save(p, size, path)
}

// ROCCurve renders the ROC curve with the AUC in the legend.
func ROCCurve(points []binclass.ROCPoint, auc float64, size float64, path string) error {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.FPR, Y: pt.TPR}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = lineColor

	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("AUC = %.4f", auc), line)
	p.Legend.Top = true

	return save(p, size, path)
}

// PrecisionRecall renders the precision-recall curve with the average
// precision in the legend.
func PrecisionRecall(points []binclass.PRPoint, ap float64, size float64, path string) error {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.Recall, Y: pt.Precision}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = lineColor

	p := plot.New()
	p.Title.Text = "Precision-Recall Curve"
	p.X.Label.Text = "Recall"
	p.Y.Label.Text = "Precision"
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("AP = %.4f", ap), line)
	p.Legend.Top = true

	return save(p, size, path)
}

// SweepChart renders one swept metric across thresholds, with the value at
// threshold 0.5 in the legend.
func SweepChart(metric binclass.SweepMetric, s binclass.Series, size float64, path string) error {
	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i] = plotter.XY{X: pt.Threshold, Y: pt.Value}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = lineColor

	p := plot.New()
	p.X.Label.Text = "Probability Threshold"
	p.Y.Label.Text = metric.String()
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("%s at 0.5 = %.4f", metric, s.AtHalf), line)
	p.Legend.Top = true

	return save(p, size, path)
}

func save(p *plot.Plot, size float64, path string) error {
	edge := vg.Length(size) * vg.Inch
	return p.Save(edge, edge, path)
}
